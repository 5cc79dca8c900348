package handler

import (
	"net/http"

	"pr-metrics-dashboard/api"
	"pr-metrics-dashboard/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы сводки, доменов и агрегатов.
type StatsHandler struct {
	*BaseHandler
	dashboardUseCase   domain.DashboardUseCase
	aggregationUseCase domain.AggregationUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler.
func NewStatsHandler(dashboardUseCase domain.DashboardUseCase, aggregationUseCase domain.AggregationUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:        NewBaseHandler(logger),
		dashboardUseCase:   dashboardUseCase,
		aggregationUseCase: aggregationUseCase,
	}
}

// GetOverview обрабатывает GET запрос сводки дашборда.
func (h *StatsHandler) GetOverview(c echo.Context) error {
	logEntry := h.logRequest(c, "get_overview")

	overview, err := h.dashboardUseCase.Overview(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get overview")
	}

	resp := api.Overview{
		TotalPrs:      overview.TotalPRs,
		OpenPrs:       overview.OpenPRs,
		MergedPrs:     overview.MergedPRs,
		ClosedPrs:     overview.ClosedPRs,
		Developers:    overview.Developers,
		Reviewers:     overview.Reviewers,
		Domains:       overview.Domains,
		AverageRework: float32(overview.AverageRework),
		RecentPrs:     toAPIPullRequests(overview.RecentPRs),
		LastSyncAt:    overview.LastSyncAt,
	}
	if overview.LastSyncStatus != "" {
		resp.LastSyncStatus = &overview.LastSyncStatus
	}
	return c.JSON(http.StatusOK, resp)
}

// GetDomains обрабатывает GET запрос снимков доменов.
func (h *StatsHandler) GetDomains(c echo.Context) error {
	logEntry := h.logRequest(c, "get_domains")

	domains, err := h.dashboardUseCase.Domains(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get domains")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"domains": toAPIDomains(domains),
	})
}

// GetDomain обрабатывает GET запрос снимка домена с последними PR.
func (h *StatsHandler) GetDomain(c echo.Context, name api.DomainPath) error {
	logEntry := h.logRequest(c, "get_domain").WithField("domain", name)

	detail, err := h.dashboardUseCase.Domain(c.Request().Context(), name)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get domain")
	}

	return c.JSON(http.StatusOK, api.DomainDetail{
		Metrics:   toAPIDomain(detail.Metrics),
		RecentPrs: toAPIPullRequests(detail.RecentPRs),
	})
}

// GetDomainsList отдает разрешенные домены и Others.
func (h *StatsHandler) GetDomainsList(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"domains": h.dashboardUseCase.DomainNames(),
	})
}

// GetStatsTimeline обрабатывает GET запрос дневных рядов.
func (h *StatsHandler) GetStatsTimeline(c echo.Context, params api.GetStatsTimelineParams) error {
	logEntry := h.logRequest(c, "get_timeline").WithField("days", intOrZero(params.Days))

	points, err := h.dashboardUseCase.Timeline(c.Request().Context(), intOrZero(params.Days), deref(params.Domain))
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get timeline")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"timeline": toAPITimeline(points),
	})
}

// GetAggregation обрабатывает GET запрос агрегатов по оси.
func (h *StatsHandler) GetAggregation(c echo.Context, dimension api.GetAggregationParamsDimension, params api.GetAggregationParams) error {
	logEntry := h.logRequest(c, "get_aggregation").WithField("dimension", dimension)

	dim, err := domain.ParseDimension(string(dimension))
	if err != nil {
		return h.respondError(c, logEntry, err, "Invalid dimension")
	}

	filter := domain.AggregateFilter{
		Domain: params.Domain,
		From:   params.From,
		To:     params.To,
		Search: deref(params.Search),
	}
	if params.Status != nil {
		filter.Status = string(*params.Status)
	}
	if params.SortBy != nil {
		filter.SortBy = string(*params.SortBy)
	}
	page, err := toPage(params.Limit, params.Offset)
	if err != nil {
		return h.respondError(c, logEntry, err, "Invalid pagination")
	}

	result, err := h.aggregationUseCase.AggregateBy(c.Request().Context(), dim, filter, page)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to aggregate")
	}

	logEntry.WithField("rows", len(result.Rows)).Debug("Aggregation served")
	return c.JSON(http.StatusOK, toAPIAggregationPage(result))
}
