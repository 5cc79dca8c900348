package handler

import (
	"net/http"

	"pr-metrics-dashboard/api"
	"pr-metrics-dashboard/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PRHandler обрабатывает HTTP-запросы связанные с пул-реквестами
type PRHandler struct {
	*BaseHandler
	dashboardUseCase domain.DashboardUseCase
}

// NewPRHandler создает новый экземпляр PRHandler
func NewPRHandler(dashboardUseCase domain.DashboardUseCase, logger *logrus.Logger) *PRHandler {
	return &PRHandler{
		BaseHandler:      NewBaseHandler(logger),
		dashboardUseCase: dashboardUseCase,
	}
}

// GetPrs обрабатывает список пул-реквестов с фильтрами
func (h *PRHandler) GetPrs(c echo.Context, params api.GetPrsParams) error {
	filter := domain.PRFilter{
		Domain:    deref(params.Domain),
		Developer: deref(params.Developer),
		Search:    deref(params.Search),
	}
	if params.State != nil {
		filter.State = string(*params.State)
	}

	logEntry := h.logRequest(c, "list_prs").WithFields(logrus.Fields{
		"state":  filter.State,
		"domain": filter.Domain,
	})

	var err error
	if filter.Page, err = toPage(params.Limit, params.Offset); err != nil {
		return h.respondError(c, logEntry, err, "Invalid pagination")
	}

	page, err := h.dashboardUseCase.ListPullRequests(c.Request().Context(), filter)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list PRs")
	}

	return c.JSON(http.StatusOK, api.PullRequestList{
		Items:  toAPIPullRequests(page.Items),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// GetPrStates обрабатывает распределение пул-реквестов по стадиям
func (h *PRHandler) GetPrStates(c echo.Context, params api.GetPrStatesParams) error {
	logEntry := h.logRequest(c, "get_pr_states")

	dist, err := h.dashboardUseCase.StateDistribution(c.Request().Context(), deref(params.Domain))
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get PR states")
	}

	return c.JSON(http.StatusOK, api.PRStateDistribution{
		Domain:       optString(dist.Domain),
		Distribution: nonNilCounts(dist.Distribution),
		Total:        dist.Total,
	})
}
