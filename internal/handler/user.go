package handler

import (
	"net/http"

	"pr-metrics-dashboard/api"
	"pr-metrics-dashboard/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы по разработчикам и ревьюерам.
type UserHandler struct {
	*BaseHandler
	dashboardUseCase   domain.DashboardUseCase
	aggregationUseCase domain.AggregationUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(dashboardUseCase domain.DashboardUseCase, aggregationUseCase domain.AggregationUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler:        NewBaseHandler(logger),
		dashboardUseCase:   dashboardUseCase,
		aggregationUseCase: aggregationUseCase,
	}
}

// GetDevelopers отдает страницу разработчиков.
func (h *UserHandler) GetDevelopers(c echo.Context, params api.GetDevelopersParams) error {
	return h.listUsers(c, "list_developers", domain.DimensionDeveloper,
		params.Domain, params.Search, params.SortBy, params.Limit, params.Offset)
}

// GetReviewers отдает страницу ревьюеров.
func (h *UserHandler) GetReviewers(c echo.Context, params api.GetReviewersParams) error {
	return h.listUsers(c, "list_reviewers", domain.DimensionReviewer,
		params.Domain, params.Search, params.SortBy, params.Limit, params.Offset)
}

func (h *UserHandler) listUsers(c echo.Context, operation string, dim domain.Dimension,
	domainName, search *string, sortBy *api.SortByQuery, limit, offset *int) error {
	logEntry := h.logRequest(c, operation)

	filter := domain.AggregateFilter{Domain: domainName, Search: deref(search)}
	if sortBy != nil {
		filter.SortBy = string(*sortBy)
	}
	page, err := toPage(limit, offset)
	if err != nil {
		return h.respondError(c, logEntry, err, "Invalid pagination")
	}

	result, err := h.aggregationUseCase.AggregateBy(c.Request().Context(), dim, filter, page)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list users")
	}
	return c.JSON(http.StatusOK, toAPIAggregationPage(result))
}

// GetDeveloper отдает снимок разработчика.
func (h *UserHandler) GetDeveloper(c echo.Context, username api.UsernamePath) error {
	logEntry := h.logRequest(c, "get_developer").WithField("username", username)

	m, err := h.dashboardUseCase.Developer(c.Request().Context(), username)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get developer")
	}
	return c.JSON(http.StatusOK, toAPIDeveloper(m))
}

// GetReviewer отдает снимок ревьюера.
func (h *UserHandler) GetReviewer(c echo.Context, username api.UsernamePath) error {
	logEntry := h.logRequest(c, "get_reviewer").WithField("username", username)

	m, err := h.dashboardUseCase.Reviewer(c.Request().Context(), username)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get reviewer")
	}
	return c.JSON(http.StatusOK, toAPIReviewer(m))
}
