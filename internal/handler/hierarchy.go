package handler

import (
	"net/http"

	"pr-metrics-dashboard/api"
	"pr-metrics-dashboard/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// HierarchyHandler обрабатывает HTTP-запросы иерархии разработчиков
type HierarchyHandler struct {
	*BaseHandler
	hierarchyUseCase domain.HierarchyUseCase
}

// NewHierarchyHandler создает новый экземпляр HierarchyHandler
func NewHierarchyHandler(hierarchyUseCase domain.HierarchyUseCase, logger *logrus.Logger) *HierarchyHandler {
	return &HierarchyHandler{
		BaseHandler:      NewBaseHandler(logger),
		hierarchyUseCase: hierarchyUseCase,
	}
}

// PutHierarchy заменяет иерархию целиком
func (h *HierarchyHandler) PutHierarchy(c echo.Context) error {
	var req api.PutHierarchyJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind hierarchy request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "invalid request body"))
	}

	logEntry := h.logRequest(c, "replace_hierarchy").WithField("entries", len(req.Entries))
	logEntry.Info("Replacing developer hierarchy")

	if err := h.hierarchyUseCase.Replace(c.Request().Context(), fromAPIHierarchy(req.Entries)); err != nil {
		return h.respondError(c, logEntry, err, "Failed to replace hierarchy")
	}

	logEntry.Info("Hierarchy replaced")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"count": len(req.Entries),
	})
}

// GetHierarchy отдает иерархию
func (h *HierarchyHandler) GetHierarchy(c echo.Context) error {
	logEntry := h.logRequest(c, "get_hierarchy")

	entries, err := h.hierarchyUseCase.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get hierarchy")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"entries": toAPIHierarchy(entries),
	})
}
