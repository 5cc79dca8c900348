package handler

import (
	"net/http"

	"pr-metrics-dashboard/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
	})
}

// respondError отдает доменную ошибку в формате ErrorResponse.
// Текст внутренних ошибок остается только в логах.
func (h *BaseHandler) respondError(c echo.Context, logEntry *logrus.Entry, err error, msg string) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		logEntry.WithError(err).Warn(msg)
		return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
	}
	logEntry.WithError(err).Error(msg)
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
}
