package handler

import (
	"net/http"

	"pr-metrics-dashboard/api"
	"pr-metrics-dashboard/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SyncHandler запускает синхронизацию и отдает ее состояние.
type SyncHandler struct {
	*BaseHandler
	syncUseCase domain.SyncUseCase
}

// NewSyncHandler создает новый экземпляр SyncHandler.
func NewSyncHandler(syncUseCase domain.SyncUseCase, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		BaseHandler: NewBaseHandler(logger),
		syncUseCase: syncUseCase,
	}
}

// PostSync ставит синхронизацию в очередь: 202 при запуске, 409 если уже идет.
func (h *SyncHandler) PostSync(c echo.Context) error {
	var req api.PostSyncJSONBody
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			h.logger.WithError(err).Warn("Failed to bind sync request")
			return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "invalid request body"))
		}
	}

	syncReq := domain.SyncRequest{
		SinceDays: intOrZero(req.SinceDays),
		ForceFull: req.ForceFull != nil && *req.ForceFull,
		Source:    "api",
	}
	logEntry := h.logRequest(c, "trigger_sync").WithFields(logrus.Fields{
		"since_days": syncReq.SinceDays,
		"force_full": syncReq.ForceFull,
	})

	res, err := h.syncUseCase.Trigger(c.Request().Context(), syncReq)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to trigger sync")
	}

	status := http.StatusAccepted
	if res.Status == domain.TriggerAlreadyRunning {
		status = http.StatusConflict
	}
	logEntry.WithField("status", res.Status).Info("Sync trigger handled")
	return c.JSON(status, toAPITriggerResponse(res))
}

// GetSyncStatus отдает состояние синхронизации.
func (h *SyncHandler) GetSyncStatus(c echo.Context) error {
	logEntry := h.logRequest(c, "get_sync_status")

	view, err := h.syncUseCase.Status(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get sync status")
	}
	return c.JSON(http.StatusOK, toAPISyncStatus(view))
}
