package handler

import (
	"net/http"
	"time"

	"pr-metrics-dashboard/internal/notify"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const wsWriteWait = 10 * time.Second

// WSHandler отдает события обновления данных по WebSocket.
type WSHandler struct {
	*BaseHandler
	hub          *notify.Hub
	pingInterval time.Duration
	upgrader     websocket.Upgrader
}

// NewWSHandler создает новый экземпляр WSHandler.
func NewWSHandler(hub *notify.Hub, pingInterval time.Duration, logger *logrus.Logger) *WSHandler {
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	return &WSHandler{
		BaseHandler:  NewBaseHandler(logger),
		hub:          hub,
		pingInterval: pingInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Serve держит соединение до закрытия клиентом или ошибки записи.
// Входящие сообщения игнорируются.
func (h *WSHandler) Serve(c echo.Context) error {
	logEntry := h.logRequest(c, "ws_subscribe")

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logEntry.WithError(err).Warn("WebSocket upgrade failed")
		return nil
	}
	defer conn.Close()

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)
	logEntry.Debug("WebSocket client connected")

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			logEntry.Debug("WebSocket client disconnected")
			return nil
		case <-c.Request().Context().Done():
			return nil
		case payload, ok := <-sub.C:
			if !ok {
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logEntry.WithError(err).Debug("WebSocket write failed")
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}
