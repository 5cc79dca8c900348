package handler_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/handler"
	"pr-metrics-dashboard/internal/notify"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWSServer(t *testing.T) (*notify.Hub, string) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	hub := notify.NewHub(4, logger)
	e := echo.New()
	e.GET("/ws", handler.NewWSHandler(hub, time.Minute, logger).Serve)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestWSHandler_DeliversEvents(t *testing.T) {
	// Setup
	hub, url := newWSServer(t)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	// Execute
	hub.Publish(domain.SyncComplete{SyncedCount: 3, SyncType: domain.SyncTypeIncremental, Description: "done"})

	// Assert
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string                 `json:"type"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, "sync_complete", msg.Type)
	assert.Equal(t, float64(3), msg.Data["synced_count"])
	assert.Equal(t, "incremental", msg.Data["sync_type"])
}

func TestWSHandler_UnsubscribesOnClose(t *testing.T) {
	hub, url := newWSServer(t)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWSHandler_RejectsPlainHTTP(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	hub := notify.NewHub(1, logger)
	h := handler.NewWSHandler(hub, time.Minute, logger)

	e := echo.New()
	req := httptest.NewRequest("GET", "/ws", nil)
	rec := httptest.NewRecorder()

	err := h.Serve(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, 0, hub.Len())
}
