package notify

import (
	"sync"

	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/metrics"

	"github.com/sirupsen/logrus"
)

// Subscription - канал событий одного подписчика.
type Subscription struct {
	id uint64
	C  chan []byte
}

// Hub рассылает события подписчикам без гарантий доставки.
// Медленный подписчик теряет события, публикатор никогда не блокируется.
type Hub struct {
	mu         sync.RWMutex
	nextID     uint64
	subs       map[uint64]*Subscription
	bufferSize int
	logger     *logrus.Logger
}

// NewHub создает хаб с буфером bufferSize на подписчика.
func NewHub(bufferSize int, logger *logrus.Logger) *Hub {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Hub{
		subs:       make(map[uint64]*Subscription),
		bufferSize: bufferSize,
		logger:     logger,
	}
}

// Subscribe регистрирует нового подписчика.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{id: h.nextID, C: make(chan []byte, h.bufferSize)}
	h.subs[sub.id] = sub
	metrics.WSClients.Inc()
	return sub
}

// Unsubscribe удаляет подписчика и закрывает его канал. Повторный вызов безопасен.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub.id]; !ok {
		return
	}
	delete(h.subs, sub.id)
	close(sub.C)
	metrics.WSClients.Dec()
}

// Publish кодирует событие один раз и раздает всем подписчикам.
func (h *Hub) Publish(e domain.Event) {
	payload, err := domain.EncodeEvent(e)
	if err != nil {
		h.logger.WithError(err).WithField("event", e.EventType()).Error("Failed to encode event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		select {
		case sub.C <- payload:
		default:
			metrics.EventsDroppedTotal.Inc()
		}
	}
}

// Len возвращает число подписчиков.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
