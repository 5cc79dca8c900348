package domain

import (
	"encoding/json"
	"time"
)

// Event - закрытое множество уведомлений для подписчиков.
type Event interface {
	EventType() string
	isEvent()
}

type DataUpdated struct {
	SyncedCount int       `json:"synced_count"`
	Timestamp   time.Time `json:"timestamp"`
}

type SyncComplete struct {
	SyncedCount  int      `json:"synced_count"`
	SkippedCount int      `json:"skipped_count"`
	SyncType     SyncType `json:"sync_type"`
	Description  string   `json:"description"`
}

type SyncFailed struct {
	Reason   string   `json:"reason"`
	SyncType SyncType `json:"sync_type"`
}

func (DataUpdated) EventType() string  { return "data_updated" }
func (SyncComplete) EventType() string { return "sync_complete" }
func (SyncFailed) EventType() string   { return "sync_failed" }

func (DataUpdated) isEvent()  {}
func (SyncComplete) isEvent() {}
func (SyncFailed) isEvent()   {}

type eventEnvelope struct {
	Type string `json:"type"`
	Data Event  `json:"data"`
}

// EncodeEvent сериализует событие в формат {type, data}.
func EncodeEvent(e Event) ([]byte, error) {
	return json.Marshal(eventEnvelope{Type: e.EventType(), Data: e})
}

// EventPublisher доставляет события подписчикам без гарантий.
type EventPublisher interface {
	Publish(e Event)
}
