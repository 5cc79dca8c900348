package domain_test

import (
	"testing"
	"time"

	"pr-metrics-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	ts := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		event    domain.Event
		expected string
	}{
		{
			name:     "Data updated",
			event:    domain.DataUpdated{SyncedCount: 3, Timestamp: ts},
			expected: `{"type":"data_updated","data":{"synced_count":3,"timestamp":"2026-03-10T12:00:00Z"}}`,
		},
		{
			name:     "Sync complete",
			event:    domain.SyncComplete{SyncedCount: 5, SkippedCount: 1, SyncType: domain.SyncTypeIncremental, Description: "d"},
			expected: `{"type":"sync_complete","data":{"synced_count":5,"skipped_count":1,"sync_type":"incremental","description":"d"}}`,
		},
		{
			name:     "Sync failed",
			event:    domain.SyncFailed{Reason: "boom", SyncType: domain.SyncTypeFull},
			expected: `{"type":"sync_failed","data":{"reason":"boom","sync_type":"full"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := domain.EncodeEvent(tc.event)
			require.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(b))
		})
	}
}
