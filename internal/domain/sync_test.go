package domain_test

import (
	"testing"
	"time"

	"pr-metrics-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testPolicy = domain.SyncPolicy{StalenessThreshold: 7 * 24 * time.Hour, LookbackDays: 60}

func ptr(t time.Time) *time.Time { return &t }

func TestDecideStrategy_InitialWhenNoState(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	d := domain.DecideStrategy(nil, now, testPolicy, domain.SyncRequest{})

	assert.Equal(t, domain.SyncTypeFull, d.Type)
	assert.True(t, d.Initial)
	assert.Equal(t, now.AddDate(0, 0, -60), d.Since)
	assert.Equal(t, "Initial sync - fetching last 60 days", d.Description)
}

func TestDecideStrategy_FullWhenLastFullIsStale(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	state := &domain.SyncState{
		LastFullSyncAt:        ptr(now.Add(-8 * 24 * time.Hour)),
		LastIncrementalSyncAt: ptr(now.Add(-time.Hour)),
		Cursor:                ptr(now.Add(-time.Hour)),
	}

	d := domain.DecideStrategy(state, now, testPolicy, domain.SyncRequest{})

	assert.Equal(t, domain.SyncTypeFull, d.Type)
	assert.False(t, d.Initial)
	assert.Equal(t, now.AddDate(0, 0, -60), d.Since)
}

func TestDecideStrategy_IncrementalUsesCursor(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cursor := now.Add(-90 * time.Minute)
	state := &domain.SyncState{
		LastFullSyncAt: ptr(now.Add(-2 * 24 * time.Hour)),
		Cursor:         ptr(cursor),
	}

	d := domain.DecideStrategy(state, now, testPolicy, domain.SyncRequest{})

	assert.Equal(t, domain.SyncTypeIncremental, d.Type)
	assert.Equal(t, cursor, d.Since)
	assert.Equal(t, "Incremental sync - fetching updates from last 1 hour", d.Description)
}

func TestDecideStrategy_ForceFullAndLookbackHint(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	state := &domain.SyncState{
		LastFullSyncAt: ptr(now.Add(-time.Hour)),
		Cursor:         ptr(now.Add(-time.Hour)),
	}

	d := domain.DecideStrategy(state, now, testPolicy, domain.SyncRequest{ForceFull: true, SinceDays: 14})

	assert.Equal(t, domain.SyncTypeFull, d.Type)
	assert.Equal(t, 14, d.LookbackDays)
	assert.Equal(t, now.AddDate(0, 0, -14), d.Since)
}

func TestDecideStrategy_IncrementalDescriptionUnits(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	policy := domain.SyncPolicy{StalenessThreshold: 30 * 24 * time.Hour, LookbackDays: 60}

	testCases := []struct {
		ago      time.Duration
		expected string
	}{
		{time.Minute, "Incremental sync - fetching updates from last 1 minute"},
		{25 * time.Minute, "Incremental sync - fetching updates from last 25 minutes"},
		{5 * time.Hour, "Incremental sync - fetching updates from last 5 hours"},
		{3 * 24 * time.Hour, "Incremental sync - fetching updates from last 3 days"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			state := &domain.SyncState{LastFullSyncAt: ptr(now.Add(-tc.ago)), Cursor: ptr(now.Add(-tc.ago))}
			d := domain.DecideStrategy(state, now, policy, domain.SyncRequest{})
			assert.Equal(t, tc.expected, d.Description)
		})
	}
}

func TestSyncState_LastSyncAt(t *testing.T) {
	full := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	inc := full.Add(48 * time.Hour)

	var nilState *domain.SyncState
	assert.Nil(t, nilState.LastSyncAt())
	assert.Equal(t, full, *(&domain.SyncState{LastFullSyncAt: &full}).LastSyncAt())
	assert.Equal(t, inc, *(&domain.SyncState{LastFullSyncAt: &full, LastIncrementalSyncAt: &inc}).LastSyncAt())
}
