package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pr-metrics-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryPRs - хранилище в памяти: запись меняется, только если содержимое отличается.
type memoryPRs struct {
	mu  sync.Mutex
	prs map[int64]domain.PullRequest
}

func (m *memoryPRs) UpsertWithActivity(_ context.Context, pr *domain.PullRequest, _ []domain.Review, _ []domain.CheckRun) (domain.UpsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.prs[pr.Number]
	if ok && assert.ObjectsAreEqual(prev, *pr) {
		return domain.UpsertResult{Previous: &domain.PRKeys{Trainer: prev.Trainer, Domain: prev.Domain}}, nil
	}
	m.prs[pr.Number] = *pr
	if !ok {
		return domain.UpsertResult{Changed: true}, nil
	}
	return domain.UpsertResult{Changed: true, Previous: &domain.PRKeys{Trainer: prev.Trainer, Domain: prev.Domain}}, nil
}

func (m *memoryPRs) GetByNumber(_ context.Context, number int64) (*domain.PullRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pr, ok := m.prs[number]
	if !ok {
		return nil, domain.ErrPRNotFound
	}
	return &pr, nil
}

func TestSyncUseCase_Execute_RerunOnUnchangedSource(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newSyncFixture()
	store := &memoryPRs{prs: map[int64]domain.PullRequest{}}
	f.uc = buildSyncUseCase(f, store)

	// Test data: источник каждый раз отдает свежие копии одних и тех же PR
	updated := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fetch := func() []*domain.PullRequest {
		return []*domain.PullRequest{
			{Number: 1, Title: "alice-finance-web-hard-1700000000", AuthorLogin: "alice", State: domain.PRStateOpen,
				UpdatedAt: updated, Labels: []string{"ready-to-merge"}, HeadSHA: "abc"},
			{Number: 2, Title: "bob-healthcare-api-expert-1700000001", AuthorLogin: "bob", State: domain.PRStateClosed,
				Merged: true, UpdatedAt: updated, Labels: []string{"Expert"}, HeadSHA: "def"},
		}
	}

	// Mock expectations
	f.hierarchy.On("List", mock.Anything).Return(nil, nil)
	f.source.On("FetchPullRequests", mock.Anything, mock.Anything, "all").Return(seqOf(fetch()...)).Once()
	f.source.On("FetchPullRequests", mock.Anything, mock.Anything, "all").Return(seqOf(fetch()...)).Once()
	f.source.On("FetchReviews", mock.Anything, mock.Anything).Return(nil, nil)
	f.source.On("FetchCheckRuns", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	f.snapshots.On("Refresh", ctx, domain.SnapshotScope{All: true}).Return(int64(0), nil)
	f.cache.On("Invalidate", ctx).Return(nil)
	f.publisher.On("Publish", mock.Anything).Return()
	f.state.On("CompleteRun", ctx, mock.Anything, mock.Anything).Return(nil)
	f.lease.On("Release", mock.Anything).Return(nil)

	// Execute
	first, err := f.uc.Execute(ctx, fullJob(f.lease))
	require.NoError(t, err)
	second, err := f.uc.Execute(ctx, fullJob(f.lease))
	require.NoError(t, err)

	// Assert
	assert.Equal(t, domain.SyncSummary{Synced: 2, Changed: 2}, first)
	assert.Equal(t, domain.SyncSummary{Synced: 2}, second)

	f.cache.AssertNumberOfCalls(t, "Invalidate", 1)
	var dataUpdated, completed int
	for _, call := range f.publisher.Calls {
		switch call.Arguments.Get(0).(type) {
		case domain.DataUpdated:
			dataUpdated++
		case domain.SyncComplete:
			completed++
		}
	}
	assert.Equal(t, 1, dataUpdated)
	assert.Equal(t, 2, completed)
}
