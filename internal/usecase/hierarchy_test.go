package usecase_test

import (
	"context"
	"errors"
	"testing"

	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/mocks"
	"pr-metrics-dashboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type hierarchyFixture struct {
	repo      *mocks.HierarchyRepository
	cache     *mocks.AggregationCache
	publisher *mocks.EventPublisher
	uc        *usecase.HierarchyUseCase
}

func newHierarchyFixture() *hierarchyFixture {
	f := &hierarchyFixture{
		repo:      &mocks.HierarchyRepository{},
		cache:     &mocks.AggregationCache{},
		publisher: &mocks.EventPublisher{},
	}
	f.uc = usecase.NewHierarchyUseCase(f.repo, f.cache, f.publisher, silentLogger())
	return f
}

func TestHierarchyUseCase_Replace(t *testing.T) {
	ctx := context.Background()
	f := newHierarchyFixture()

	f.repo.On("Replace", ctx, []domain.HierarchyEntry{
		{GitHubUser: "alice", PodLead: "pat"},
		{GitHubUser: "bob", Calibrator: "cal"},
	}).Return(int64(0), nil)

	err := f.uc.Replace(ctx, []domain.HierarchyEntry{
		{GitHubUser: "  alice ", PodLead: "pat"},
		{GitHubUser: "bob", Calibrator: "cal"},
	})

	require.NoError(t, err)
	f.repo.AssertExpectations(t)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestHierarchyUseCase_Replace_ReassignedPRsInvalidateAggregates(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newHierarchyFixture()

	// Mock expectations
	f.repo.On("Replace", ctx, mock.Anything).Return(int64(3), nil)
	f.cache.On("Invalidate", ctx).Return(errors.New("redis down"))
	f.publisher.On("Publish", mock.MatchedBy(func(e domain.DataUpdated) bool {
		return e.SyncedCount == 3 && !e.Timestamp.IsZero()
	})).Return()

	// Execute
	err := f.uc.Replace(ctx, []domain.HierarchyEntry{{GitHubUser: "alice", PodLead: "quinn"}})

	// Assert
	require.NoError(t, err)
	f.cache.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestHierarchyUseCase_Replace_RepositoryError(t *testing.T) {
	ctx := context.Background()
	f := newHierarchyFixture()

	f.repo.On("Replace", ctx, mock.Anything).Return(int64(0), errors.New("db down"))

	err := f.uc.Replace(ctx, []domain.HierarchyEntry{{GitHubUser: "alice"}})

	assert.Error(t, err)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestHierarchyUseCase_Replace_ValidationErrors(t *testing.T) {
	f := newHierarchyFixture()

	testCases := []struct {
		name    string
		entries []domain.HierarchyEntry
	}{
		{"Empty user", []domain.HierarchyEntry{{GitHubUser: " "}}},
		{"Duplicate ignoring case", []domain.HierarchyEntry{{GitHubUser: "Alice"}, {GitHubUser: "alice"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.uc.Replace(context.Background(), tc.entries)
			assert.ErrorIs(t, err, domain.ErrInvalidHierarchy)
		})
	}
	f.repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestHierarchyUseCase_List(t *testing.T) {
	ctx := context.Background()
	f := newHierarchyFixture()

	entries := []domain.HierarchyEntry{{GitHubUser: "alice"}}
	f.repo.On("List", ctx).Return(entries, nil)

	got, err := f.uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
