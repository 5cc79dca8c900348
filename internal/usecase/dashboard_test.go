package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/mocks"
	"pr-metrics-dashboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	dashboard *mocks.DashboardRepository
	snapshots *mocks.SnapshotRepository
	state     *mocks.SyncStateRepository
	uc        *usecase.DashboardUseCase
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		dashboard: &mocks.DashboardRepository{},
		snapshots: &mocks.SnapshotRepository{},
		state:     &mocks.SyncStateRepository{},
	}
	f.uc = usecase.NewDashboardUseCase(f.dashboard, f.snapshots, f.state,
		domain.NewDomainNormalizer([]string{"Healthcare", "Finance"}))
	return f
}

func TestDashboardUseCase_Overview(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()

	full := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	incr := full.Add(time.Hour)
	recent := []*domain.PullRequest{{Number: 1}}

	f.dashboard.On("PRCounts", mock.Anything).Return(domain.PRCounts{Total: 10, Open: 4, Merged: 5, Closed: 1, AverageRework: 0.5}, nil)
	f.snapshots.On("Counts", mock.Anything).Return(domain.SnapshotCounts{Developers: 3, Reviewers: 2, Domains: 2}, nil)
	f.dashboard.On("RecentPRs", mock.Anything, 10).Return(recent, nil)
	f.state.On("GetState", mock.Anything).Return(&domain.SyncState{LastFullSyncAt: &full, LastIncrementalSyncAt: &incr}, nil)
	f.state.On("LatestRun", mock.Anything).Return(&domain.SyncRun{Status: domain.SyncRunCompleted}, nil)

	overview, err := f.uc.Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, 10, overview.TotalPRs)
	assert.Equal(t, 4, overview.OpenPRs)
	assert.Equal(t, 3, overview.Developers)
	assert.Equal(t, 0.5, overview.AverageRework)
	assert.Equal(t, recent, overview.RecentPRs)
	assert.Equal(t, &incr, overview.LastSyncAt)
	assert.Equal(t, "completed", overview.LastSyncStatus)
}

func TestDashboardUseCase_Overview_NeverSynced(t *testing.T) {
	f := newDashboardFixture()

	f.dashboard.On("PRCounts", mock.Anything).Return(domain.PRCounts{}, nil)
	f.snapshots.On("Counts", mock.Anything).Return(domain.SnapshotCounts{}, nil)
	f.dashboard.On("RecentPRs", mock.Anything, 10).Return([]*domain.PullRequest{}, nil)
	f.state.On("GetState", mock.Anything).Return(nil, nil)
	f.state.On("LatestRun", mock.Anything).Return(nil, nil)

	overview, err := f.uc.Overview(context.Background())

	require.NoError(t, err)
	assert.Nil(t, overview.LastSyncAt)
	assert.Empty(t, overview.LastSyncStatus)
}

func TestDashboardUseCase_Overview_Error(t *testing.T) {
	f := newDashboardFixture()

	f.dashboard.On("PRCounts", mock.Anything).Return(domain.PRCounts{}, errors.New("db down"))
	f.snapshots.On("Counts", mock.Anything).Return(domain.SnapshotCounts{}, nil)
	f.dashboard.On("RecentPRs", mock.Anything, 10).Return(nil, nil)
	f.state.On("GetState", mock.Anything).Return(nil, nil)
	f.state.On("LatestRun", mock.Anything).Return(nil, nil)

	overview, err := f.uc.Overview(context.Background())
	assert.Error(t, err)
	assert.Nil(t, overview)
}

func TestDashboardUseCase_ListPullRequests(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()

	items := []*domain.PullRequest{{Number: 2}, {Number: 1}}
	f.dashboard.On("ListPRs", ctx, domain.PRFilter{
		State:  "merged",
		Domain: "Finance",
		Page:   domain.Page{Limit: 50},
	}).Return(items, 7, nil)

	page, err := f.uc.ListPullRequests(ctx, domain.PRFilter{State: "merged", Domain: "FINANCE"})

	require.NoError(t, err)
	assert.Equal(t, items, page.Items)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 50, page.Limit)
	f.dashboard.AssertExpectations(t)
}

func TestDashboardUseCase_ListPullRequests_ValidationErrors(t *testing.T) {
	f := newDashboardFixture()

	testCases := []struct {
		name     string
		filter   domain.PRFilter
		expected error
	}{
		{"Unknown state", domain.PRFilter{State: "rejected"}, domain.ErrInvalidFilter},
		{"Unknown domain", domain.PRFilter{Domain: "astrology"}, domain.ErrInvalidFilter},
		{"Bad limit", domain.PRFilter{Page: domain.Page{Limit: -5}}, domain.ErrInvalidPagination},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.ListPullRequests(context.Background(), tc.filter)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestDashboardUseCase_StateDistribution(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()

	dist := map[string]int{
		domain.StageMerged:         3,
		domain.StageReadyToMerge:   1,
		domain.StageExpertApproved: 0,
		domain.StageOther:          2,
	}
	f.dashboard.On("StageDistribution", ctx, "Healthcare").Return(dist, nil)

	res, err := f.uc.StateDistribution(ctx, "healthcare")

	require.NoError(t, err)
	assert.Equal(t, "Healthcare", res.Domain)
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, dist, res.Distribution)
}

func TestDashboardUseCase_Timeline(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()

	f.dashboard.On("Timeline", ctx, 30, "").Return([]domain.TimelinePoint{{Created: 1}}, nil)

	points, err := f.uc.Timeline(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, points, 1)

	_, err = f.uc.Timeline(ctx, 366, "")
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	_, err = f.uc.Timeline(ctx, -1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestDashboardUseCase_DeveloperAndReviewer(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()

	_, err := f.uc.Developer(ctx, "")
	assert.ErrorIs(t, err, domain.ErrDeveloperNotFound)
	_, err = f.uc.Reviewer(ctx, "")
	assert.ErrorIs(t, err, domain.ErrReviewerNotFound)

	dev := &domain.DeveloperMetrics{Username: "alice", TotalPRs: 3}
	f.snapshots.On("GetDeveloper", ctx, "alice").Return(dev, nil)
	f.snapshots.On("GetReviewer", ctx, "ghost").Return(nil, domain.ErrReviewerNotFound)

	got, err := f.uc.Developer(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, dev, got)

	_, err = f.uc.Reviewer(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrReviewerNotFound)
}

func TestDashboardUseCase_DomainNames(t *testing.T) {
	f := newDashboardFixture()
	assert.Equal(t, []string{"Finance", "Healthcare", "Others"}, f.uc.DomainNames())
}

func TestDashboardUseCase_Domain(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newDashboardFixture()

	// Test data
	metrics := &domain.DomainMetrics{Domain: "Finance", TotalTasks: 7, Merged: 3}
	recent := []*domain.PullRequest{{Number: 12, Domain: "Finance"}, {Number: 9, Domain: "Finance"}}

	// Mock expectations
	f.snapshots.On("GetDomain", mock.Anything, "Finance").Return(metrics, nil)
	f.dashboard.On("ListPRs", mock.Anything, domain.PRFilter{
		Domain: "Finance",
		Page:   domain.Page{Limit: 20},
	}).Return(recent, 7, nil)

	// Execute
	detail, err := f.uc.Domain(ctx, "finance")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, metrics, detail.Metrics)
	assert.Equal(t, recent, detail.RecentPRs)
	f.snapshots.AssertExpectations(t)
	f.dashboard.AssertExpectations(t)
}

func TestDashboardUseCase_Domain_NotFound(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name  string
		input string
		setup func(f *dashboardFixture)
	}{
		{
			name:  "Unknown domain",
			input: "astrology",
			setup: func(f *dashboardFixture) {},
		},
		{
			name:  "Known domain without snapshot",
			input: "Healthcare",
			setup: func(f *dashboardFixture) {
				f.snapshots.On("GetDomain", mock.Anything, "Healthcare").Return(nil, domain.ErrDomainNotFound)
				f.dashboard.On("ListPRs", mock.Anything, mock.Anything).Return([]*domain.PullRequest{}, 0, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newDashboardFixture()
			tc.setup(f)

			detail, err := f.uc.Domain(ctx, tc.input)

			assert.ErrorIs(t, err, domain.ErrDomainNotFound)
			assert.Nil(t, detail)
		})
	}
}
