// Package mocks содержит testify моки интерфейсов domain.
package mocks

import (
	"context"
	"iter"
	"time"

	"pr-metrics-dashboard/internal/domain"

	"github.com/stretchr/testify/mock"
)

type PRRepository struct{ mock.Mock }

func (m *PRRepository) UpsertWithActivity(ctx context.Context, pr *domain.PullRequest, reviews []domain.Review, checks []domain.CheckRun) (domain.UpsertResult, error) {
	args := m.Called(ctx, pr, reviews, checks)
	return args.Get(0).(domain.UpsertResult), args.Error(1)
}

func (m *PRRepository) GetByNumber(ctx context.Context, number int64) (*domain.PullRequest, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

type SyncStateRepository struct{ mock.Mock }

func (m *SyncStateRepository) GetState(ctx context.Context) (*domain.SyncState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncState), args.Error(1)
}

func (m *SyncStateRepository) StartRun(ctx context.Context, run *domain.SyncRun) error {
	return m.Called(ctx, run).Error(0)
}

func (m *SyncStateRepository) CompleteRun(ctx context.Context, run *domain.SyncRun, state *domain.SyncState) error {
	return m.Called(ctx, run, state).Error(0)
}

func (m *SyncStateRepository) FailRun(ctx context.Context, run *domain.SyncRun) error {
	return m.Called(ctx, run).Error(0)
}

func (m *SyncStateRepository) LatestRun(ctx context.Context) (*domain.SyncRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncRun), args.Error(1)
}

func (m *SyncStateRepository) AbandonRunning(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type SnapshotRepository struct{ mock.Mock }

func (m *SnapshotRepository) Refresh(ctx context.Context, scope domain.SnapshotScope) (int64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SnapshotRepository) GetDeveloper(ctx context.Context, username string) (*domain.DeveloperMetrics, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeveloperMetrics), args.Error(1)
}

func (m *SnapshotRepository) GetReviewer(ctx context.Context, username string) (*domain.ReviewerMetrics, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewerMetrics), args.Error(1)
}

func (m *SnapshotRepository) ListDomains(ctx context.Context) ([]*domain.DomainMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DomainMetrics), args.Error(1)
}

func (m *SnapshotRepository) GetDomain(ctx context.Context, name string) (*domain.DomainMetrics, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DomainMetrics), args.Error(1)
}

func (m *SnapshotRepository) Counts(ctx context.Context) (domain.SnapshotCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SnapshotCounts), args.Error(1)
}

type HierarchyRepository struct{ mock.Mock }

func (m *HierarchyRepository) Replace(ctx context.Context, entries []domain.HierarchyEntry) (int64, error) {
	args := m.Called(ctx, entries)
	return args.Get(0).(int64), args.Error(1)
}

func (m *HierarchyRepository) List(ctx context.Context) ([]domain.HierarchyEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HierarchyEntry), args.Error(1)
}

type SimilarityRepository struct{ mock.Mock }

func (m *SimilarityRepository) UpsertEmbedding(ctx context.Context, e domain.Embedding) error {
	return m.Called(ctx, e).Error(0)
}

func (m *SimilarityRepository) DomainEmbeddings(ctx context.Context, domainName string) ([]domain.Embedding, error) {
	args := m.Called(ctx, domainName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Embedding), args.Error(1)
}

func (m *SimilarityRepository) ReplacePairs(ctx context.Context, prNumber int64, pairs []domain.SimilarityPair) error {
	return m.Called(ctx, prNumber, pairs).Error(0)
}

func (m *SimilarityRepository) Stats(ctx context.Context, prNumber int64, top int) (*domain.SimilarityStats, error) {
	args := m.Called(ctx, prNumber, top)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimilarityStats), args.Error(1)
}

type AggregationRepository struct{ mock.Mock }

func (m *AggregationRepository) Aggregate(ctx context.Context, q domain.AggregateQuery) ([]domain.AggregateCounts, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AggregateCounts), args.Int(1), args.Error(2)
}

type AggregationCache struct{ mock.Mock }

func (m *AggregationCache) Get(ctx context.Context, key string, dst any) (int64, bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *AggregationCache) Set(ctx context.Context, key string, version int64, value any) error {
	return m.Called(ctx, key, version, value).Error(0)
}

func (m *AggregationCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type DashboardRepository struct{ mock.Mock }

func (m *DashboardRepository) PRCounts(ctx context.Context) (domain.PRCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PRCounts), args.Error(1)
}

func (m *DashboardRepository) RecentPRs(ctx context.Context, limit int) ([]*domain.PullRequest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PullRequest), args.Error(1)
}

func (m *DashboardRepository) ListPRs(ctx context.Context, filter domain.PRFilter) ([]*domain.PullRequest, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.PullRequest), args.Int(1), args.Error(2)
}

func (m *DashboardRepository) StageDistribution(ctx context.Context, domainName string) (map[string]int, error) {
	args := m.Called(ctx, domainName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *DashboardRepository) Timeline(ctx context.Context, days int, domainName string) ([]domain.TimelinePoint, error) {
	args := m.Called(ctx, days, domainName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimelinePoint), args.Error(1)
}

type PullRequestSource struct{ mock.Mock }

func (m *PullRequestSource) FetchPullRequests(ctx context.Context, since time.Time, state string) iter.Seq2[*domain.PullRequest, error] {
	args := m.Called(ctx, since, state)
	return args.Get(0).(iter.Seq2[*domain.PullRequest, error])
}

func (m *PullRequestSource) FetchReviews(ctx context.Context, number int64) ([]domain.Review, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *PullRequestSource) FetchCheckRuns(ctx context.Context, number int64, headSHA string) ([]domain.CheckRun, error) {
	args := m.Called(ctx, number, headSHA)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckRun), args.Error(1)
}

type SyncLocker struct{ mock.Mock }

func (m *SyncLocker) TryAcquire(ctx context.Context) (domain.Lease, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(domain.Lease), args.Bool(1), args.Error(2)
}

type Lease struct{ mock.Mock }

func (m *Lease) Release(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type SyncQueue struct{ mock.Mock }

func (m *SyncQueue) Enqueue(job domain.SyncJob) bool {
	return m.Called(job).Bool(0)
}

type EventPublisher struct{ mock.Mock }

func (m *EventPublisher) Publish(e domain.Event) {
	m.Called(e)
}
