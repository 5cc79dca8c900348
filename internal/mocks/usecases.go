package mocks

import (
	"context"

	"pr-metrics-dashboard/internal/domain"

	"github.com/stretchr/testify/mock"
)

type SyncUseCase struct{ mock.Mock }

func (m *SyncUseCase) Trigger(ctx context.Context, req domain.SyncRequest) (domain.TriggerResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.TriggerResult), args.Error(1)
}

func (m *SyncUseCase) Execute(ctx context.Context, job domain.SyncJob) (domain.SyncSummary, error) {
	args := m.Called(ctx, job)
	return args.Get(0).(domain.SyncSummary), args.Error(1)
}

func (m *SyncUseCase) Status(ctx context.Context) (*domain.SyncStatusView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncStatusView), args.Error(1)
}

type AggregationUseCase struct{ mock.Mock }

func (m *AggregationUseCase) AggregateBy(ctx context.Context, dimension domain.Dimension, filter domain.AggregateFilter, page domain.Page) (*domain.AggregatePage, error) {
	args := m.Called(ctx, dimension, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AggregatePage), args.Error(1)
}

type DashboardUseCase struct{ mock.Mock }

func (m *DashboardUseCase) Overview(ctx context.Context) (*domain.Overview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

func (m *DashboardUseCase) ListPullRequests(ctx context.Context, filter domain.PRFilter) (*domain.PRPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PRPage), args.Error(1)
}

func (m *DashboardUseCase) StateDistribution(ctx context.Context, domainName string) (*domain.PRStateDistribution, error) {
	args := m.Called(ctx, domainName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PRStateDistribution), args.Error(1)
}

func (m *DashboardUseCase) Timeline(ctx context.Context, days int, domainName string) ([]domain.TimelinePoint, error) {
	args := m.Called(ctx, days, domainName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimelinePoint), args.Error(1)
}

func (m *DashboardUseCase) Developer(ctx context.Context, username string) (*domain.DeveloperMetrics, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeveloperMetrics), args.Error(1)
}

func (m *DashboardUseCase) Reviewer(ctx context.Context, username string) (*domain.ReviewerMetrics, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewerMetrics), args.Error(1)
}

func (m *DashboardUseCase) Domains(ctx context.Context) ([]*domain.DomainMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DomainMetrics), args.Error(1)
}

func (m *DashboardUseCase) Domain(ctx context.Context, name string) (*domain.DomainDetail, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DomainDetail), args.Error(1)
}

func (m *DashboardUseCase) DomainNames() []string {
	return m.Called().Get(0).([]string)
}

type SimilarityUseCase struct{ mock.Mock }

func (m *SimilarityUseCase) StoreEmbeddings(ctx context.Context, embeddings []domain.Embedding) (int, error) {
	args := m.Called(ctx, embeddings)
	return args.Int(0), args.Error(1)
}

func (m *SimilarityUseCase) RefreshForPRs(ctx context.Context, numbers []int64) error {
	return m.Called(ctx, numbers).Error(0)
}

func (m *SimilarityUseCase) Stats(ctx context.Context, prNumber int64) (*domain.SimilarityStats, error) {
	args := m.Called(ctx, prNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimilarityStats), args.Error(1)
}

type HierarchyUseCase struct{ mock.Mock }

func (m *HierarchyUseCase) Replace(ctx context.Context, entries []domain.HierarchyEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *HierarchyUseCase) List(ctx context.Context) ([]domain.HierarchyEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HierarchyEntry), args.Error(1)
}
