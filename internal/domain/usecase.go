package domain

import "context"

// SyncUseCase управляет запуском и выполнением синхронизации.
type SyncUseCase interface {
	Trigger(ctx context.Context, req SyncRequest) (TriggerResult, error)
	Execute(ctx context.Context, job SyncJob) (SyncSummary, error)
	Status(ctx context.Context) (*SyncStatusView, error)
}

// AggregationUseCase строит агрегаты по произвольной оси.
type AggregationUseCase interface {
	AggregateBy(ctx context.Context, dimension Dimension, filter AggregateFilter, page Page) (*AggregatePage, error)
}

// DashboardUseCase отдает данные дашборда.
type DashboardUseCase interface {
	Overview(ctx context.Context) (*Overview, error)
	ListPullRequests(ctx context.Context, filter PRFilter) (*PRPage, error)
	StateDistribution(ctx context.Context, domain string) (*PRStateDistribution, error)
	Timeline(ctx context.Context, days int, domain string) ([]TimelinePoint, error)
	Developer(ctx context.Context, username string) (*DeveloperMetrics, error)
	Reviewer(ctx context.Context, username string) (*ReviewerMetrics, error)
	Domains(ctx context.Context) ([]*DomainMetrics, error)
	Domain(ctx context.Context, name string) (*DomainDetail, error)
	DomainNames() []string
}

// SimilarityUseCase считает сходство задач по векторам.
type SimilarityUseCase interface {
	StoreEmbeddings(ctx context.Context, embeddings []Embedding) (int, error)
	RefreshForPRs(ctx context.Context, numbers []int64) error
	Stats(ctx context.Context, prNumber int64) (*SimilarityStats, error)
}

// HierarchyUseCase управляет иерархией разработчиков.
type HierarchyUseCase interface {
	Replace(ctx context.Context, entries []HierarchyEntry) error
	List(ctx context.Context) ([]HierarchyEntry, error)
}
