package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pr-metrics-dashboard/internal/database"
	"pr-metrics-dashboard/internal/domain"
)

// SnapshotRepository пересчитывает таблицы снимков по текущим PR.
type SnapshotRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewSnapshotRepository создает новый экземпляр SnapshotRepository.
func NewSnapshotRepository(db *sql.DB, queries *database.Queries) *SnapshotRepository {
	return &SnapshotRepository{
		db:      db,
		queries: queries,
	}
}

// Refresh пересчитывает снимки для ключей из scope и удаляет строки без PR.
// Возвращает число измененных строк.
func (r *SnapshotRepository) Refresh(ctx context.Context, scope domain.SnapshotScope) (int64, error) {
	if scope.Empty() {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	steps := []struct {
		name string
		run  func() (int64, error)
	}{
		{"developer metrics", func() (int64, error) {
			return txQueries.RefreshDeveloperMetrics(ctx, database.RefreshDeveloperMetricsParams{
				RefreshAll: scope.All, Usernames: nonNil(scope.Developers),
			})
		}},
		{"orphan developer metrics", func() (int64, error) {
			return txQueries.DeleteOrphanDeveloperMetrics(ctx, database.DeleteOrphanDeveloperMetricsParams{
				RefreshAll: scope.All, Usernames: nonNil(scope.Developers),
			})
		}},
		{"reviewer metrics", func() (int64, error) {
			return txQueries.RefreshReviewerMetrics(ctx, database.RefreshReviewerMetricsParams{
				RefreshAll: scope.All, Usernames: nonNil(scope.Reviewers),
			})
		}},
		{"orphan reviewer metrics", func() (int64, error) {
			return txQueries.DeleteOrphanReviewerMetrics(ctx, database.DeleteOrphanReviewerMetricsParams{
				RefreshAll: scope.All, Usernames: nonNil(scope.Reviewers),
			})
		}},
		{"domain metrics", func() (int64, error) {
			return txQueries.RefreshDomainMetrics(ctx, database.RefreshDomainMetricsParams{
				RefreshAll: scope.All, Domains: nonNil(scope.Domains),
			})
		}},
		{"orphan domain metrics", func() (int64, error) {
			return txQueries.DeleteOrphanDomainMetrics(ctx, database.DeleteOrphanDomainMetricsParams{
				RefreshAll: scope.All, Domains: nonNil(scope.Domains),
			})
		}},
	}

	var total int64
	for _, step := range steps {
		var n int64
		n, err = step.run()
		if err != nil {
			return 0, fmt.Errorf("failed to refresh %s: %w", step.name, err)
		}
		total += n
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return total, nil
}

// GetDeveloper возвращает снимок разработчика.
func (r *SnapshotRepository) GetDeveloper(ctx context.Context, username string) (*domain.DeveloperMetrics, error) {
	m, err := r.queries.GetDeveloperMetrics(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("failed to get developer metrics: %w", err)
	}

	domains, err := decodeDomainCounts(m.Domains)
	if err != nil {
		return nil, err
	}

	return &domain.DeveloperMetrics{
		Username:      m.Username,
		GitHubLogin:   m.GithubLogin,
		TotalPRs:      int(m.TotalPrs),
		OpenPRs:       int(m.OpenPrs),
		MergedPRs:     int(m.MergedPrs),
		TotalRework:   int(m.TotalRework),
		CheckFailures: int(m.CheckFailures),
		Domains:       domains,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// GetReviewer возвращает снимок ревьюера.
func (r *SnapshotRepository) GetReviewer(ctx context.Context, username string) (*domain.ReviewerMetrics, error) {
	m, err := r.queries.GetReviewerMetrics(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewerNotFound
		}
		return nil, fmt.Errorf("failed to get reviewer metrics: %w", err)
	}

	domains, err := decodeDomainCounts(m.Domains)
	if err != nil {
		return nil, err
	}

	return &domain.ReviewerMetrics{
		Username:         m.Username,
		TotalReviews:     int(m.TotalReviews),
		ApprovedReviews:  int(m.ApprovedReviews),
		ChangesRequested: int(m.ChangesRequested),
		CommentedReviews: int(m.CommentedReviews),
		Domains:          domains,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

// ListDomains возвращает снимки доменов, Others последним.
func (r *SnapshotRepository) ListDomains(ctx context.Context) ([]*domain.DomainMetrics, error) {
	rows, err := r.queries.ListDomainMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list domain metrics: %w", err)
	}

	result := make([]*domain.DomainMetrics, len(rows))
	for i, m := range rows {
		result[i] = toDomainMetrics(m)
	}

	return result, nil
}

// GetDomain возвращает снимок одного домена.
func (r *SnapshotRepository) GetDomain(ctx context.Context, name string) (*domain.DomainMetrics, error) {
	m, err := r.queries.GetDomainMetrics(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDomainNotFound
		}
		return nil, fmt.Errorf("failed to get domain metrics: %w", err)
	}
	return toDomainMetrics(m), nil
}

func toDomainMetrics(m database.DomainMetric) *domain.DomainMetrics {
	return &domain.DomainMetrics{
		Domain:                  m.Domain,
		TotalTasks:              int(m.TotalTasks),
		Merged:                  int(m.Merged),
		ReadyToMerge:            int(m.ReadyToMerge),
		ExpertApproved:          int(m.ExpertApproved),
		CalibratorReviewPending: int(m.CalibratorReviewPending),
		ExpertReviewPending:     int(m.ExpertReviewPending),
		ExpertCount:             int(m.ExpertCount),
		HardCount:               int(m.HardCount),
		MediumCount:             int(m.MediumCount),
		TotalRework:             int(m.TotalRework),
		UpdatedAt:               m.UpdatedAt,
	}
}

// Counts возвращает число строк в каждом снимке.
func (r *SnapshotRepository) Counts(ctx context.Context) (domain.SnapshotCounts, error) {
	c, err := r.queries.CountSnapshots(ctx)
	if err != nil {
		return domain.SnapshotCounts{}, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return domain.SnapshotCounts{
		Developers: int(c.Developers),
		Reviewers:  int(c.Reviewers),
		Domains:    int(c.Domains),
	}, nil
}

func decodeDomainCounts(raw json.RawMessage) (map[string]int, error) {
	domains := map[string]int{}
	if len(raw) == 0 {
		return domains, nil
	}
	if err := json.Unmarshal(raw, &domains); err != nil {
		return nil, fmt.Errorf("failed to decode domain counts: %w", err)
	}
	return domains, nil
}
