package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pr-metrics-dashboard/internal/database"
	"pr-metrics-dashboard/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// HierarchyRepository хранит иерархию разработчиков.
type HierarchyRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewHierarchyRepository создает новый экземпляр HierarchyRepository.
func NewHierarchyRepository(db *sql.DB, queries *database.Queries) *HierarchyRepository {
	return &HierarchyRepository{
		db:      db,
		queries: queries,
	}
}

// Replace полностью заменяет иерархию в одной транзакции и переназначает
// pod_lead и calibrator у сохраненных PR. Возвращает число переназначенных PR.
func (r *HierarchyRepository) Replace(ctx context.Context, entries []domain.HierarchyEntry) (int64, error) {
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

	if err = txQueries.DeleteAllHierarchy(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear hierarchy: %w", err)
	}

	for _, e := range entries {
		err = txQueries.InsertHierarchyEntry(ctx, database.InsertHierarchyEntryParams{
			GithubUser: e.GitHubUser,
			Email:      e.Email,
			Role:       e.Role,
			PodLead:    e.PodLead,
			Calibrator: e.Calibrator,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return 0, fmt.Errorf("%w: duplicate github_user %q", domain.ErrInvalidHierarchy, e.GitHubUser)
			}
			return 0, fmt.Errorf("failed to insert hierarchy entry %s: %w", e.GitHubUser, err)
		}
	}

	reassigned, err := txQueries.ReassignPodLeads(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reassign pod leads: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return reassigned, nil
}

// List возвращает иерархию, отсортированную по github_user.
func (r *HierarchyRepository) List(ctx context.Context) ([]domain.HierarchyEntry, error) {
	rows, err := r.queries.ListHierarchy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hierarchy: %w", err)
	}

	result := make([]domain.HierarchyEntry, len(rows))
	for i, h := range rows {
		result[i] = domain.HierarchyEntry{
			GitHubUser: h.GithubUser,
			Email:      h.Email,
			Role:       h.Role,
			PodLead:    h.PodLead,
			Calibrator: h.Calibrator,
			UpdatedAt:  h.UpdatedAt,
		}
	}
	return result, nil
}
