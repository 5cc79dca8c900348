package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pr-metrics-dashboard/internal/database"
	"pr-metrics-dashboard/internal/domain"
)

const defaultSyncScope = "default"

// SyncRepository хранит SyncState и историю прогонов.
type SyncRepository struct {
	db      *sql.DB
	queries *database.Queries
	now     func() time.Time
}

// NewSyncRepository создает новый экземпляр SyncRepository.
func NewSyncRepository(db *sql.DB, queries *database.Queries) *SyncRepository {
	return &SyncRepository{
		db:      db,
		queries: queries,
		now:     time.Now,
	}
}

// GetState возвращает nil, если синхронизаций еще не было.
func (r *SyncRepository) GetState(ctx context.Context) (*domain.SyncState, error) {
	s, err := r.queries.GetSyncState(ctx, defaultSyncScope)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sync state: %w", err)
	}

	return &domain.SyncState{
		LastFullSyncAt:        timeFromNull(s.LastFullSyncAt),
		LastIncrementalSyncAt: timeFromNull(s.LastIncrementalSyncAt),
		Cursor:                timeFromNull(s.SyncCursor),
		UpdatedAt:             s.UpdatedAt,
	}, nil
}

// StartRun записывает прогон в статусе running.
func (r *SyncRepository) StartRun(ctx context.Context, run *domain.SyncRun) error {
	err := r.queries.CreateSyncRun(ctx, database.CreateSyncRunParams{
		ID:        run.ID,
		SyncType:  string(run.Type),
		Since:     nullTime(run.Since),
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create sync run: %w", err)
	}
	run.Status = domain.SyncRunRunning
	return nil
}

// CompleteRun завершает прогон и сдвигает SyncState в одной транзакции.
func (r *SyncRepository) CompleteRun(ctx context.Context, run *domain.SyncRun, state *domain.SyncState) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	finished := r.now()
	err = txQueries.FinishSyncRun(ctx, finishParams(run, domain.SyncRunCompleted, finished))
	if err != nil {
		return fmt.Errorf("failed to finish sync run: %w", err)
	}

	err = txQueries.UpsertSyncState(ctx, database.UpsertSyncStateParams{
		Scope:                 defaultSyncScope,
		LastFullSyncAt:        nullTime(state.LastFullSyncAt),
		LastIncrementalSyncAt: nullTime(state.LastIncrementalSyncAt),
		SyncCursor:            nullTime(state.Cursor),
	})
	if err != nil {
		return fmt.Errorf("failed to update sync state: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	run.Status = domain.SyncRunCompleted
	run.FinishedAt = &finished
	return nil
}

// FailRun помечает прогон как failed. SyncState не трогается.
func (r *SyncRepository) FailRun(ctx context.Context, run *domain.SyncRun) error {
	finished := r.now()
	if err := r.queries.FinishSyncRun(ctx, finishParams(run, domain.SyncRunFailed, finished)); err != nil {
		return fmt.Errorf("failed to mark sync run failed: %w", err)
	}
	run.Status = domain.SyncRunFailed
	run.FinishedAt = &finished
	return nil
}

// LatestRun возвращает последний прогон или nil.
func (r *SyncRepository) LatestRun(ctx context.Context) (*domain.SyncRun, error) {
	s, err := r.queries.GetLatestSyncRun(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest sync run: %w", err)
	}

	return &domain.SyncRun{
		ID:         s.ID,
		Type:       domain.SyncType(s.SyncType),
		Status:     domain.SyncRunStatus(s.Status),
		Since:      timeFromNull(s.Since),
		StartedAt:  s.StartedAt,
		FinishedAt: timeFromNull(s.FinishedAt),
		Summary: domain.SyncSummary{
			Synced:  int(s.SyncedCount),
			Changed: int(s.ChangedCount),
			Skipped: int(s.SkippedCount),
			Ignored: int(s.IgnoredCount),
		},
		Error: s.Error,
	}, nil
}

// AbandonRunning закрывает прогоны, прерванные падением процесса.
func (r *SyncRepository) AbandonRunning(ctx context.Context) (int64, error) {
	n, err := r.queries.AbandonRunningSyncRuns(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to abandon running sync runs: %w", err)
	}
	return n, nil
}

func finishParams(run *domain.SyncRun, status domain.SyncRunStatus, finished time.Time) database.FinishSyncRunParams {
	return database.FinishSyncRunParams{
		ID:           run.ID,
		Status:       string(status),
		FinishedAt:   sql.NullTime{Time: finished, Valid: true},
		SyncedCount:  int32(run.Summary.Synced),
		ChangedCount: int32(run.Summary.Changed),
		SkippedCount: int32(run.Summary.Skipped),
		IgnoredCount: int32(run.Summary.Ignored),
		Error:        run.Error,
	}
}
