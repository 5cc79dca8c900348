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

const pgForeignKeyViolation = "23503"

// SimilarityRepository хранит векторы задач и попарные оценки.
type SimilarityRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewSimilarityRepository создает новый экземпляр SimilarityRepository.
func NewSimilarityRepository(db *sql.DB, queries *database.Queries) *SimilarityRepository {
	return &SimilarityRepository{
		db:      db,
		queries: queries,
	}
}

// UpsertEmbedding сохраняет вектор задачи. PR должен существовать.
func (r *SimilarityRepository) UpsertEmbedding(ctx context.Context, e domain.Embedding) error {
	err := r.queries.UpsertTaskEmbedding(ctx, database.UpsertTaskEmbeddingParams{
		PrNumber: e.PRNumber,
		Vector:   e.Vector,
		Model:    e.Model,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: #%d", domain.ErrPRNotFound, e.PRNumber)
		}
		return fmt.Errorf("failed to upsert embedding for PR %d: %w", e.PRNumber, err)
	}
	return nil
}

// DomainEmbeddings возвращает векторы смерженных PR домена.
func (r *SimilarityRepository) DomainEmbeddings(ctx context.Context, domainName string) ([]domain.Embedding, error) {
	rows, err := r.queries.ListDomainEmbeddings(ctx, domainName)
	if err != nil {
		return nil, fmt.Errorf("failed to list embeddings: %w", err)
	}

	result := make([]domain.Embedding, len(rows))
	for i, row := range rows {
		result[i] = domain.Embedding{PRNumber: row.PrNumber, Vector: row.Vector}
	}
	return result, nil
}

// ReplacePairs заменяет все пары с участием prNumber.
func (r *SimilarityRepository) ReplacePairs(ctx context.Context, prNumber int64, pairs []domain.SimilarityPair) error {
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

	if err = txQueries.DeleteSimilaritiesForPR(ctx, prNumber); err != nil {
		return fmt.Errorf("failed to delete similarities: %w", err)
	}

	for _, p := range pairs {
		a, b := p.PRA, p.PRB
		if a > b {
			a, b = b, a
		}
		err = txQueries.InsertSimilarity(ctx, database.InsertSimilarityParams{
			PrA:    a,
			PrB:    b,
			Domain: p.Domain,
			Score:  p.Score,
		})
		if err != nil {
			return fmt.Errorf("failed to insert similarity %d-%d: %w", a, b, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Stats возвращает сводку по парам PR и top самых похожих задач.
func (r *SimilarityRepository) Stats(ctx context.Context, prNumber int64, top int) (*domain.SimilarityStats, error) {
	s, err := r.queries.GetSimilarityStats(ctx, prNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get similarity stats: %w", err)
	}
	if s.PairCount == 0 {
		return nil, domain.ErrSimilarityNotFound
	}

	rows, err := r.queries.ListTopSimilar(ctx, database.ListTopSimilarParams{PrA: prNumber, Limit: int32(top)})
	if err != nil {
		return nil, fmt.Errorf("failed to list similar tasks: %w", err)
	}

	similar := make([]domain.SimilarTask, len(rows))
	for i, row := range rows {
		similar[i] = domain.SimilarTask{PRNumber: row.OtherNumber, Score: row.Score}
	}

	return &domain.SimilarityStats{
		PRNumber: prNumber,
		Count:    int(s.PairCount),
		Average:  s.AvgScore,
		Max:      s.MaxScore,
		Min:      s.MinScore,
		Top:      similar,
	}, nil
}
