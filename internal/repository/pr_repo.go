package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pr-metrics-dashboard/internal/database"
	"pr-metrics-dashboard/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// PRRepository реализует хранение PR, ревью и проверок в PostgreSQL.
type PRRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewPRRepository создает новый экземпляр PRRepository.
func NewPRRepository(db *sql.DB, queries *database.Queries) *PRRepository {
	return &PRRepository{
		db:      db,
		queries: queries,
	}
}

// UpsertWithActivity записывает PR вместе с ревью и проверками в одной транзакции.
// Changed=false, если ни PR, ни его активность не изменились.
func (r *PRRepository) UpsertWithActivity(ctx context.Context, pr *domain.PullRequest, reviews []domain.Review, checks []domain.CheckRun) (domain.UpsertResult, error) {
	var result domain.UpsertResult

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	// 1. Блокируем строку и запоминаем прежние ключи агрегатов
	prev, err := txQueries.GetPullRequestKeysForUpdate(ctx, pr.Number)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = nil
	case err != nil:
		return result, fmt.Errorf("failed to lock PR %d: %w", pr.Number, err)
	default:
		result.Previous = &domain.PRKeys{Trainer: prev.Trainer, Domain: prev.Domain, PodLead: prev.PodLead}
	}

	// 2. Записываем PR; ErrNoRows означает, что строка не изменилась
	_, err = txQueries.UpsertPullRequest(ctx, toUpsertParams(pr))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = nil
	case isDataError(err):
		return result, fmt.Errorf("%w: pr #%d rejected by database: %v", domain.ErrMalformedRecord, pr.Number, err)
	case err != nil:
		return result, fmt.Errorf("failed to upsert PR %d: %w", pr.Number, err)
	default:
		result.Changed = true
	}

	// 3. Ревью только добавляются
	for _, rv := range reviews {
		var n int64
		n, err = txQueries.InsertReview(ctx, database.InsertReviewParams{
			GithubID:      rv.GitHubID,
			PrNumber:      pr.Number,
			ReviewerLogin: rv.ReviewerLogin,
			State:         rv.State,
			SubmittedAt:   nullTime(rv.SubmittedAt),
		})
		if err != nil {
			return result, fmt.Errorf("failed to insert review %d: %w", rv.GitHubID, err)
		}
		result.Changed = result.Changed || n > 0
	}

	// 4. Проверки обновляются по github_id
	for _, cr := range checks {
		var n int64
		n, err = txQueries.UpsertCheckRun(ctx, database.UpsertCheckRunParams{
			GithubID:    cr.GitHubID,
			PrNumber:    pr.Number,
			Name:        cr.Name,
			Status:      cr.Status,
			Conclusion:  cr.Conclusion,
			StartedAt:   nullTime(cr.StartedAt),
			CompletedAt: nullTime(cr.CompletedAt),
		})
		if err != nil {
			return result, fmt.Errorf("failed to upsert check run %d: %w", cr.GitHubID, err)
		}
		result.Changed = result.Changed || n > 0
	}

	// 5. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return result, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

// GetByNumber возвращает PR по номеру.
func (r *PRRepository) GetByNumber(ctx context.Context, number int64) (*domain.PullRequest, error) {
	dbPR, err := r.queries.GetPullRequest(ctx, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to get PR: %w", err)
	}
	return fromDBPullRequest(dbPR), nil
}

func toUpsertParams(pr *domain.PullRequest) database.UpsertPullRequestParams {
	return database.UpsertPullRequestParams{
		Number:           pr.Number,
		GithubID:         pr.GitHubID,
		Title:            pr.Title,
		AuthorLogin:      pr.AuthorLogin,
		State:            pr.State,
		Merged:           pr.Merged,
		CreatedAt:        pr.CreatedAt,
		UpdatedAt:        pr.UpdatedAt,
		ClosedAt:         nullTime(pr.ClosedAt),
		MergedAt:         nullTime(pr.MergedAt),
		Labels:           nonNil(pr.Labels),
		LabelKeys:        domain.LabelKeys(pr.Labels),
		HeadSha:          pr.HeadSHA,
		Domain:           pr.Domain,
		RawDomain:        pr.RawDomain,
		Trainer:          pr.Trainer,
		InterfaceNum:     pr.Interface,
		Complexity:       pr.Complexity,
		TaskID:           pr.TaskID,
		PodLead:          pr.PodLead,
		Calibrator:       pr.Calibrator,
		ReworkCount:      int32(pr.ReworkCount),
		CheckFailures:    int32(pr.CheckFailures),
		FailedCheckNames: nonNil(pr.FailedCheckNames),
	}
}

func fromDBPullRequest(p database.PullRequest) *domain.PullRequest {
	return &domain.PullRequest{
		Number:           p.Number,
		GitHubID:         p.GithubID,
		Title:            p.Title,
		AuthorLogin:      p.AuthorLogin,
		State:            p.State,
		Merged:           p.Merged,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		ClosedAt:         timeFromNull(p.ClosedAt),
		MergedAt:         timeFromNull(p.MergedAt),
		Labels:           p.Labels,
		HeadSHA:          p.HeadSha,
		Domain:           p.Domain,
		RawDomain:        p.RawDomain,
		Trainer:          p.Trainer,
		Interface:        p.InterfaceNum,
		Complexity:       p.Complexity,
		TaskID:           p.TaskID,
		PodLead:          p.PodLead,
		Calibrator:       p.Calibrator,
		ReworkCount:      int(p.ReworkCount),
		CheckFailures:    int(p.CheckFailures),
		FailedCheckNames: p.FailedCheckNames,
	}
}

// Конвертируем *time.Time ↔ NullTime
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timeFromNull(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// isDataError: классы 22 (data exception) и 23 (integrity constraint violation).
func isDataError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
