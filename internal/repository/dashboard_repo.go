package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pr-metrics-dashboard/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// DashboardRepository выполняет чтения для дашборда.
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository создает новый экземпляр DashboardRepository.
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

type prRow struct {
	Number           int64          `db:"number"`
	GithubID         int64          `db:"github_id"`
	Title            string         `db:"title"`
	AuthorLogin      string         `db:"author_login"`
	State            string         `db:"state"`
	Merged           bool           `db:"merged"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
	ClosedAt         sql.NullTime   `db:"closed_at"`
	MergedAt         sql.NullTime   `db:"merged_at"`
	Labels           pq.StringArray `db:"labels"`
	HeadSha          string         `db:"head_sha"`
	Domain           string         `db:"domain"`
	RawDomain        string         `db:"raw_domain"`
	Trainer          string         `db:"trainer"`
	InterfaceNum     string         `db:"interface_num"`
	Complexity       string         `db:"complexity"`
	TaskID           string         `db:"task_id"`
	PodLead          string         `db:"pod_lead"`
	Calibrator       string         `db:"calibrator"`
	ReworkCount      int            `db:"rework_count"`
	CheckFailures    int            `db:"check_failures"`
	FailedCheckNames pq.StringArray `db:"failed_check_names"`
}

const prColumns = `number, github_id, title, author_login, state, merged, created_at, updated_at,
       closed_at, merged_at, labels, head_sha, domain, raw_domain, trainer, interface_num,
       complexity, task_id, pod_lead, calibrator, rework_count, check_failures, failed_check_names`

func (p prRow) toDomain() *domain.PullRequest {
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
		Labels:           []string(p.Labels),
		HeadSHA:          p.HeadSha,
		Domain:           p.Domain,
		RawDomain:        p.RawDomain,
		Trainer:          p.Trainer,
		Interface:        p.InterfaceNum,
		Complexity:       p.Complexity,
		TaskID:           p.TaskID,
		PodLead:          p.PodLead,
		Calibrator:       p.Calibrator,
		ReworkCount:      p.ReworkCount,
		CheckFailures:    p.CheckFailures,
		FailedCheckNames: []string(p.FailedCheckNames),
	}
}

// PRCounts возвращает счетчики PR по состояниям и средний rework.
func (r *DashboardRepository) PRCounts(ctx context.Context) (domain.PRCounts, error) {
	var row struct {
		Total         int     `db:"total"`
		Open          int     `db:"open"`
		Merged        int     `db:"merged"`
		Closed        int     `db:"closed"`
		AverageRework float64 `db:"average_rework"`
	}
	err := r.db.GetContext(ctx, &row, `
SELECT COUNT(*) AS total,
       COUNT(*) FILTER (WHERE state = 'open') AS open,
       COUNT(*) FILTER (WHERE merged) AS merged,
       COUNT(*) FILTER (WHERE state = 'closed' AND NOT merged) AS closed,
       COALESCE(AVG(rework_count), 0)::float8 AS average_rework
FROM pull_requests`)
	if err != nil {
		return domain.PRCounts{}, fmt.Errorf("failed to count PRs: %w", err)
	}
	return domain.PRCounts{
		Total:         row.Total,
		Open:          row.Open,
		Merged:        row.Merged,
		Closed:        row.Closed,
		AverageRework: row.AverageRework,
	}, nil
}

// RecentPRs возвращает последние созданные PR.
func (r *DashboardRepository) RecentPRs(ctx context.Context, limit int) ([]*domain.PullRequest, error) {
	var rows []prRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+prColumns+` FROM pull_requests ORDER BY created_at DESC, number DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent PRs: %w", err)
	}
	return toDomainPRs(rows), nil
}

// ListPRs возвращает страницу PR и общее число подходящих PR.
func (r *DashboardRepository) ListPRs(ctx context.Context, filter domain.PRFilter) ([]*domain.PullRequest, int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch filter.State {
	case "":
	case domain.StatusFilterOpen:
		where = append(where, "state = 'open'")
	case domain.StatusFilterMerged:
		where = append(where, "merged")
	case domain.StatusFilterClosed:
		where = append(where, "state = 'closed' AND NOT merged")
	default:
		return nil, 0, fmt.Errorf("%w: unknown state %q", domain.ErrInvalidFilter, filter.State)
	}
	if filter.Domain != "" {
		where = append(where, "domain = "+arg(filter.Domain))
	}
	if filter.Developer != "" {
		where = append(where, "trainer = "+arg(filter.Developer))
	}
	if filter.Search != "" {
		where = append(where, "title ILIKE "+arg("%"+escapeLike(filter.Search)+"%"))
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var total int
	if err := tx.GetContext(ctx, &total, `SELECT COUNT(*) FROM pull_requests`+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count PRs: %w", err)
	}

	n := len(args)
	query := `SELECT ` + prColumns + ` FROM pull_requests` + cond +
		fmt.Sprintf(` ORDER BY created_at DESC, number DESC LIMIT $%d OFFSET $%d`, n+1, n+2)

	var rows []prRow
	if err := tx.SelectContext(ctx, &rows, query, append(args, filter.Page.Limit, filter.Page.Offset)...); err != nil {
		return nil, 0, fmt.Errorf("failed to list PRs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toDomainPRs(rows), total, nil
}

// StageDistribution считает PR по стадиям. Пустой domain - по всем доменам.
func (r *DashboardRepository) StageDistribution(ctx context.Context, domainName string) (map[string]int, error) {
	var rows []struct {
		Stage string `db:"stage"`
		Count int    `db:"cnt"`
	}
	err := r.db.SelectContext(ctx, &rows, `
SELECT stage, COUNT(*) AS cnt
FROM pull_request_stages
WHERE $1 = '' OR domain = $1
GROUP BY stage`, domainName)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage distribution: %w", err)
	}

	result := make(map[string]int, len(domain.Stages))
	for _, s := range domain.Stages {
		result[s] = 0
	}
	for _, row := range rows {
		result[row.Stage] = row.Count
	}
	return result, nil
}

// Timeline возвращает дневные ряды за последние days дней, включая пустые дни.
func (r *DashboardRepository) Timeline(ctx context.Context, days int, domainName string) ([]domain.TimelinePoint, error) {
	var rows []struct {
		Day     time.Time `db:"day"`
		Created int       `db:"created"`
		Merged  int       `db:"merged"`
		Rework  int       `db:"rework"`
	}
	err := r.db.SelectContext(ctx, &rows, `
WITH days AS (
    SELECT generate_series(
        date_trunc('day', NOW()) - ($1::int - 1) * INTERVAL '1 day',
        date_trunc('day', NOW()),
        INTERVAL '1 day'
    ) AS day
), scoped AS (
    SELECT created_at, merged_at, rework_count
    FROM pull_requests
    WHERE $2 = '' OR domain = $2
)
SELECT d.day,
       (SELECT COUNT(*) FROM scoped s WHERE date_trunc('day', s.created_at) = d.day) AS created,
       (SELECT COUNT(*) FROM scoped s WHERE date_trunc('day', s.merged_at) = d.day) AS merged,
       (SELECT COALESCE(SUM(s.rework_count), 0)::bigint FROM scoped s WHERE date_trunc('day', s.created_at) = d.day) AS rework
FROM days d
ORDER BY d.day`, days, domainName)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}

	points := make([]domain.TimelinePoint, len(rows))
	for i, row := range rows {
		points[i] = domain.TimelinePoint{Day: row.Day, Created: row.Created, Merged: row.Merged, Rework: row.Rework}
	}
	return points, nil
}

func toDomainPRs(rows []prRow) []*domain.PullRequest {
	result := make([]*domain.PullRequest, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result
}
