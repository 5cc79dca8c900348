package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pr-metrics-dashboard/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// AggregationRepository строит агрегаты динамическим SQL поверх sqlx.
type AggregationRepository struct {
	db *sqlx.DB
}

// NewAggregationRepository создает новый экземпляр AggregationRepository.
func NewAggregationRepository(db *sqlx.DB) *AggregationRepository {
	return &AggregationRepository{db: db}
}

type aggregateRow struct {
	Name          string `db:"name"`
	Total         int    `db:"total"`
	Completed     int    `db:"completed"`
	Rejected      int    `db:"rejected"`
	Rework        int    `db:"rework"`
	DeliveryReady int    `db:"delivery_ready"`
}

var dimensionKeys = map[domain.Dimension]string{
	domain.DimensionDomain:    "p.domain",
	domain.DimensionDeveloper: "p.trainer",
	domain.DimensionReviewer:  "r.reviewer_login",
	domain.DimensionInterface: "p.interface_num",
	domain.DimensionPodLead:   "p.pod_lead",
}

// Aggregate возвращает страницу групп и общее число групп.
// Оба запроса читают один снимок (REPEATABLE READ, read only).
func (r *AggregationRepository) Aggregate(ctx context.Context, q domain.AggregateQuery) ([]domain.AggregateCounts, int, error) {
	base, args, err := buildAggregateBase(q)
	if err != nil {
		return nil, 0, err
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var total int
	if err := tx.GetContext(ctx, &total, base+`SELECT COUNT(DISTINCT name) FROM base`, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}

	n := len(args)
	pageArgs := append(args, q.Page.Limit, q.Page.Offset)
	query := base + `
SELECT name,
       COUNT(*) AS total,
       COUNT(*) FILTER (WHERE merged) AS completed,
       COUNT(*) FILTER (WHERE (state = 'closed' AND NOT merged) OR is_rejected) AS rejected,
       COALESCE(SUM(rework_count), 0)::bigint AS rework,
       COUNT(*) FILTER (WHERE is_delivery_ready) AS delivery_ready
FROM base
GROUP BY name
ORDER BY ` + aggregateOrder(q) + fmt.Sprintf(`
LIMIT $%d OFFSET $%d`, n+1, n+2)

	var rows []aggregateRow
	if err := tx.SelectContext(ctx, &rows, query, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate by %s: %w", q.Dimension, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result := make([]domain.AggregateCounts, len(rows))
	for i, row := range rows {
		result[i] = domain.AggregateCounts{
			Name:          row.Name,
			Total:         row.Total,
			Completed:     row.Completed,
			Rejected:      row.Rejected,
			Rework:        row.Rework,
			DeliveryReady: row.DeliveryReady,
		}
	}
	return result, total, nil
}

// buildAggregateBase собирает CTE base: одна строка на пару (группа, PR).
func buildAggregateBase(q domain.AggregateQuery) (string, []any, error) {
	key, ok := dimensionKeys[q.Dimension]
	if !ok {
		return "", nil, fmt.Errorf("%w: unknown dimension %q", domain.ErrInvalidFilter, q.Dimension)
	}

	args := []any{q.RejectedLabel, pq.Array(nonNil(q.DeliveryReady))}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where := []string{key + " <> ''"}
	f := q.Filter
	if f.Domain != nil {
		where = append(where, "p.domain = "+arg(*f.Domain))
	}
	switch f.Status {
	case "":
	case domain.StatusFilterOpen:
		where = append(where, "p.state = 'open'")
	case domain.StatusFilterMerged:
		where = append(where, "p.merged")
	case domain.StatusFilterClosed:
		where = append(where, "p.state = 'closed' AND NOT p.merged")
	case domain.StatusFilterRejected:
		where = append(where, "((p.state = 'closed' AND NOT p.merged) OR $1 = ANY(p.label_keys))")
	default:
		return "", nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidFilter, f.Status)
	}
	if f.From != nil {
		where = append(where, "p.created_at >= "+arg(*f.From))
	}
	if f.To != nil {
		where = append(where, "p.created_at <= "+arg(*f.To))
	}
	if f.Search != "" {
		where = append(where, key+" ILIKE "+arg("%"+escapeLike(f.Search)+"%"))
	}

	from := "pull_requests p"
	if q.Dimension == domain.DimensionReviewer {
		from += " JOIN reviews r ON r.pr_number = p.number"
	}

	base := fmt.Sprintf(`WITH base AS (
    SELECT DISTINCT %s AS name, p.number, p.state, p.merged, p.rework_count,
           ($1 <> '' AND $1 = ANY(p.label_keys)) AS is_rejected,
           (p.label_keys && $2::text[]) AS is_delivery_ready
    FROM %s
    WHERE %s
)
`, key, from, strings.Join(where, " AND "))

	return base, args, nil
}

// byName совпадает с sort.Strings: побайтовое сравнение без учета локали.
const byName = `name COLLATE "C" ASC`

func aggregateOrder(q domain.AggregateQuery) string {
	switch q.Filter.SortBy {
	case domain.SortByCompleted:
		return "completed DESC, " + byName
	case domain.SortByRework:
		return "(COALESCE(SUM(rework_count), 0)::float8 / COUNT(*)) DESC, " + byName
	case domain.SortByName:
		return byName
	case domain.SortByTotal:
		return "total DESC, " + byName
	}
	if q.Dimension == domain.DimensionDomain {
		return fmt.Sprintf("(name = '%s') ASC, %s", domain.OthersDomain, byName)
	}
	return "total DESC, " + byName
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
