package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/metrics"

	"github.com/sirupsen/logrus"
)

// AggregationUseCase строит агрегаты по оси с кэшированием.
type AggregationUseCase struct {
	repo          domain.AggregationRepository
	cache         domain.AggregationCache
	normalizer    *domain.DomainNormalizer
	deliveryReady []string
	rejectedLabel string
	logger        *logrus.Logger
}

// NewAggregationUseCase создает новый экземпляр AggregationUseCase.
func NewAggregationUseCase(
	repo domain.AggregationRepository,
	cache domain.AggregationCache,
	normalizer *domain.DomainNormalizer,
	deliveryReady []string,
	rejectedLabel string,
	logger *logrus.Logger,
) *AggregationUseCase {
	return &AggregationUseCase{
		repo:          repo,
		cache:         cache,
		normalizer:    normalizer,
		deliveryReady: domain.LabelKeys(deliveryReady),
		rejectedLabel: domain.LabelKey(rejectedLabel),
		logger:        logger,
	}
}

// AggregateBy проверяет фильтры и возвращает страницу агрегатов.
func (uc *AggregationUseCase) AggregateBy(ctx context.Context, dimension domain.Dimension, filter domain.AggregateFilter, page domain.Page) (*domain.AggregatePage, error) {
	// Валидация входных данных
	if _, err := domain.ParseDimension(string(dimension)); err != nil {
		return nil, err
	}
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	if filter.Domain != nil {
		d, err := uc.normalizer.ResolveFilter(*filter.Domain)
		if err != nil {
			return nil, err
		}
		filter.Domain = &d
	}
	switch filter.Status {
	case "", domain.StatusFilterOpen, domain.StatusFilterMerged, domain.StatusFilterClosed, domain.StatusFilterRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidFilter, filter.Status)
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: from is after to", domain.ErrInvalidFilter)
	}
	switch filter.SortBy {
	case "", domain.SortByTotal, domain.SortByCompleted, domain.SortByRework, domain.SortByName:
	default:
		return nil, fmt.Errorf("%w: unknown sort_by %q", domain.ErrInvalidFilter, filter.SortBy)
	}

	query := domain.AggregateQuery{
		Dimension:     dimension,
		Filter:        filter,
		Page:          page,
		DeliveryReady: uc.deliveryReady,
		RejectedLabel: uc.rejectedLabel,
	}

	// 1. Пробуем кэш
	key := cacheKey(query)
	var cached domain.AggregatePage
	version, hit, err := uc.cache.Get(ctx, key, &cached)
	switch {
	case err != nil:
		metrics.AggregationCacheTotal.WithLabelValues("error").Inc()
		uc.logger.WithError(err).Warn("Aggregation cache read failed")
	case hit:
		metrics.AggregationCacheTotal.WithLabelValues("hit").Inc()
		return &cached, nil
	default:
		metrics.AggregationCacheTotal.WithLabelValues("miss").Inc()
	}

	// 2. Считаем в БД
	counts, total, err := uc.repo.Aggregate(ctx, query)
	if err != nil {
		return nil, err
	}

	result := &domain.AggregatePage{
		Dimension: dimension,
		Rows:      make([]domain.AggregateRow, len(counts)),
		Total:     total,
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	for i, c := range counts {
		result.Rows[i] = toAggregateRow(c)
	}

	if err := uc.cache.Set(ctx, key, version, result); err != nil {
		uc.logger.WithError(err).Warn("Aggregation cache write failed")
	}

	return result, nil
}

func toAggregateRow(c domain.AggregateCounts) domain.AggregateRow {
	return domain.AggregateRow{
		Name:                    c.Name,
		TotalTasks:              c.Total,
		CompletedTasks:          c.Completed,
		RejectedCount:           c.Rejected,
		ReworkCount:             c.Rework,
		DeliveryReadyTasks:      c.DeliveryReady,
		CompletionPercentage:    percentage(c.Completed, c.Total),
		RejectionPercentage:     percentage(c.Rejected, c.Total),
		ReworkPercentage:        percentage(c.Rework, c.Total),
		DeliveryReadyPercentage: percentage(c.DeliveryReady, c.Total),
	}
}

// percentage округляет до сотых; 0 при пустой группе.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}

func cacheKey(q domain.AggregateQuery) string {
	b, _ := json.Marshal(q)
	sum := sha1.Sum(b)
	return string(q.Dimension) + ":" + hex.EncodeToString(sum[:])
}
