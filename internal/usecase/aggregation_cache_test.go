package usecase_test

import (
	"context"
	"testing"
	"time"

	"pr-metrics-dashboard/internal/cache"
	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/mocks"
	"pr-metrics-dashboard/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAggregationUseCase_AggregateBy_SyncDuringQueryIsNotCached(t *testing.T) {
	// Setup
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb, err := cache.NewRedis(ctx, mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	redisCache := cache.NewRedisCache(rdb, "test:agg", time.Hour)
	repo := &mocks.AggregationRepository{}
	uc := usecase.NewAggregationUseCase(
		repo,
		redisCache,
		domain.NewDomainNormalizer([]string{"Finance"}),
		[]string{"ready-to-merge"},
		"rejected",
		silentLogger(),
	)

	// Mock expectations: пока идет первый запрос, синхронизация меняет данные и сбрасывает кэш
	repo.On("Aggregate", ctx, mock.Anything).
		Run(func(mock.Arguments) { require.NoError(t, redisCache.Invalidate(ctx)) }).
		Return([]domain.AggregateCounts{{Name: "Finance", Total: 3}}, 1, nil).Once()
	repo.On("Aggregate", ctx, mock.Anything).
		Return([]domain.AggregateCounts{{Name: "Finance", Total: 5}}, 1, nil).Once()

	// Execute
	first, err := uc.AggregateBy(ctx, domain.DimensionDomain, domain.AggregateFilter{}, domain.Page{})
	require.NoError(t, err)
	second, err := uc.AggregateBy(ctx, domain.DimensionDomain, domain.AggregateFilter{}, domain.Page{})
	require.NoError(t, err)

	// Assert
	require.Len(t, first.Rows, 1)
	assert.Equal(t, 3, first.Rows[0].TotalTasks)
	require.Len(t, second.Rows, 1)
	assert.Equal(t, 5, second.Rows[0].TotalTasks)
	repo.AssertExpectations(t)

	// Свежий результат закэширован в новой версии
	third, err := uc.AggregateBy(ctx, domain.DimensionDomain, domain.AggregateFilter{}, domain.Page{})
	require.NoError(t, err)
	assert.Equal(t, 5, third.Rows[0].TotalTasks)
	repo.AssertNumberOfCalls(t, "Aggregate", 2)
}
