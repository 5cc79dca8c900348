package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pr-metrics-dashboard/internal/domain"

	"github.com/sirupsen/logrus"
)

// HierarchyUseCase управляет иерархией разработчиков.
type HierarchyUseCase struct {
	repo      domain.HierarchyRepository
	cache     domain.AggregationCache
	publisher domain.EventPublisher
	logger    *logrus.Logger
}

// NewHierarchyUseCase создает новый экземпляр HierarchyUseCase.
func NewHierarchyUseCase(
	repo domain.HierarchyRepository,
	cache domain.AggregationCache,
	publisher domain.EventPublisher,
	logger *logrus.Logger,
) *HierarchyUseCase {
	return &HierarchyUseCase{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// Replace проверяет записи и заменяет иерархию целиком.
func (uc *HierarchyUseCase) Replace(ctx context.Context, entries []domain.HierarchyEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for i := range entries {
		user := strings.TrimSpace(entries[i].GitHubUser)
		if user == "" {
			return fmt.Errorf("%w: entry %d has empty github_user", domain.ErrInvalidHierarchy, i)
		}
		key := strings.ToLower(user)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate github_user %q", domain.ErrInvalidHierarchy, user)
		}
		seen[key] = struct{}{}
		entries[i].GitHubUser = user
	}

	reassigned, err := uc.repo.Replace(ctx, entries)
	if err != nil {
		return err
	}
	if reassigned == 0 {
		return nil
	}

	// Агрегаты по pod lead устарели
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.WithError(err).Warn("Failed to invalidate aggregation cache")
	}
	uc.publisher.Publish(domain.DataUpdated{SyncedCount: int(reassigned), Timestamp: time.Now().UTC()})
	uc.logger.WithField("reassigned", reassigned).Info("Pod leads reassigned after hierarchy update")
	return nil
}

// List возвращает иерархию.
func (uc *HierarchyUseCase) List(ctx context.Context) ([]domain.HierarchyEntry, error) {
	return uc.repo.List(ctx)
}
