package usecase

import (
	"context"
	"fmt"

	"pr-metrics-dashboard/internal/domain"

	"golang.org/x/sync/errgroup"
)

const (
	recentPRsLimit       = 10
	domainRecentPRsLimit = 20
)

// DashboardUseCase отдает данные дашборда.
type DashboardUseCase struct {
	dashboard  domain.DashboardRepository
	snapshots  domain.SnapshotRepository
	syncState  domain.SyncStateRepository
	normalizer *domain.DomainNormalizer
}

// NewDashboardUseCase создает новый экземпляр DashboardUseCase.
func NewDashboardUseCase(
	dashboard domain.DashboardRepository,
	snapshots domain.SnapshotRepository,
	syncState domain.SyncStateRepository,
	normalizer *domain.DomainNormalizer,
) *DashboardUseCase {
	return &DashboardUseCase{
		dashboard:  dashboard,
		snapshots:  snapshots,
		syncState:  syncState,
		normalizer: normalizer,
	}
}

// Overview собирает сводку параллельными чтениями.
func (uc *DashboardUseCase) Overview(ctx context.Context) (*domain.Overview, error) {
	var (
		counts  domain.PRCounts
		snaps   domain.SnapshotCounts
		recent  []*domain.PullRequest
		state   *domain.SyncState
		lastRun *domain.SyncRun
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = uc.dashboard.PRCounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		snaps, err = uc.snapshots.Counts(gctx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = uc.dashboard.RecentPRs(gctx, recentPRsLimit)
		return err
	})
	g.Go(func() (err error) {
		state, err = uc.syncState.GetState(gctx)
		return err
	})
	g.Go(func() (err error) {
		lastRun, err = uc.syncState.LatestRun(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &domain.Overview{
		TotalPRs:      counts.Total,
		OpenPRs:       counts.Open,
		MergedPRs:     counts.Merged,
		ClosedPRs:     counts.Closed,
		Developers:    snaps.Developers,
		Reviewers:     snaps.Reviewers,
		Domains:       snaps.Domains,
		AverageRework: counts.AverageRework,
		RecentPRs:     recent,
		LastSyncAt:    state.LastSyncAt(),
	}
	if lastRun != nil {
		overview.LastSyncStatus = string(lastRun.Status)
	}
	return overview, nil
}

// ListPullRequests возвращает страницу PR.
func (uc *DashboardUseCase) ListPullRequests(ctx context.Context, filter domain.PRFilter) (*domain.PRPage, error) {
	page, err := filter.Page.Normalize()
	if err != nil {
		return nil, err
	}
	filter.Page = page

	switch filter.State {
	case "", domain.StatusFilterOpen, domain.StatusFilterMerged, domain.StatusFilterClosed:
	default:
		return nil, fmt.Errorf("%w: unknown state %q", domain.ErrInvalidFilter, filter.State)
	}
	if filter.Domain != "" {
		if filter.Domain, err = uc.normalizer.ResolveFilter(filter.Domain); err != nil {
			return nil, err
		}
	}

	items, total, err := uc.dashboard.ListPRs(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.PRPage{Items: items, Total: total, Limit: page.Limit, Offset: page.Offset}, nil
}

// StateDistribution возвращает распределение PR по стадиям.
func (uc *DashboardUseCase) StateDistribution(ctx context.Context, domainName string) (*domain.PRStateDistribution, error) {
	if domainName != "" {
		d, err := uc.normalizer.ResolveFilter(domainName)
		if err != nil {
			return nil, err
		}
		domainName = d
	}

	dist, err := uc.dashboard.StageDistribution(ctx, domainName)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range dist {
		total += n
	}
	return &domain.PRStateDistribution{Domain: domainName, Distribution: dist, Total: total}, nil
}

// Timeline возвращает дневные ряды за days дней.
func (uc *DashboardUseCase) Timeline(ctx context.Context, days int, domainName string) ([]domain.TimelinePoint, error) {
	if days == 0 {
		days = 30
	}
	if days < 1 || days > domain.MaxTimelineDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", domain.ErrInvalidFilter, domain.MaxTimelineDays)
	}
	if domainName != "" {
		d, err := uc.normalizer.ResolveFilter(domainName)
		if err != nil {
			return nil, err
		}
		domainName = d
	}
	return uc.dashboard.Timeline(ctx, days, domainName)
}

// Developer возвращает снимок разработчика.
func (uc *DashboardUseCase) Developer(ctx context.Context, username string) (*domain.DeveloperMetrics, error) {
	if username == "" {
		return nil, domain.ErrDeveloperNotFound
	}
	return uc.snapshots.GetDeveloper(ctx, username)
}

// Reviewer возвращает снимок ревьюера.
func (uc *DashboardUseCase) Reviewer(ctx context.Context, username string) (*domain.ReviewerMetrics, error) {
	if username == "" {
		return nil, domain.ErrReviewerNotFound
	}
	return uc.snapshots.GetReviewer(ctx, username)
}

// Domains возвращает снимки доменов, Others последним.
func (uc *DashboardUseCase) Domains(ctx context.Context) ([]*domain.DomainMetrics, error) {
	return uc.snapshots.ListDomains(ctx)
}

// Domain возвращает снимок домена и его последние PR.
// Неизвестный домен и домен без снимка - ErrDomainNotFound.
func (uc *DashboardUseCase) Domain(ctx context.Context, name string) (*domain.DomainDetail, error) {
	canonical, err := uc.normalizer.ResolveFilter(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDomainNotFound, name)
	}

	var (
		metrics *domain.DomainMetrics
		recent  []*domain.PullRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		metrics, err = uc.snapshots.GetDomain(gctx, canonical)
		return err
	})
	g.Go(func() (err error) {
		recent, _, err = uc.dashboard.ListPRs(gctx, domain.PRFilter{
			Domain: canonical,
			Page:   domain.Page{Limit: domainRecentPRsLimit},
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DomainDetail{Metrics: metrics, RecentPRs: recent}, nil
}

// DomainNames возвращает разрешенные домены и Others.
func (uc *DashboardUseCase) DomainNames() []string {
	return append(uc.normalizer.Domains(), domain.OthersDomain)
}
