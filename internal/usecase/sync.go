package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/github"
	"pr-metrics-dashboard/internal/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SyncOptions - политика синхронизации из конфигурации.
type SyncOptions struct {
	Policy                    domain.SyncPolicy
	ReworkCountsCheckFailures bool
	FetchConcurrency          int
	ComplexityTiers           []string
}

// SyncDeps - зависимости пайплайна синхронизации.
type SyncDeps struct {
	Source     domain.PullRequestSource
	PRs        domain.PRRepository
	State      domain.SyncStateRepository
	Snapshots  domain.SnapshotRepository
	Hierarchy  domain.HierarchyRepository
	Similarity domain.SimilarityUseCase
	Cache      domain.AggregationCache
	Locker     domain.SyncLocker
	Queue      domain.SyncQueue
	Publisher  domain.EventPublisher
	Normalizer *domain.DomainNormalizer
}

// SyncUseCase реализует пайплайн синхронизации с GitHub.
type SyncUseCase struct {
	deps    SyncDeps
	opts    SyncOptions
	logger  *logrus.Logger
	running atomic.Bool
	now     func() time.Time
}

// NewSyncUseCase создает новый экземпляр SyncUseCase.
func NewSyncUseCase(deps SyncDeps, opts SyncOptions, logger *logrus.Logger) *SyncUseCase {
	if opts.FetchConcurrency < 1 {
		opts.FetchConcurrency = 1
	}
	return &SyncUseCase{
		deps:   deps,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

// Trigger захватывает исключение, выбирает стратегию и ставит задание в очередь.
// Если синхронизация уже идет, возвращает already_running без ошибки.
func (uc *SyncUseCase) Trigger(ctx context.Context, req domain.SyncRequest) (domain.TriggerResult, error) {
	if req.SinceDays < 0 {
		return domain.TriggerResult{}, fmt.Errorf("%w: since_days must not be negative", domain.ErrInvalidRequest)
	}

	// 1. Исключение внутри процесса
	if !uc.running.CompareAndSwap(false, true) {
		return uc.alreadyRunning(req), nil
	}

	// 2. Исключение между процессами
	lease, ok, err := uc.deps.Locker.TryAcquire(ctx)
	if err != nil {
		uc.running.Store(false)
		return domain.TriggerResult{}, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if !ok {
		uc.running.Store(false)
		return uc.alreadyRunning(req), nil
	}

	abort := func(err error) (domain.TriggerResult, error) {
		uc.release(ctx, lease)
		return domain.TriggerResult{}, err
	}

	// 3. Выбор стратегии
	state, err := uc.deps.State.GetState(ctx)
	if err != nil {
		return abort(err)
	}
	now := uc.now()
	decision := domain.DecideStrategy(state, now, uc.opts.Policy, req)

	// 4. Запись прогона и передача воркеру
	since := decision.Since
	run := &domain.SyncRun{
		ID:        uuid.New(),
		Type:      decision.Type,
		Status:    domain.SyncRunRunning,
		Since:     &since,
		StartedAt: now,
	}
	if err := uc.deps.State.StartRun(ctx, run); err != nil {
		return abort(err)
	}

	if !uc.deps.Queue.Enqueue(domain.SyncJob{Run: run, Decision: decision, Lease: lease}) {
		run.Error = "sync queue is full"
		if err := uc.deps.State.FailRun(context.WithoutCancel(ctx), run); err != nil {
			uc.logger.WithError(err).Error("Failed to mark rejected sync run")
		}
		uc.release(ctx, lease)
		return uc.alreadyRunning(req), nil
	}

	metrics.SyncTriggersTotal.WithLabelValues(string(domain.TriggerStarted)).Inc()
	uc.logger.WithFields(logrus.Fields{
		"sync_id":   run.ID,
		"sync_type": decision.Type,
		"source":    req.Source,
	}).Info(decision.Description)

	return domain.TriggerResult{
		Status:      domain.TriggerStarted,
		SyncType:    decision.Type,
		Description: decision.Description,
		RunID:       run.ID,
	}, nil
}

func (uc *SyncUseCase) alreadyRunning(req domain.SyncRequest) domain.TriggerResult {
	metrics.SyncTriggersTotal.WithLabelValues(string(domain.TriggerAlreadyRunning)).Inc()
	uc.logger.WithField("source", req.Source).Info("Sync already running, trigger skipped")
	return domain.TriggerResult{
		Status:      domain.TriggerAlreadyRunning,
		Description: "Sync already in progress",
	}
}

func (uc *SyncUseCase) release(ctx context.Context, lease domain.Lease) {
	if lease != nil {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			uc.logger.WithError(err).Error("Failed to release sync lock")
		}
	}
	uc.running.Store(false)
}

// Execute выполняет прогон. Всегда снимает блокировку.
func (uc *SyncUseCase) Execute(ctx context.Context, job domain.SyncJob) (domain.SyncSummary, error) {
	defer uc.release(ctx, job.Lease)

	run := job.Run
	started := uc.now()
	log := uc.logger.WithFields(logrus.Fields{"sync_id": run.ID, "sync_type": run.Type})
	log.WithField("since", job.Decision.Since).Info("Sync started")

	acc := newSyncAccumulator()
	err := uc.fetchAndReconcile(ctx, job.Decision, acc, log)
	summary := acc.summary()
	run.Summary = summary
	if err != nil {
		return summary, uc.fail(ctx, run, err, log)
	}

	// Aggregating
	scope := domain.SnapshotScope{All: true}
	if job.Decision.Type == domain.SyncTypeIncremental {
		scope = acc.scope()
	}
	if _, err := uc.deps.Snapshots.Refresh(ctx, scope); err != nil {
		return summary, uc.fail(ctx, run, fmt.Errorf("failed to refresh snapshots: %w", err), log)
	}

	if summary.Changed > 0 {
		if err := uc.deps.Cache.Invalidate(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate aggregation cache")
		}
		if merged := acc.mergedNumbers(); len(merged) > 0 && uc.deps.Similarity != nil {
			if err := uc.deps.Similarity.RefreshForPRs(ctx, merged); err != nil {
				log.WithError(err).Warn("Failed to refresh task similarity")
			}
		}
		uc.deps.Publisher.Publish(domain.DataUpdated{SyncedCount: summary.Changed, Timestamp: uc.now().UTC()})
	}

	// Completed
	cursor := run.StartedAt
	state := &domain.SyncState{Cursor: &cursor}
	if job.Decision.Type == domain.SyncTypeFull {
		state.LastFullSyncAt = &cursor
	} else {
		state.LastIncrementalSyncAt = &cursor
	}
	if err := uc.deps.State.CompleteRun(ctx, run, state); err != nil {
		return summary, uc.fail(ctx, run, err, log)
	}

	uc.deps.Publisher.Publish(domain.SyncComplete{
		SyncedCount:  summary.Synced,
		SkippedCount: summary.Skipped,
		SyncType:     run.Type,
		Description:  job.Decision.Description,
	})

	metrics.SyncRunsTotal.WithLabelValues(string(run.Type), string(domain.SyncRunCompleted)).Inc()
	metrics.SyncDuration.WithLabelValues(string(run.Type)).Observe(time.Since(started).Seconds())
	log.WithFields(logrus.Fields{
		"synced":  summary.Synced,
		"changed": summary.Changed,
		"skipped": summary.Skipped,
		"ignored": summary.Ignored,
	}).Info("Sync completed")

	return summary, nil
}

func (uc *SyncUseCase) fail(ctx context.Context, run *domain.SyncRun, err error, log *logrus.Entry) error {
	run.Error = err.Error()
	if ferr := uc.deps.State.FailRun(context.WithoutCancel(ctx), run); ferr != nil {
		log.WithError(ferr).Error("Failed to mark sync run failed")
	}

	uc.deps.Publisher.Publish(domain.SyncFailed{Reason: err.Error(), SyncType: run.Type})
	metrics.SyncRunsTotal.WithLabelValues(string(run.Type), string(domain.SyncRunFailed)).Inc()
	log.WithError(err).Error("Sync failed")
	return err
}

// fetchAndReconcile обходит PR источника и записывает каждый в своей транзакции.
func (uc *SyncUseCase) fetchAndReconcile(ctx context.Context, decision domain.SyncDecision, acc *syncAccumulator, log *logrus.Entry) error {
	hierarchy, err := uc.loadHierarchy(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opts.FetchConcurrency)

	var fetchErr error
	for pr, err := range uc.deps.Source.FetchPullRequests(gctx, decision.Since, "all") {
		if err != nil {
			fetchErr = translateSourceError(err)
			break
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return uc.reconcile(gctx, pr, hierarchy, acc, log)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if fetchErr != nil {
		return fetchErr
	}
	return ctx.Err()
}

func (uc *SyncUseCase) reconcile(ctx context.Context, pr *domain.PullRequest, hierarchy map[string]domain.HierarchyEntry, acc *syncAccumulator, log *logrus.Entry) error {
	if err := pr.Validate(); err != nil {
		log.WithError(err).Warn("Skipping malformed pull request")
		acc.skip()
		return nil
	}

	title, ok := domain.ParseTaskTitle(pr.Title)
	if !ok || len(pr.Labels) == 0 {
		acc.ignore()
		return nil
	}

	var (
		reviews []domain.Review
		checks  []domain.CheckRun
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reviews, err = uc.deps.Source.FetchReviews(gctx, pr.Number)
		return err
	})
	g.Go(func() error {
		var err error
		checks, err = uc.deps.Source.FetchCheckRuns(gctx, pr.Number, pr.HeadSHA)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("pr #%d: %w", pr.Number, translateSourceError(err))
	}

	uc.derive(pr, title, reviews, checks, hierarchy)

	res, err := uc.deps.PRs.UpsertWithActivity(ctx, pr, reviews, checks)
	if errors.Is(err, domain.ErrMalformedRecord) {
		log.WithError(err).WithField("pr_number", pr.Number).Warn("Skipping pull request rejected by storage")
		acc.skip()
		return nil
	}
	if err != nil {
		return err
	}

	acc.record(pr, reviews, res)
	return nil
}

// derive заполняет производные поля PR.
func (uc *SyncUseCase) derive(pr *domain.PullRequest, title domain.TaskTitle, reviews []domain.Review, checks []domain.CheckRun, hierarchy map[string]domain.HierarchyEntry) {
	if pr.Merged {
		pr.State = domain.PRStateClosed
	}

	pr.Trainer = title.Trainer
	pr.RawDomain = title.Domain
	pr.Domain = uc.deps.Normalizer.Normalize(title.Domain)
	pr.Interface = title.Interface
	pr.TaskID = title.TaskID
	pr.Complexity = uc.complexity(pr.Labels, title)

	rework := 0
	for _, r := range reviews {
		if r.State == domain.ReviewChangesRequested {
			rework++
		}
	}

	failed := map[string]struct{}{}
	failures := 0
	for _, c := range checks {
		if c.Conclusion == domain.CheckConclusionFailure {
			failures++
			failed[c.Name] = struct{}{}
		}
	}
	if uc.opts.ReworkCountsCheckFailures {
		rework += failures
	}
	pr.ReworkCount = rework
	pr.CheckFailures = failures

	pr.FailedCheckNames = make([]string, 0, len(failed))
	for name := range failed {
		pr.FailedCheckNames = append(pr.FailedCheckNames, name)
	}
	sort.Strings(pr.FailedCheckNames)

	if h, ok := hierarchy[strings.ToLower(pr.AuthorLogin)]; ok {
		pr.PodLead = h.PodLead
		pr.Calibrator = h.Calibrator
	}
}

func (uc *SyncUseCase) complexity(labels []string, title domain.TaskTitle) string {
	for _, l := range labels {
		key := domain.LabelKey(l)
		for _, tier := range uc.opts.ComplexityTiers {
			if key == domain.LabelKey(tier) {
				return key
			}
		}
	}
	if title.Complexity != "" {
		return title.Complexity
	}
	return domain.ComplexityUnknown
}

func (uc *SyncUseCase) loadHierarchy(ctx context.Context) (map[string]domain.HierarchyEntry, error) {
	entries, err := uc.deps.Hierarchy.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]domain.HierarchyEntry, len(entries))
	for _, e := range entries {
		result[strings.ToLower(e.GitHubUser)] = e
	}
	return result, nil
}

// Status возвращает состояние синхронизации.
func (uc *SyncUseCase) Status(ctx context.Context) (*domain.SyncStatusView, error) {
	state, err := uc.deps.State.GetState(ctx)
	if err != nil {
		return nil, err
	}
	last, err := uc.deps.State.LatestRun(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.SyncStatusView{
		Running: uc.running.Load(),
		State:   state,
		LastRun: last,
	}, nil
}

// RecoverInterrupted закрывает прогоны, оставшиеся running после падения процесса.
func (uc *SyncUseCase) RecoverInterrupted(ctx context.Context) error {
	n, err := uc.deps.State.AbandonRunning(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		uc.logger.WithField("count", n).Warn("Marked interrupted sync runs as failed")
	}
	return nil
}

// translateSourceError переводит ошибки клиента GitHub в ошибки домена.
func translateSourceError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, github.ErrNotFound):
		return fmt.Errorf("%w: %v", domain.ErrSourceNotFound, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
}

// syncAccumulator собирает счетчики и затронутые ключи из параллельных горутин.
type syncAccumulator struct {
	mu         sync.Mutex
	synced     int
	changed    int
	skipped    int
	ignored    int
	developers map[string]struct{}
	reviewers  map[string]struct{}
	domains    map[string]struct{}
	merged     []int64
}

func newSyncAccumulator() *syncAccumulator {
	return &syncAccumulator{
		developers: map[string]struct{}{},
		reviewers:  map[string]struct{}{},
		domains:    map[string]struct{}{},
	}
}

func (a *syncAccumulator) skip() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.skipped++
	metrics.SyncPullRequestsTotal.WithLabelValues("skipped").Inc()
}

func (a *syncAccumulator) ignore() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ignored++
	metrics.SyncPullRequestsTotal.WithLabelValues("ignored").Inc()
}

func (a *syncAccumulator) record(pr *domain.PullRequest, reviews []domain.Review, res domain.UpsertResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.synced++
	if !res.Changed {
		metrics.SyncPullRequestsTotal.WithLabelValues("unchanged").Inc()
		return
	}
	a.changed++
	metrics.SyncPullRequestsTotal.WithLabelValues("changed").Inc()

	a.developers[pr.Trainer] = struct{}{}
	a.domains[pr.Domain] = struct{}{}
	if res.Previous != nil {
		a.developers[res.Previous.Trainer] = struct{}{}
		a.domains[res.Previous.Domain] = struct{}{}
	}
	for _, r := range reviews {
		a.reviewers[r.ReviewerLogin] = struct{}{}
	}
	if pr.Merged {
		a.merged = append(a.merged, pr.Number)
	}
}

func (a *syncAccumulator) summary() domain.SyncSummary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return domain.SyncSummary{Synced: a.synced, Changed: a.changed, Skipped: a.skipped, Ignored: a.ignored}
}

func (a *syncAccumulator) scope() domain.SnapshotScope {
	a.mu.Lock()
	defer a.mu.Unlock()
	return domain.SnapshotScope{
		Developers: sortedKeys(a.developers),
		Reviewers:  sortedKeys(a.reviewers),
		Domains:    sortedKeys(a.domains),
	}
}

func (a *syncAccumulator) mergedNumbers() []int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]int64, len(a.merged))
	copy(out, a.merged)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
