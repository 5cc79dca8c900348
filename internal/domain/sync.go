package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SyncType string

const (
	SyncTypeFull        SyncType = "full"
	SyncTypeIncremental SyncType = "incremental"
)

type TriggerStatus string

const (
	TriggerStarted        TriggerStatus = "started"
	TriggerAlreadyRunning TriggerStatus = "already_running"
)

type SyncRunStatus string

const (
	SyncRunRunning   SyncRunStatus = "running"
	SyncRunCompleted SyncRunStatus = "completed"
	SyncRunFailed    SyncRunStatus = "failed"
)

// SyncState - курсор синхронизации. Меняется только при успешном завершении.
type SyncState struct {
	LastFullSyncAt        *time.Time
	LastIncrementalSyncAt *time.Time
	Cursor                *time.Time
	UpdatedAt             time.Time
}

// LastSyncAt возвращает время последней успешной синхронизации любого типа.
func (s *SyncState) LastSyncAt() *time.Time {
	if s == nil {
		return nil
	}
	last := s.LastFullSyncAt
	if s.LastIncrementalSyncAt != nil && (last == nil || s.LastIncrementalSyncAt.After(*last)) {
		last = s.LastIncrementalSyncAt
	}
	return last
}

// SyncPolicy - параметры выбора стратегии.
type SyncPolicy struct {
	StalenessThreshold time.Duration
	LookbackDays       int
}

// SyncRequest - запрос на запуск синхронизации.
type SyncRequest struct {
	SinceDays int
	ForceFull bool
	Source    string
}

// SyncDecision - результат шага выбора стратегии.
type SyncDecision struct {
	Type         SyncType
	Since        time.Time
	Initial      bool
	LookbackDays int
	Description  string
}

// DecideStrategy выбирает полную или инкрементальную синхронизацию.
// Функция чистая: состояние передается явно.
func DecideStrategy(state *SyncState, now time.Time, policy SyncPolicy, req SyncRequest) SyncDecision {
	lookback := policy.LookbackDays
	if req.SinceDays > 0 {
		lookback = req.SinceDays
	}

	full := SyncDecision{
		Type:         SyncTypeFull,
		Since:        now.AddDate(0, 0, -lookback),
		LookbackDays: lookback,
	}

	switch {
	case state == nil || state.LastFullSyncAt == nil:
		full.Initial = true
		full.Description = fmt.Sprintf("Initial sync - fetching last %d days", lookback)
		return full
	case req.ForceFull:
		full.Description = fmt.Sprintf("Full sync - fetching last %d days (requested)", lookback)
		return full
	case now.Sub(*state.LastFullSyncAt) > policy.StalenessThreshold:
		full.Description = fmt.Sprintf("Full sync - fetching last %d days (last full sync is older than %s)",
			lookback, humanizeDuration(policy.StalenessThreshold))
		return full
	}

	since := state.Cursor
	if since == nil {
		since = state.LastSyncAt()
	}

	return SyncDecision{
		Type:         SyncTypeIncremental,
		Since:        *since,
		LookbackDays: lookback,
		Description:  "Incremental sync - fetching updates from last " + humanizeDuration(now.Sub(*since)),
	}
}

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// SyncSummary - счетчики одного прогона.
type SyncSummary struct {
	Synced  int
	Changed int
	Skipped int
	Ignored int
}

// SyncRun - запись истории прогонов.
type SyncRun struct {
	ID         uuid.UUID
	Type       SyncType
	Status     SyncRunStatus
	Since      *time.Time
	StartedAt  time.Time
	FinishedAt *time.Time
	Summary    SyncSummary
	Error      string
}

// TriggerResult возвращается синхронно на запрос запуска.
type TriggerResult struct {
	Status      TriggerStatus
	SyncType    SyncType
	Description string
	RunID       uuid.UUID
}

// SyncStatusView - текущее состояние синхронизации для API.
type SyncStatusView struct {
	Running bool
	State   *SyncState
	LastRun *SyncRun
}

// Lease - удерживаемая блокировка синхронизации.
type Lease interface {
	Release(ctx context.Context) error
}

// SyncJob передается от триггера воркеру.
type SyncJob struct {
	Run      *SyncRun
	Decision SyncDecision
	Lease    Lease
}

// SyncLocker обеспечивает межпроцессное исключение.
type SyncLocker interface {
	TryAcquire(ctx context.Context) (Lease, bool, error)
}

// SyncQueue принимает задания на выполнение. false - очередь занята.
type SyncQueue interface {
	Enqueue(job SyncJob) bool
}

// SyncStateRepository хранит SyncState и историю прогонов.
type SyncStateRepository interface {
	GetState(ctx context.Context) (*SyncState, error)
	StartRun(ctx context.Context, run *SyncRun) error
	CompleteRun(ctx context.Context, run *SyncRun, state *SyncState) error
	FailRun(ctx context.Context, run *SyncRun) error
	LatestRun(ctx context.Context) (*SyncRun, error)
	AbandonRunning(ctx context.Context) (int64, error)
}
