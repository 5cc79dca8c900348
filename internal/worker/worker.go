package worker

import (
	"context"
	"sync"
	"time"

	"pr-metrics-dashboard/internal/domain"

	"github.com/sirupsen/logrus"
)

// Queue - очередь заданий синхронизации на один слот.
type Queue struct {
	jobs chan domain.SyncJob
}

// NewQueue создает очередь.
func NewQueue() *Queue {
	return &Queue{jobs: make(chan domain.SyncJob, 1)}
}

// Enqueue не блокирует: false, если слот занят.
func (q *Queue) Enqueue(job domain.SyncJob) bool {
	select {
	case q.jobs <- job:
		return true
	default:
		return false
	}
}

// Executor выполняет задание синхронизации.
type Executor interface {
	Execute(ctx context.Context, job domain.SyncJob) (domain.SyncSummary, error)
}

// Triggerer запускает синхронизацию.
type Triggerer interface {
	Trigger(ctx context.Context, req domain.SyncRequest) (domain.TriggerResult, error)
}

// Worker выполняет задания из очереди и периодически запускает синхронизацию.
type Worker struct {
	queue      *Queue
	executor   Executor
	triggerer  Triggerer
	interval   time.Duration
	startDelay time.Duration
	logger     *logrus.Logger
	wg         sync.WaitGroup
}

// NewWorker создает воркер. interval <= 0 отключает расписание.
func NewWorker(queue *Queue, executor Executor, triggerer Triggerer, interval, startDelay time.Duration, logger *logrus.Logger) *Worker {
	return &Worker{
		queue:      queue,
		executor:   executor,
		triggerer:  triggerer,
		interval:   interval,
		startDelay: startDelay,
		logger:     logger,
	}
}

// Start запускает горутины воркера до отмены ctx.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.consume(ctx)

	if w.interval > 0 {
		w.wg.Add(1)
		go w.schedule(ctx)
	}
}

// Wait ждет завершения горутин после отмены ctx.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) consume(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			w.drain(ctx)
			return
		case job := <-w.queue.jobs:
			if _, err := w.executor.Execute(ctx, job); err != nil {
				w.logger.WithError(err).WithField("sync_id", job.Run.ID).Warn("Sync job finished with error")
			}
		}
	}
}

// drain завершает задания, оставшиеся в очереди при остановке, чтобы снять блокировки.
func (w *Worker) drain(ctx context.Context) {
	for {
		select {
		case job := <-w.queue.jobs:
			_, _ = w.executor.Execute(ctx, job)
		default:
			return
		}
	}
}

func (w *Worker) schedule(ctx context.Context) {
	defer w.wg.Done()

	timer := time.NewTimer(w.startDelay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			res, err := w.triggerer.Trigger(ctx, domain.SyncRequest{Source: "scheduler"})
			if err != nil {
				w.logger.WithError(err).Error("Scheduled sync trigger failed")
			} else {
				w.logger.WithFields(logrus.Fields{
					"status":    res.Status,
					"sync_type": res.SyncType,
				}).Debug("Scheduled sync triggered")
			}
			timer.Reset(w.interval)
		}
	}
}
