package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"pr-metrics-dashboard/internal/database"
	"pr-metrics-dashboard/internal/domain"
)

// syncLockKey - ключ pg advisory lock для синхронизации.
const syncLockKey int64 = 7_346_101

// AdvisoryLocker - межпроцессная блокировка синхронизации через pg_try_advisory_lock.
// Блокировка сессионная, поэтому держится на выделенном соединении.
type AdvisoryLocker struct {
	db  *sql.DB
	key int64
}

// NewAdvisoryLocker создает блокировку с ключом синхронизации.
func NewAdvisoryLocker(db *sql.DB) *AdvisoryLocker {
	return &AdvisoryLocker{db: db, key: syncLockKey}
}

// TryAcquire не ждет: false, если блокировку держит другой процесс.
func (l *AdvisoryLocker) TryAcquire(ctx context.Context) (domain.Lease, bool, error) {
	conn, err := l.db.Conn(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get connection: %w", err)
	}

	ok, err := database.New(conn).TryAdvisoryLock(ctx, l.key)
	if err != nil {
		_ = conn.Close()
		return nil, false, fmt.Errorf("failed to acquire advisory lock: %w", err)
	}
	if !ok {
		_ = conn.Close()
		return nil, false, nil
	}

	return &advisoryLease{conn: conn, key: l.key}, true, nil
}

type advisoryLease struct {
	once sync.Once
	conn *sql.Conn
	key  int64
	err  error
}

// Release снимает блокировку и возвращает соединение в пул. Повторный вызов ничего не делает.
func (l *advisoryLease) Release(ctx context.Context) error {
	l.once.Do(func() {
		defer l.conn.Close()
		if _, err := database.New(l.conn).AdvisoryUnlock(ctx, l.key); err != nil {
			l.err = fmt.Errorf("failed to release advisory lock: %w", err)
		}
	})
	return l.err
}
