package domain

import (
	"context"
	"time"
)

// HierarchyEntry связывает разработчика с pod lead и калибратором.
type HierarchyEntry struct {
	GitHubUser string
	Email      string
	Role       string
	PodLead    string
	Calibrator string
	UpdatedAt  time.Time
}

// HierarchyRepository хранит иерархию разработчиков.
type HierarchyRepository interface {
	// Replace возвращает число PR, у которых сменился pod_lead или calibrator.
	Replace(ctx context.Context, entries []HierarchyEntry) (int64, error)
	List(ctx context.Context) ([]HierarchyEntry, error)
}
