package domain

import (
	"context"
	"fmt"
	"time"
)

// Dimension - ось группировки агрегатов.
type Dimension string

const (
	DimensionDomain    Dimension = "domain"
	DimensionDeveloper Dimension = "developer"
	DimensionReviewer  Dimension = "reviewer"
	DimensionInterface Dimension = "interface"
	DimensionPodLead   Dimension = "pod_lead"
)

// ParseDimension принимает как внутренние имена, так и сегменты URL.
func ParseDimension(s string) (Dimension, error) {
	switch s {
	case "domain", "domains":
		return DimensionDomain, nil
	case "developer", "developers", "trainer", "trainers":
		return DimensionDeveloper, nil
	case "reviewer", "reviewers":
		return DimensionReviewer, nil
	case "interface", "interfaces":
		return DimensionInterface, nil
	case "pod_lead", "pod-leads", "pod_leads":
		return DimensionPodLead, nil
	}
	return "", fmt.Errorf("%w: unknown dimension %q", ErrInvalidFilter, s)
}

// Фильтр по статусу PR.
const (
	StatusFilterOpen     = "open"
	StatusFilterMerged   = "merged"
	StatusFilterClosed   = "closed"
	StatusFilterRejected = "rejected"
)

// Ключи сортировки для списков.
const (
	SortByTotal      = "total_tasks"
	SortByCompleted  = "completed_tasks"
	SortByRework     = "rework_percentage"
	SortByName       = "name"
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// AggregateFilter - необязательные фильтры агрегирования.
type AggregateFilter struct {
	Domain *string
	Status string
	From   *time.Time
	To     *time.Time
	Search string
	SortBy string
}

// Page - параметры пагинации.
type Page struct {
	Limit  int
	Offset int
}

// Normalize подставляет лимит по умолчанию и проверяет границы.
func (p Page) Normalize() (Page, error) {
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		return p, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPagination, MaxPageLimit)
	}
	if p.Offset < 0 {
		return p, fmt.Errorf("%w: offset must not be negative", ErrInvalidPagination)
	}
	return p, nil
}

// AggregateQuery - проверенный запрос к хранилищу.
type AggregateQuery struct {
	Dimension     Dimension
	Filter        AggregateFilter
	Page          Page
	DeliveryReady []string
	RejectedLabel string
}

// AggregateCounts - сырые счетчики группы.
type AggregateCounts struct {
	Name          string
	Total         int
	Completed     int
	Rejected      int
	Rework        int
	DeliveryReady int
}

// AggregateRow - строка результата с процентами.
type AggregateRow struct {
	Name                    string  `json:"name"`
	TotalTasks              int     `json:"total_tasks"`
	CompletedTasks          int     `json:"completed_tasks"`
	RejectedCount           int     `json:"rejected_count"`
	ReworkCount             int     `json:"rework_count"`
	DeliveryReadyTasks      int     `json:"delivery_ready_tasks"`
	CompletionPercentage    float64 `json:"completion_percentage"`
	RejectionPercentage     float64 `json:"rejection_percentage"`
	ReworkPercentage        float64 `json:"rework_percentage"`
	DeliveryReadyPercentage float64 `json:"delivery_ready_percentage"`
}

// AggregatePage - страница агрегатов и общее число групп.
type AggregatePage struct {
	Dimension Dimension      `json:"dimension"`
	Rows      []AggregateRow `json:"rows"`
	Total     int            `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

// AggregationRepository читает счетчики в одной согласованной транзакции.
type AggregationRepository interface {
	Aggregate(ctx context.Context, q AggregateQuery) ([]AggregateCounts, int, error)
}

// AggregationCache - кэш результатов агрегирования.
type AggregationCache interface {
	// Get возвращает версию кэша, в которой выполнялся поиск.
	Get(ctx context.Context, key string, dst any) (version int64, hit bool, err error)
	// Set пишет значение только в ту же версию; устаревшая запись пропускается.
	Set(ctx context.Context, key string, version int64, value any) error
	Invalidate(ctx context.Context) error
}
