package domain

import (
	"context"
	"time"
)

// Overview - сводка для главной страницы.
type Overview struct {
	TotalPRs       int
	OpenPRs        int
	MergedPRs      int
	ClosedPRs      int
	Developers     int
	Reviewers      int
	Domains        int
	AverageRework  float64
	RecentPRs      []*PullRequest
	LastSyncAt     *time.Time
	LastSyncStatus string
}

// PRCounts - счетчики PR по состояниям.
type PRCounts struct {
	Total         int
	Open          int
	Merged        int
	Closed        int
	AverageRework float64
}

// PRFilter - фильтры списка PR.
type PRFilter struct {
	State     string
	Domain    string
	Developer string
	Search    string
	Page      Page
}

// PRPage - страница списка PR.
type PRPage struct {
	Items  []*PullRequest
	Total  int
	Limit  int
	Offset int
}

// Стадии PR по меткам, в порядке приоритета.
const (
	StageMerged                  = "merged"
	StageReadyToMerge            = "ready_to_merge"
	StageExpertApproved          = "expert_approved"
	StageCalibratorReviewPending = "calibrator_review_pending"
	StageExpertReviewPending     = "expert_review_pending"
	StageOther                   = "other"
)

// Stages - все стадии в порядке приоритета.
var Stages = []string{
	StageMerged,
	StageReadyToMerge,
	StageExpertApproved,
	StageCalibratorReviewPending,
	StageExpertReviewPending,
	StageOther,
}

// PRStateDistribution - распределение PR по стадиям.
type PRStateDistribution struct {
	Domain       string
	Distribution map[string]int
	Total        int
}

// TimelinePoint - показатели за один день.
type TimelinePoint struct {
	Day     time.Time
	Created int
	Merged  int
	Rework  int
}

const MaxTimelineDays = 365

// DashboardRepository выполняет чтения для дашборда.
type DashboardRepository interface {
	PRCounts(ctx context.Context) (PRCounts, error)
	RecentPRs(ctx context.Context, limit int) ([]*PullRequest, error)
	ListPRs(ctx context.Context, filter PRFilter) ([]*PullRequest, int, error)
	StageDistribution(ctx context.Context, domain string) (map[string]int, error)
	Timeline(ctx context.Context, days int, domain string) ([]TimelinePoint, error)
}
