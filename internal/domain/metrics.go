package domain

import (
	"context"
	"time"
)

// DeveloperMetrics - снимок показателей разработчика.
type DeveloperMetrics struct {
	Username      string
	GitHubLogin   string
	TotalPRs      int
	OpenPRs       int
	MergedPRs     int
	TotalRework   int
	CheckFailures int
	Domains       map[string]int
	UpdatedAt     time.Time
}

// ReviewerMetrics - снимок показателей ревьюера.
type ReviewerMetrics struct {
	Username         string
	TotalReviews     int
	ApprovedReviews  int
	ChangesRequested int
	CommentedReviews int
	Domains          map[string]int
	UpdatedAt        time.Time
}

// DomainMetrics - снимок показателей домена.
type DomainMetrics struct {
	Domain                  string
	TotalTasks              int
	Merged                  int
	ReadyToMerge            int
	ExpertApproved          int
	CalibratorReviewPending int
	ExpertReviewPending     int
	ExpertCount             int
	HardCount               int
	MediumCount             int
	TotalRework             int
	UpdatedAt               time.Time
}

// DomainDetail - снимок домена и его последние PR.
type DomainDetail struct {
	Metrics   *DomainMetrics
	RecentPRs []*PullRequest
}

// SnapshotScope задает, какие ключи пересчитать. All - все ключи.
type SnapshotScope struct {
	All        bool
	Developers []string
	Reviewers  []string
	Domains    []string
}

// Empty - нечего пересчитывать.
func (s SnapshotScope) Empty() bool {
	return !s.All && len(s.Developers) == 0 && len(s.Reviewers) == 0 && len(s.Domains) == 0
}

// SnapshotCounts - количество строк в снимках.
type SnapshotCounts struct {
	Developers int
	Reviewers  int
	Domains    int
}

// SnapshotRepository пересчитывает и читает снимки агрегатов.
type SnapshotRepository interface {
	Refresh(ctx context.Context, scope SnapshotScope) (int64, error)
	GetDeveloper(ctx context.Context, username string) (*DeveloperMetrics, error)
	GetReviewer(ctx context.Context, username string) (*ReviewerMetrics, error)
	ListDomains(ctx context.Context) ([]*DomainMetrics, error)
	GetDomain(ctx context.Context, name string) (*DomainMetrics, error)
	Counts(ctx context.Context) (SnapshotCounts, error)
}
