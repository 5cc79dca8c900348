package domain

import (
	"context"
	"iter"
	"time"
)

// PullRequestSource - внешний источник PR (GitHub).
// FetchPullRequests отдает PR по убыванию updated_at и останавливается на первом PR старше since.
type PullRequestSource interface {
	FetchPullRequests(ctx context.Context, since time.Time, state string) iter.Seq2[*PullRequest, error]
	FetchReviews(ctx context.Context, number int64) ([]Review, error)
	FetchCheckRuns(ctx context.Context, number int64, headSHA string) ([]CheckRun, error)
}
