package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	PRStateOpen   = "open"
	PRStateClosed = "closed"

	ComplexityUnknown = "unknown"

	ReviewApproved         = "APPROVED"
	ReviewChangesRequested = "CHANGES_REQUESTED"
	ReviewCommented        = "COMMENTED"
	ReviewDismissed        = "DISMISSED"

	CheckConclusionFailure = "failure"
)

// PullRequest представляет задачу (PR) вместе с производными полями.
type PullRequest struct {
	Number      int64
	GitHubID    int64
	Title       string
	AuthorLogin string
	State       string
	Merged      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time
	MergedAt    *time.Time
	Labels      []string
	HeadSHA     string

	Domain           string
	RawDomain        string
	Trainer          string
	Interface        string
	Complexity       string
	TaskID           string
	PodLead          string
	Calibrator       string
	ReworkCount      int
	CheckFailures    int
	FailedCheckNames []string
}

// Validate отсекает записи без обязательных полей.
func (p *PullRequest) Validate() error {
	switch {
	case p == nil:
		return fmt.Errorf("%w: empty payload", ErrMalformedRecord)
	case p.Number <= 0:
		return fmt.Errorf("%w: missing number", ErrMalformedRecord)
	case p.Title == "":
		return fmt.Errorf("%w: pr #%d has no title", ErrMalformedRecord, p.Number)
	case p.UpdatedAt.IsZero():
		return fmt.Errorf("%w: pr #%d has no updated_at", ErrMalformedRecord, p.Number)
	case p.State != PRStateOpen && p.State != PRStateClosed:
		return fmt.Errorf("%w: pr #%d has unknown state %q", ErrMalformedRecord, p.Number, p.State)
	}
	return nil
}

// Review - ревью по PR. Записи только добавляются.
type Review struct {
	GitHubID      int64
	PRNumber      int64
	ReviewerLogin string
	State         string
	SubmittedAt   *time.Time
}

// CheckRun - результат CI проверки по head коммиту PR.
type CheckRun struct {
	GitHubID    int64
	PRNumber    int64
	Name        string
	Status      string
	Conclusion  string
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// PRKeys - ключи агрегатов, которые затрагивает PR.
type PRKeys struct {
	Trainer string
	Domain  string
	PodLead string
}

// UpsertResult описывает эффект записи одного PR.
type UpsertResult struct {
	Changed  bool
	Previous *PRKeys
}

// PRRepository определяет контракт хранилища PR и их активности.
type PRRepository interface {
	UpsertWithActivity(ctx context.Context, pr *PullRequest, reviews []Review, checks []CheckRun) (UpsertResult, error)
	GetByNumber(ctx context.Context, number int64) (*PullRequest, error)
}

// LabelKey приводит метку к виду для сравнения: без регистра и крайних пробелов.
func LabelKey(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// LabelKeys возвращает ключи меток без дублей, в исходном порядке.
func LabelKeys(labels []string) []string {
	keys := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		k := LabelKey(l)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
