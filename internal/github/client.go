package github

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"pr-metrics-dashboard/internal/config"
	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/metrics"

	gh "github.com/google/go-github/v66/github"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Client реализует domain.PullRequestSource поверх GitHub REST API.
type Client struct {
	gh         *gh.Client
	owner      string
	repo       string
	perPage    int
	limiter    *rate.Limiter
	maxRetries uint64
	baseDelay  time.Duration
	maxWait    time.Duration
	logger     *logrus.Logger
	now        func() time.Time
}

// NewClient создает клиента для репозитория cfg.Repo.
func NewClient(cfg config.GitHubConfig, httpClient *http.Client, logger *logrus.Logger) (*Client, error) {
	owner, repo, err := cfg.OwnerRepo()
	if err != nil {
		return nil, err
	}

	client := gh.NewClient(httpClient)
	if cfg.Token != "" {
		client = client.WithAuthToken(cfg.Token)
	}
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github.base_url: %w", err)
		}
		client.BaseURL = base
	}

	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	perPage := cfg.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}
	baseDelay := cfg.RetryBaseDelay
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	maxWait := cfg.RetryMaxWait
	if maxWait <= 0 {
		maxWait = time.Minute
	}
	maxRetries := 0
	if cfg.MaxRetries > 0 {
		maxRetries = cfg.MaxRetries
	}

	return &Client{
		gh:         client,
		owner:      owner,
		repo:       repo,
		perPage:    perPage,
		limiter:    rate.NewLimiter(limit, 1),
		maxRetries: uint64(maxRetries),
		baseDelay:  baseDelay,
		maxWait:    maxWait,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// FetchPullRequests лениво обходит страницы PR, отсортированных по updated desc.
// Последовательность заканчивается на первом PR с updated_at < since.
func (c *Client) FetchPullRequests(ctx context.Context, since time.Time, state string) iter.Seq2[*domain.PullRequest, error] {
	if state == "" {
		state = "all"
	}
	return func(yield func(*domain.PullRequest, error) bool) {
		opts := &gh.PullRequestListOptions{
			State:       state,
			Sort:        "updated",
			Direction:   "desc",
			ListOptions: gh.ListOptions{PerPage: c.perPage},
		}

		for {
			var (
				page []*gh.PullRequest
				resp *gh.Response
			)
			err := c.do(ctx, "pulls", func(ctx context.Context) error {
				var err error
				page, resp, err = c.gh.PullRequests.List(ctx, c.owner, c.repo, opts)
				return err
			})
			if err != nil {
				yield(nil, err)
				return
			}

			for _, p := range page {
				if !since.IsZero() && p.UpdatedAt != nil && p.UpdatedAt.Time.Before(since) {
					return
				}
				if !yield(toDomainPR(p), nil) {
					return
				}
			}

			if resp == nil || resp.NextPage == 0 {
				return
			}
			opts.Page = resp.NextPage
		}
	}
}

// FetchReviews возвращает все ревью PR.
func (c *Client) FetchReviews(ctx context.Context, number int64) ([]domain.Review, error) {
	var reviews []domain.Review
	opts := &gh.ListOptions{PerPage: c.perPage}

	for {
		var (
			page []*gh.PullRequestReview
			resp *gh.Response
		)
		err := c.do(ctx, "reviews", func(ctx context.Context) error {
			var err error
			page, resp, err = c.gh.PullRequests.ListReviews(ctx, c.owner, c.repo, int(number), opts)
			return err
		})
		if err != nil {
			return nil, err
		}

		for _, r := range page {
			reviews = append(reviews, domain.Review{
				GitHubID:      r.GetID(),
				PRNumber:      number,
				ReviewerLogin: r.GetUser().GetLogin(),
				State:         r.GetState(),
				SubmittedAt:   timePtr(r.SubmittedAt),
			})
		}

		if resp == nil || resp.NextPage == 0 {
			return reviews, nil
		}
		opts.Page = resp.NextPage
	}
}

// FetchCheckRuns возвращает проверки head коммита PR.
// Если коммит больше недоступен, возвращается пустой список.
func (c *Client) FetchCheckRuns(ctx context.Context, number int64, headSHA string) ([]domain.CheckRun, error) {
	if headSHA == "" {
		return nil, nil
	}

	var checks []domain.CheckRun
	opts := &gh.ListCheckRunsOptions{ListOptions: gh.ListOptions{PerPage: c.perPage}}

	for {
		var (
			res  *gh.ListCheckRunsResults
			resp *gh.Response
		)
		err := c.do(ctx, "check_runs", func(ctx context.Context) error {
			var err error
			res, resp, err = c.gh.Checks.ListCheckRunsForRef(ctx, c.owner, c.repo, headSHA, opts)
			return err
		})
		if errors.Is(err, ErrNotFound) {
			c.logger.WithFields(logrus.Fields{"pr_number": number, "head_sha": headSHA}).
				Warn("Head commit not found, skipping check runs")
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		if res != nil {
			for _, cr := range res.CheckRuns {
				checks = append(checks, domain.CheckRun{
					GitHubID:    cr.GetID(),
					PRNumber:    number,
					Name:        cr.GetName(),
					Status:      cr.GetStatus(),
					Conclusion:  cr.GetConclusion(),
					StartedAt:   timePtr(cr.StartedAt),
					CompletedAt: timePtr(cr.CompletedAt),
				})
			}
		}

		if resp == nil || resp.NextPage == 0 {
			return checks, nil
		}
		opts.Page = resp.NextPage
	}
}

// do выполняет запрос с ограничением частоты и повторами.
// RateLimited ждет подсказку сервера (не дольше maxWait), Transient - экспоненциально.
func (c *Client) do(ctx context.Context, endpoint string, call func(ctx context.Context) error) error {
	b := retry.NewExponential(c.baseDelay)
	b = retry.WithCappedDuration(c.maxWait, b)
	b = retry.WithMaxRetries(c.maxRetries, b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		err := classify(call(ctx), c.now())
		if err == nil {
			metrics.GitHubRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
			return nil
		}

		var rateErr *RateLimitedError
		if errors.As(err, &rateErr) {
			metrics.GitHubRequestsTotal.WithLabelValues(endpoint, "rate_limited").Inc()
			wait := min(rateErr.RetryAfter, c.maxWait)
			c.logger.WithFields(logrus.Fields{"endpoint": endpoint, "wait": wait}).Warn("GitHub rate limit hit")
			if err := sleep(ctx, wait); err != nil {
				return err
			}
			return retry.RetryableError(err)
		}

		var transientErr *TransientError
		if errors.As(err, &transientErr) {
			metrics.GitHubRequestsTotal.WithLabelValues(endpoint, "transient").Inc()
			c.logger.WithError(err).WithField("endpoint", endpoint).Warn("GitHub request failed, retrying")
			return retry.RetryableError(err)
		}

		metrics.GitHubRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return err
	})
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func toDomainPR(p *gh.PullRequest) *domain.PullRequest {
	labels := make([]string, 0, len(p.Labels))
	for _, l := range p.Labels {
		if name := l.GetName(); name != "" {
			labels = append(labels, name)
		}
	}
	sort.Strings(labels)

	pr := &domain.PullRequest{
		Number:      int64(p.GetNumber()),
		GitHubID:    p.GetID(),
		Title:       p.GetTitle(),
		AuthorLogin: p.GetUser().GetLogin(),
		State:       p.GetState(),
		Merged:      p.MergedAt != nil || p.GetMerged(),
		ClosedAt:    timePtr(p.ClosedAt),
		MergedAt:    timePtr(p.MergedAt),
		Labels:      labels,
		HeadSHA:     p.GetHead().GetSHA(),
	}
	if p.CreatedAt != nil {
		pr.CreatedAt = p.CreatedAt.Time
	}
	if p.UpdatedAt != nil {
		pr.UpdatedAt = p.UpdatedAt.Time
	}
	return pr
}

func timePtr(ts *gh.Timestamp) *time.Time {
	if ts == nil || ts.Time.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}
