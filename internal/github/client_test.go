package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"pr-metrics-dashboard/internal/config"
	"pr-metrics-dashboard/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	c, err := NewClient(config.GitHubConfig{
		Token:          "test-token",
		Repo:           "acme/tasks",
		BaseURL:        srv.URL,
		MaxRetries:     2,
		PerPage:        2,
		RetryBaseDelay: time.Millisecond,
		RetryMaxWait:   10 * time.Millisecond,
	}, srv.Client(), logger)
	require.NoError(t, err)
	return c
}

func prJSON(number int, title string, updated time.Time, merged bool) map[string]any {
	pr := map[string]any{
		"number":     number,
		"id":         1000 + number,
		"title":      title,
		"state":      "open",
		"user":       map[string]any{"login": "bob"},
		"labels":     []map[string]any{{"name": "Expert Review Pending"}, {"name": "Calibrator Review Pending"}},
		"head":       map[string]any{"sha": fmt.Sprintf("sha%d", number)},
		"created_at": updated.Add(-time.Hour).Format(time.RFC3339),
		"updated_at": updated.Format(time.RFC3339),
	}
	if merged {
		pr["state"] = "closed"
		pr["merged_at"] = updated.Format(time.RFC3339)
		pr["closed_at"] = updated.Format(time.RFC3339)
	}
	return pr
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_FetchPullRequests_PaginatesAndStopsAtSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var calls atomic.Int32

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/repos/acme/tasks/pulls", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("direction"))

		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<%s%s?page=2>; rel="next"`, "http://"+r.Host, r.URL.Path))
			writeJSON(w, []any{
				prJSON(3, "bob-finance-1-hard-1718000003", now, false),
				prJSON(2, "bob-finance-1-hard-1718000002", now.Add(-time.Hour), true),
			})
		case "2":
			w.Header().Set("Link", fmt.Sprintf(`<%s%s?page=3>; rel="next"`, "http://"+r.Host, r.URL.Path))
			writeJSON(w, []any{
				prJSON(1, "bob-finance-1-hard-1718000001", now.Add(-2*time.Hour), false),
				prJSON(0, "bob-finance-1-hard-1718000000", now.AddDate(0, 0, -10), false),
			})
		default:
			t.Errorf("page %s must not be requested", r.URL.Query().Get("page"))
		}
	}))

	var got []*domain.PullRequest
	for pr, err := range c.FetchPullRequests(context.Background(), now.AddDate(0, 0, -3), "") {
		require.NoError(t, err)
		got = append(got, pr)
	}

	require.Len(t, got, 3)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []int64{3, 2, 1}, []int64{got[0].Number, got[1].Number, got[2].Number})

	merged := got[1]
	assert.True(t, merged.Merged)
	assert.Equal(t, domain.PRStateClosed, merged.State)
	require.NotNil(t, merged.MergedAt)
	assert.Equal(t, "bob", got[0].AuthorLogin)
	assert.Equal(t, "sha3", got[0].HeadSHA)
	assert.Equal(t, []string{"Calibrator Review Pending", "Expert Review Pending"}, got[0].Labels)
}

func TestClient_FetchPullRequests_ConsumerStopsEarly(t *testing.T) {
	now := time.Now().UTC()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", fmt.Sprintf(`<%s%s?page=2>; rel="next"`, "http://"+r.Host, r.URL.Path))
		writeJSON(w, []any{prJSON(2, "a-b-c-hard-1", now, false), prJSON(1, "a-b-c-hard-2", now, false)})
	}))

	n := 0
	for _, err := range c.FetchPullRequests(context.Background(), time.Time{}, "") {
		require.NoError(t, err)
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestClient_RetriesAfterRateLimit(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("X-RateLimit-Limit", "5000")
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(-time.Second).Unix(), 10))
			w.WriteHeader(http.StatusForbidden)
			writeJSON(w, map[string]any{"message": "API rate limit exceeded"})
			return
		}
		writeJSON(w, []any{map[string]any{
			"id":           7,
			"user":         map[string]any{"login": "alice"},
			"state":        "CHANGES_REQUESTED",
			"submitted_at": "2026-03-01T10:00:00Z",
		}})
	}))

	reviews, err := c.FetchReviews(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, int64(42), reviews[0].PRNumber)
	assert.Equal(t, "alice", reviews[0].ReviewerLogin)
	assert.Equal(t, domain.ReviewChangesRequested, reviews[0].State)
	require.NotNil(t, reviews[0].SubmittedAt)
}

func TestClient_TransientErrorsExhaustRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
		writeJSON(w, map[string]any{"message": "bad gateway"})
	}))

	_, err := c.FetchReviews(context.Background(), 1)
	require.Error(t, err)

	var transient *TransientError
	assert.ErrorAs(t, err, &transient)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		writeJSON(w, map[string]any{"message": "Bad credentials"})
	}))

	_, err := c.FetchReviews(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_FetchPullRequests_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]any{"message": "Not Found"})
	}))

	var gotErr error
	for _, err := range c.FetchPullRequests(context.Background(), time.Time{}, "") {
		gotErr = err
	}
	assert.ErrorIs(t, gotErr, ErrNotFound)
}

func TestClient_FetchCheckRuns(t *testing.T) {
	t.Run("Lists check runs for head sha", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/acme/tasks/commits/abc/check-runs", r.URL.Path)
			writeJSON(w, map[string]any{
				"total_count": 2,
				"check_runs": []any{
					map[string]any{"id": 1, "name": "lint", "status": "completed", "conclusion": "failure"},
					map[string]any{"id": 2, "name": "test", "status": "completed", "conclusion": "success"},
				},
			})
		}))

		checks, err := c.FetchCheckRuns(context.Background(), 9, "abc")
		require.NoError(t, err)
		require.Len(t, checks, 2)
		assert.Equal(t, domain.CheckConclusionFailure, checks[0].Conclusion)
		assert.Equal(t, int64(9), checks[1].PRNumber)
	})

	t.Run("Missing commit yields empty list", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]any{"message": "No commit found"})
		}))

		checks, err := c.FetchCheckRuns(context.Background(), 9, "gone")
		require.NoError(t, err)
		assert.Empty(t, checks)
	})

	t.Run("Empty sha skips request", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		}))

		checks, err := c.FetchCheckRuns(context.Background(), 9, "")
		require.NoError(t, err)
		assert.Empty(t, checks)
	})
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil, time.Now()))
	assert.ErrorIs(t, classify(context.Canceled, time.Now()), context.Canceled)

	var transient *TransientError
	assert.ErrorAs(t, classify(io.ErrUnexpectedEOF, time.Now()), &transient)
}

func TestNewClient_InvalidRepo(t *testing.T) {
	_, err := NewClient(config.GitHubConfig{Repo: "no-slash"}, nil, logrus.New())
	assert.Error(t, err)
}
