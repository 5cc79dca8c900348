package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v66/github"
)

// ErrNotFound - репозиторий или ресурс не существует. Повтор не поможет.
var ErrNotFound = errors.New("github: not found")

// RateLimitedError - исчерпан лимит запросов; RetryAfter - подсказка сервера.
type RateLimitedError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("github: rate limited, retry after %s: %v", e.RetryAfter, e.Err)
}

func (e *RateLimitedError) Unwrap() error { return e.Err }

// TransientError - сетевая ошибка или 5xx, имеет смысл повторить.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "github: transient error: " + e.Err.Error() }

func (e *TransientError) Unwrap() error { return e.Err }

// classify переводит ошибки go-github в типизированные ошибки клиента.
func classify(err error, now time.Time) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		wait := rateErr.Rate.Reset.Time.Sub(now)
		if wait < 0 {
			wait = 0
		}
		return &RateLimitedError{RetryAfter: wait, Err: err}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &RateLimitedError{RetryAfter: abuseErr.GetRetryAfter(), Err: err}
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch code := respErr.Response.StatusCode; {
		case code == http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, respErr.Message)
		case code == http.StatusTooManyRequests, code == http.StatusRequestTimeout, code >= 500:
			return &TransientError{Err: err}
		default:
			return err
		}
	}

	return &TransientError{Err: err}
}
