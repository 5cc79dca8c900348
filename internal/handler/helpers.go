package handler

import (
	"errors"
	"fmt"
	"net/http"

	"pr-metrics-dashboard/api"
	"pr-metrics-dashboard/internal/domain"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/sirupsen/logrus"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIPullRequest(pr *domain.PullRequest) api.PullRequest {
	return api.PullRequest{
		Number:           pr.Number,
		Title:            pr.Title,
		AuthorLogin:      pr.AuthorLogin,
		State:            api.PullRequestState(pr.State),
		Merged:           pr.Merged,
		CreatedAt:        pr.CreatedAt,
		UpdatedAt:        pr.UpdatedAt,
		ClosedAt:         pr.ClosedAt,
		MergedAt:         pr.MergedAt,
		Labels:           nonNilStrings(pr.Labels),
		Domain:           pr.Domain,
		Trainer:          pr.Trainer,
		Interface:        optString(pr.Interface),
		Complexity:       pr.Complexity,
		TaskId:           optString(pr.TaskID),
		PodLead:          optString(pr.PodLead),
		Calibrator:       optString(pr.Calibrator),
		ReworkCount:      pr.ReworkCount,
		CheckFailures:    pr.CheckFailures,
		FailedCheckNames: optStrings(pr.FailedCheckNames),
	}
}

func toAPIPullRequests(prs []*domain.PullRequest) []api.PullRequest {
	result := make([]api.PullRequest, len(prs))
	for i, pr := range prs {
		result[i] = toAPIPullRequest(pr)
	}
	return result
}

func toAPIAggregationPage(page *domain.AggregatePage) api.AggregationPage {
	rows := make([]api.AggregateRow, len(page.Rows))
	for i, r := range page.Rows {
		rows[i] = api.AggregateRow{
			Name:                    r.Name,
			TotalTasks:              r.TotalTasks,
			CompletedTasks:          r.CompletedTasks,
			RejectedCount:           r.RejectedCount,
			ReworkCount:             r.ReworkCount,
			DeliveryReadyTasks:      r.DeliveryReadyTasks,
			CompletionPercentage:    float32(r.CompletionPercentage),
			RejectionPercentage:     float32(r.RejectionPercentage),
			ReworkPercentage:        float32(r.ReworkPercentage),
			DeliveryReadyPercentage: float32(r.DeliveryReadyPercentage),
		}
	}
	return api.AggregationPage{
		Dimension: string(page.Dimension),
		Rows:      rows,
		Total:     page.Total,
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
}

func toAPIDeveloper(m *domain.DeveloperMetrics) api.DeveloperMetrics {
	return api.DeveloperMetrics{
		Username:      m.Username,
		GithubLogin:   optString(m.GitHubLogin),
		TotalPrs:      m.TotalPRs,
		OpenPrs:       m.OpenPRs,
		MergedPrs:     m.MergedPRs,
		TotalRework:   m.TotalRework,
		CheckFailures: m.CheckFailures,
		Domains:       nonNilCounts(m.Domains),
		UpdatedAt:     m.UpdatedAt,
	}
}

func toAPIReviewer(m *domain.ReviewerMetrics) api.ReviewerMetrics {
	return api.ReviewerMetrics{
		Username:         m.Username,
		TotalReviews:     m.TotalReviews,
		ApprovedReviews:  m.ApprovedReviews,
		ChangesRequested: m.ChangesRequested,
		CommentedReviews: m.CommentedReviews,
		Domains:          nonNilCounts(m.Domains),
		UpdatedAt:        m.UpdatedAt,
	}
}

func toAPIDomain(d *domain.DomainMetrics) api.DomainMetrics {
	return api.DomainMetrics{
		Domain:                  d.Domain,
		TotalTasks:              d.TotalTasks,
		Merged:                  d.Merged,
		ReadyToMerge:            d.ReadyToMerge,
		ExpertApproved:          d.ExpertApproved,
		CalibratorReviewPending: d.CalibratorReviewPending,
		ExpertReviewPending:     d.ExpertReviewPending,
		ExpertCount:             d.ExpertCount,
		HardCount:               d.HardCount,
		MediumCount:             d.MediumCount,
		TotalRework:             d.TotalRework,
		UpdatedAt:               d.UpdatedAt,
	}
}

func toAPIDomains(ds []*domain.DomainMetrics) []api.DomainMetrics {
	result := make([]api.DomainMetrics, len(ds))
	for i, d := range ds {
		result[i] = toAPIDomain(d)
	}
	return result
}

func toAPITimeline(points []domain.TimelinePoint) []api.TimelinePoint {
	result := make([]api.TimelinePoint, len(points))
	for i, p := range points {
		result[i] = api.TimelinePoint{
			Date:    openapi_types.Date{Time: p.Day},
			Created: p.Created,
			Merged:  p.Merged,
			Rework:  p.Rework,
		}
	}
	return result
}

func toAPITriggerResponse(res domain.TriggerResult) api.SyncTriggerResponse {
	resp := api.SyncTriggerResponse{
		Status:      api.SyncTriggerResponseStatus(res.Status),
		Description: res.Description,
	}
	if res.SyncType != "" {
		t := api.SyncType(res.SyncType)
		resp.SyncType = &t
	}
	if res.Status == domain.TriggerStarted {
		id := res.RunID
		resp.SyncId = &id
	}
	return resp
}

func toAPISyncStatus(v *domain.SyncStatusView) api.SyncStatus {
	status := api.SyncStatus{Running: v.Running}
	if v.State != nil {
		status.LastFullSyncAt = v.State.LastFullSyncAt
		status.LastIncrementalSyncAt = v.State.LastIncrementalSyncAt
		status.Cursor = v.State.Cursor
	}
	if r := v.LastRun; r != nil {
		status.LastRun = &api.SyncRun{
			Id:           r.ID,
			SyncType:     api.SyncType(r.Type),
			Status:       api.SyncRunStatus(r.Status),
			StartedAt:    r.StartedAt,
			FinishedAt:   r.FinishedAt,
			SyncedCount:  r.Summary.Synced,
			SkippedCount: r.Summary.Skipped,
			IgnoredCount: r.Summary.Ignored,
			Error:        optString(r.Error),
		}
	}
	return status
}

func toAPIHierarchy(entries []domain.HierarchyEntry) []api.HierarchyEntry {
	result := make([]api.HierarchyEntry, len(entries))
	for i, e := range entries {
		result[i] = api.HierarchyEntry{
			GithubUser: e.GitHubUser,
			Email:      optString(e.Email),
			Role:       optString(e.Role),
			PodLead:    optString(e.PodLead),
			Calibrator: optString(e.Calibrator),
		}
	}
	return result
}

func fromAPIHierarchy(entries []api.HierarchyEntry) []domain.HierarchyEntry {
	result := make([]domain.HierarchyEntry, len(entries))
	for i, e := range entries {
		result[i] = domain.HierarchyEntry{
			GitHubUser: e.GithubUser,
			Email:      deref(e.Email),
			Role:       deref(e.Role),
			PodLead:    deref(e.PodLead),
			Calibrator: deref(e.Calibrator),
		}
	}
	return result
}

func toAPISimilarity(s *domain.SimilarityStats) api.SimilarityStats {
	top := make([]api.SimilarTask, len(s.Top))
	for i, t := range s.Top {
		top[i] = api.SimilarTask{PrNumber: t.PRNumber, Score: float32(t.Score)}
	}
	return api.SimilarityStats{
		PrNumber: s.PRNumber,
		Count:    s.Count,
		Average:  float32(s.Average),
		Max:      float32(s.Max),
		Min:      float32(s.Min),
		Top:      top,
	}
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(code),
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrSyncAlreadyRunning):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrPRNotFound), errors.Is(err, domain.ErrDeveloperNotFound),
		errors.Is(err, domain.ErrReviewerNotFound), errors.Is(err, domain.ErrSimilarityNotFound),
		errors.Is(err, domain.ErrDomainNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidFilter), errors.Is(err, domain.ErrInvalidPagination),
		errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidEmbedding),
		errors.Is(err, domain.ErrInvalidHierarchy):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// HTTPErrorHandler отдает ошибки echo (привязка параметров, 404 маршрута) в общем формате.
func HTTPErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			logger.WithError(err).Error("Unhandled error")
		}

		code := "INTERNAL_ERROR"
		switch {
		case status == http.StatusNotFound:
			code = "NOT_FOUND"
		case status < http.StatusInternalServerError:
			code = "INVALID_REQUEST"
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, toErrorResponse(code, message))
		}
		if err != nil {
			logger.WithError(err).Error("Failed to write error response")
		}
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optStrings(s []string) *[]string {
	if len(s) == 0 {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilCounts(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

// toPage подставляет лимит по умолчанию, только если параметр не передан.
func toPage(limit, offset *int) (domain.Page, error) {
	if limit != nil && *limit < 1 {
		return domain.Page{}, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidPagination, domain.MaxPageLimit)
	}
	return domain.Page{Limit: intOrZero(limit), Offset: intOrZero(offset)}, nil
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
