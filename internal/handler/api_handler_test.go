package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pr-metrics-dashboard/api"
	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/handler"
	"pr-metrics-dashboard/internal/mocks"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type APIHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	dashboard   *mocks.DashboardUseCase
	aggregation *mocks.AggregationUseCase
	sync        *mocks.SyncUseCase
	hierarchy   *mocks.HierarchyUseCase
	similarity  *mocks.SimilarityUseCase
}

func (suite *APIHandlerTestSuite) SetupTest() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	suite.dashboard = new(mocks.DashboardUseCase)
	suite.aggregation = new(mocks.AggregationUseCase)
	suite.sync = new(mocks.SyncUseCase)
	suite.hierarchy = new(mocks.HierarchyUseCase)
	suite.similarity = new(mocks.SimilarityUseCase)

	suite.echo = echo.New()
	suite.echo.HTTPErrorHandler = handler.HTTPErrorHandler(logger)
	api.RegisterHandlers(suite.echo, handler.NewAPIHandler(
		suite.dashboard, suite.aggregation, suite.sync, suite.hierarchy, suite.similarity, logger,
	))
}

func (suite *APIHandlerTestSuite) TearDownTest() {
	suite.dashboard.AssertExpectations(suite.T())
	suite.aggregation.AssertExpectations(suite.T())
	suite.sync.AssertExpectations(suite.T())
	suite.hierarchy.AssertExpectations(suite.T())
	suite.similarity.AssertExpectations(suite.T())
}

func (suite *APIHandlerTestSuite) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (suite *APIHandlerTestSuite) TestGetAggregation_Success() {
	// Mock expectations
	filter := domain.AggregateFilter{SortBy: domain.SortByName, Search: "ali"}
	page := domain.Page{Limit: 10}
	suite.aggregation.On("AggregateBy", mock.Anything, domain.DimensionDeveloper, filter, page).
		Return(&domain.AggregatePage{
			Dimension: domain.DimensionDeveloper,
			Rows: []domain.AggregateRow{
				{Name: "alice", TotalTasks: 3, CompletedTasks: 2, CompletionPercentage: 66.67},
			},
			Total: 1,
			Limit: 10,
		}, nil)

	// Execute
	rec := suite.do(http.MethodGet, "/api/aggregation/trainers?sort_by=name&search=ali&limit=10", nil)

	// Assert
	require.Equal(suite.T(), http.StatusOK, rec.Code)
	var resp api.AggregationPage
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(suite.T(), resp.Rows, 1)
	assert.Equal(suite.T(), "alice", resp.Rows[0].Name)
	assert.Equal(suite.T(), 3, resp.Rows[0].TotalTasks)
	assert.InDelta(suite.T(), 66.67, float64(resp.Rows[0].CompletionPercentage), 0.01)
	assert.Equal(suite.T(), 1, resp.Total)
}

func (suite *APIHandlerTestSuite) TestGetAggregation_UnknownDimension() {
	rec := suite.do(http.MethodGet, "/api/aggregation/planets", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	resp := decodeError(suite.T(), rec)
	assert.Equal(suite.T(), api.INVALIDFILTER, resp.Error.Code)
	assert.Contains(suite.T(), resp.Error.Message, "planets")
}

func (suite *APIHandlerTestSuite) TestGetAggregation_ValidationFromUseCase() {
	suite.aggregation.On("AggregateBy", mock.Anything, domain.DimensionDomain, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: limit must not exceed %d", domain.ErrInvalidPagination, domain.MaxPageLimit))

	rec := suite.do(http.MethodGet, "/api/aggregation/domains?limit=1000", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	resp := decodeError(suite.T(), rec)
	assert.Equal(suite.T(), api.INVALIDPAGINATION, resp.Error.Code)
}

func (suite *APIHandlerTestSuite) TestGetAggregation_MalformedQuery() {
	rec := suite.do(http.MethodGet, "/api/aggregation/domains?limit=many", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	resp := decodeError(suite.T(), rec)
	assert.Equal(suite.T(), api.INVALIDREQUEST, resp.Error.Code)
}

func (suite *APIHandlerTestSuite) TestPostSync() {
	runID := uuid.New()

	testCases := []struct {
		name       string
		body       interface{}
		request    domain.SyncRequest
		result     domain.TriggerResult
		wantStatus int
		wantID     bool
	}{
		{
			name:    "Started without body",
			request: domain.SyncRequest{Source: "api"},
			result: domain.TriggerResult{
				Status:      domain.TriggerStarted,
				SyncType:    domain.SyncTypeFull,
				Description: "Initial sync - fetching last 30 days",
				RunID:       runID,
			},
			wantStatus: http.StatusAccepted,
			wantID:     true,
		},
		{
			name:    "Already running",
			body:    map[string]interface{}{"force_full": true, "since_days": 7},
			request: domain.SyncRequest{Source: "api", ForceFull: true, SinceDays: 7},
			result: domain.TriggerResult{
				Status:      domain.TriggerAlreadyRunning,
				Description: "Sync already in progress",
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.sync.On("Trigger", mock.Anything, tc.request).Return(tc.result, nil).Once()

			rec := suite.do(http.MethodPost, "/api/sync", tc.body)

			require.Equal(suite.T(), tc.wantStatus, rec.Code)
			var resp api.SyncTriggerResponse
			require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(suite.T(), string(tc.result.Status), string(resp.Status))
			assert.Equal(suite.T(), tc.result.Description, resp.Description)
			if tc.wantID {
				require.NotNil(suite.T(), resp.SyncId)
				assert.Equal(suite.T(), runID, *resp.SyncId)
			} else {
				assert.Nil(suite.T(), resp.SyncId)
			}
			suite.sync.AssertExpectations(suite.T())
		})
	}
}

func (suite *APIHandlerTestSuite) TestPostSync_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/sync", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(suite.T(), api.INVALIDREQUEST, decodeError(suite.T(), rec).Error.Code)
}

func (suite *APIHandlerTestSuite) TestGetSyncStatus() {
	finished := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	runID := uuid.New()
	suite.sync.On("Status", mock.Anything).Return(&domain.SyncStatusView{
		Running: false,
		State:   &domain.SyncState{LastFullSyncAt: &finished, Cursor: &finished},
		LastRun: &domain.SyncRun{
			ID:         runID,
			Type:       domain.SyncTypeFull,
			Status:     domain.SyncRunCompleted,
			StartedAt:  finished.Add(-time.Minute),
			FinishedAt: &finished,
			Summary:    domain.SyncSummary{Synced: 4, Skipped: 1},
		},
	}, nil)

	rec := suite.do(http.MethodGet, "/api/sync/status", nil)

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	var resp api.SyncStatus
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(suite.T(), resp.Running)
	require.NotNil(suite.T(), resp.LastRun)
	assert.Equal(suite.T(), runID, resp.LastRun.Id)
	assert.Equal(suite.T(), 4, resp.LastRun.SyncedCount)
	assert.Nil(suite.T(), resp.LastRun.Error)
}

func (suite *APIHandlerTestSuite) TestGetDeveloper_NotFound() {
	suite.dashboard.On("Developer", mock.Anything, "ghost").
		Return(nil, fmt.Errorf("get developer ghost: %w", domain.ErrDeveloperNotFound))

	rec := suite.do(http.MethodGet, "/api/developers/ghost", nil)

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	resp := decodeError(suite.T(), rec)
	assert.Equal(suite.T(), api.NOTFOUND, resp.Error.Code)
	assert.Equal(suite.T(), "developer not found", resp.Error.Message)
}

func (suite *APIHandlerTestSuite) TestGetOverview_InternalErrorHidesDetails() {
	suite.dashboard.On("Overview", mock.Anything).
		Return(nil, errors.New("pq: connection refused"))

	rec := suite.do(http.MethodGet, "/api/overview", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
	resp := decodeError(suite.T(), rec)
	assert.Equal(suite.T(), api.INTERNALERROR, resp.Error.Code)
	assert.NotContains(suite.T(), resp.Error.Message, "pq")
}

func (suite *APIHandlerTestSuite) TestGetOverview_NeverSynced() {
	suite.dashboard.On("Overview", mock.Anything).Return(&domain.Overview{TotalPRs: 0}, nil)

	rec := suite.do(http.MethodGet, "/api/overview", nil)

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	var raw map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Nil(suite.T(), raw["last_sync_at"])
	assert.Equal(suite.T(), []interface{}{}, raw["recent_prs"])
}

func (suite *APIHandlerTestSuite) TestGetPrs_PassesFilter() {
	suite.dashboard.On("ListPullRequests", mock.Anything, domain.PRFilter{
		State:     "open",
		Domain:    "Finance",
		Developer: "alice",
		Page:      domain.Page{Limit: 20, Offset: 40},
	}).Return(&domain.PRPage{Items: nil, Total: 41, Limit: 20, Offset: 40}, nil)

	rec := suite.do(http.MethodGet, "/api/prs?state=open&domain=Finance&developer=alice&limit=20&offset=40", nil)

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	var resp api.PullRequestList
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), 41, resp.Total)
	assert.Empty(suite.T(), resp.Items)
}

func (suite *APIHandlerTestSuite) TestGetStatsTimeline() {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	suite.dashboard.On("Timeline", mock.Anything, 7, "").
		Return([]domain.TimelinePoint{{Day: day, Created: 2, Merged: 1}}, nil)

	rec := suite.do(http.MethodGet, "/api/stats/timeline?days=7", nil)

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), `"2024-05-01"`)
}

func (suite *APIHandlerTestSuite) TestGetDomainsList() {
	suite.dashboard.On("DomainNames").Return([]string{"Finance", "Others"})

	rec := suite.do(http.MethodGet, "/api/domains/list", nil)

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"domains":["Finance","Others"]}`, rec.Body.String())
}

func (suite *APIHandlerTestSuite) TestPutHierarchy() {
	suite.hierarchy.On("Replace", mock.Anything, []domain.HierarchyEntry{
		{GitHubUser: "alice", PodLead: "carol"},
	}).Return(nil)

	rec := suite.do(http.MethodPut, "/api/hierarchy", map[string]interface{}{
		"entries": []map[string]string{{"github_user": "alice", "pod_lead": "carol"}},
	})

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"count":1}`, rec.Body.String())
}

func (suite *APIHandlerTestSuite) TestPutSimilarityEmbeddings_Invalid() {
	suite.similarity.On("StoreEmbeddings", mock.Anything, mock.Anything).
		Return(0, fmt.Errorf("%w: vector for PR 1 is empty", domain.ErrInvalidEmbedding))

	rec := suite.do(http.MethodPut, "/api/similarity/embeddings", map[string]interface{}{
		"embeddings": []map[string]interface{}{{"pr_number": 1, "vector": []float64{}}},
	})

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(suite.T(), api.INVALIDEMBEDDING, decodeError(suite.T(), rec).Error.Code)
}

func (suite *APIHandlerTestSuite) TestUnknownRoute() {
	rec := suite.do(http.MethodGet, "/api/nothing-here", nil)

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Equal(suite.T(), api.NOTFOUND, decodeError(suite.T(), rec).Error.Code)
}

func (suite *APIHandlerTestSuite) TestGetDomain() {
	// Test data
	updated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	detail := &domain.DomainDetail{
		Metrics: &domain.DomainMetrics{Domain: "Finance", TotalTasks: 4, Merged: 2, UpdatedAt: updated},
		RecentPRs: []*domain.PullRequest{
			{Number: 7, Title: "alice-finance-web-hard-1700000007", State: domain.PRStateOpen, Domain: "Finance"},
		},
	}

	// Mock expectations
	suite.dashboard.On("Domain", mock.Anything, "finance").Return(detail, nil)

	// Execute
	rec := suite.do(http.MethodGet, "/api/domains/finance", nil)

	// Assert
	require.Equal(suite.T(), http.StatusOK, rec.Code)
	var resp api.DomainDetail
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Finance", resp.Metrics.Domain)
	assert.Equal(suite.T(), 4, resp.Metrics.TotalTasks)
	require.Len(suite.T(), resp.RecentPrs, 1)
	assert.Equal(suite.T(), int64(7), resp.RecentPrs[0].Number)
}

func (suite *APIHandlerTestSuite) TestGetDomain_NotFound() {
	suite.dashboard.On("Domain", mock.Anything, "astrology").
		Return(nil, fmt.Errorf("%w: %q", domain.ErrDomainNotFound, "astrology"))

	rec := suite.do(http.MethodGet, "/api/domains/astrology", nil)

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	resp := decodeError(suite.T(), rec)
	assert.Equal(suite.T(), api.NOTFOUND, resp.Error.Code)
	assert.Equal(suite.T(), "domain not found", resp.Error.Message)
}

func (suite *APIHandlerTestSuite) TestGetDomain_ListRouteStillStatic() {
	suite.dashboard.On("DomainNames").Return([]string{"Others"})

	rec := suite.do(http.MethodGet, "/api/domains/list", nil)

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	suite.dashboard.AssertNotCalled(suite.T(), "Domain", mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestExplicitZeroLimitRejected() {
	targets := []string{
		"/api/aggregation/domains?limit=0",
		"/api/developers?limit=0",
		"/api/reviewers?limit=0",
		"/api/prs?limit=0",
		"/api/prs?limit=-5",
	}

	for _, target := range targets {
		rec := suite.do(http.MethodGet, target, nil)

		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code, target)
		assert.Equal(suite.T(), api.INVALIDPAGINATION, decodeError(suite.T(), rec).Error.Code, target)
	}

	suite.aggregation.AssertNotCalled(suite.T(), "AggregateBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.dashboard.AssertNotCalled(suite.T(), "ListPullRequests", mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestMissingLimitUsesDefault() {
	suite.aggregation.On("AggregateBy", mock.Anything, domain.DimensionReviewer, domain.AggregateFilter{}, domain.Page{}).
		Return(&domain.AggregatePage{Dimension: domain.DimensionReviewer, Limit: domain.DefaultPageLimit}, nil)

	rec := suite.do(http.MethodGet, "/api/reviewers", nil)

	require.Equal(suite.T(), http.StatusOK, rec.Code)
}

func TestAPIHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(APIHandlerTestSuite))
}
