package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_runs_total",
		Help: "Total number of sync runs by type and outcome",
	}, []string{"type", "status"})
	SyncTriggersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_triggers_total",
		Help: "Total number of sync trigger attempts by result",
	}, []string{"result"})
	SyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sync_duration_seconds",
		Help:    "Duration of sync runs",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
	}, []string{"type"})
	SyncPullRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_pull_requests_total",
		Help: "Pull requests seen by the sync pipeline by outcome",
	}, []string{"outcome"})
	GitHubRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "github_requests_total",
		Help: "Requests to the GitHub API by endpoint and outcome",
	}, []string{"endpoint", "outcome"})
	AggregationCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aggregation_cache_total",
		Help: "Aggregation cache lookups by result",
	}, []string{"result"})
	WSClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ws_clients",
		Help: "Connected WebSocket clients",
	})
	EventsDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notify_events_dropped_total",
		Help: "Events dropped for slow subscribers",
	})
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"method", "route", "status"})
)

// Handler отдает метрики в формате Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
