// Package metrics defines Prometheus metrics for searchit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "searchit"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last /healthz probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz probe succeeded, 0 otherwise.",
	})
)

// Backend metrics.
var (
	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total backend requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	BackendDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "backend_daily_usage",
		Help:      "Backend calls made within the rolling 24-hour window.",
	})

	BackendDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_daily_limit_hits_total",
		Help:      "Total number of times the daily backend call limit was reached.",
	})
)

// Normalization metrics.
var (
	NormalizeRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "normalize_rejected_total",
		Help:      "Responses reduced to an empty result, by response kind.",
	}, []string{"kind"})
)

// Wish list metrics.
var (
	WishListItems = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "wishlist_items",
		Help:      "Number of items currently displayed in the wish list.",
	})

	WishListTotalCost = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "wishlist_total_cost",
		Help:      "Running total cost of the wish list.",
	})

	WishListRefreshFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wishlist_refresh_failures_total",
		Help:      "Total number of failed wish list round-trips.",
	})
)

// Scheduler metrics.
var (
	SchedulerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduler_runs_total",
		Help:      "Scheduled job runs by job and outcome.",
	}, []string{"job", "outcome"})
)
