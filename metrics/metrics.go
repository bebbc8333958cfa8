// metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hco_calculations_completed_total",
			Help: "Total number of successful calculator evaluations",
		},
		[]string{"calculator"},
	)

	CalculationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hco_calculations_rejected_total",
			Help: "Total number of calculator evaluations rejected by validation",
		},
		[]string{"calculator", "error_code"},
	)

	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hco_calculation_duration_seconds",
			Help:    "Duration of calculator evaluations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
		[]string{"calculator"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hco_cache_lookups_total",
			Help: "Result cache lookups by outcome (hit, miss)",
		},
		[]string{"calculator", "result"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hco_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "hco_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "route", "status"},
	)

	SimulationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hco_simulation_runs_total",
			Help: "Progress indicator runs by outcome (completed, cancelled)",
		},
		[]string{"status"},
	)
)
