// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ReportRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_requests_total",
			Help: "Total number of application view reports by statistics bundle and outcome",
		},
		[]string{"bundle", "status"},
	)

	ReportQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_query_duration_seconds",
			Help:    "Duration of individual report queries in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"query"},
	)

	ReportRowsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_rows_returned",
			Help:    "Number of report rows returned per application view request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)
