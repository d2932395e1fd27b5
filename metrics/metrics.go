package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Entity writes by entity type and operation
	EntityWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_writes_total",
			Help: "Total number of committed entity writes",
		},
		[]string{"entity", "op"}, // op: create, update, delete
	)

	// Summary cache lookups
	SummaryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_cache_total",
			Help: "Dashboard summary cache lookups by result",
		},
		[]string{"result"}, // result: hit, miss, error
	)
)

// RecordHTTPRequestDuration records one served request
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementEntityWrite counts a committed create, update or delete
func IncrementEntityWrite(entity, op string) {
	EntityWrites.WithLabelValues(entity, op).Inc()
}

// IncrementSummaryCache counts a summary cache lookup
func IncrementSummaryCache(result string) {
	SummaryCacheLookups.WithLabelValues(result).Inc()
}
