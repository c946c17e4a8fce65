package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gwbridge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gwbridge",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	gatewayFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gwbridge",
			Subsystem: "gateway",
			Name:      "fetch_total",
			Help:      "Live-data fetch attempts by outcome.",
		},
		[]string{"result"},
	)
	gatewayFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "gwbridge",
			Subsystem: "gateway",
			Name:      "fetch_duration_seconds",
			Help:      "Live-data fetch duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	cacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gwbridge",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Queries answered from the cached snapshot without I/O.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, gatewayFetches, gatewayFetchDuration, cacheHits)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordFetch(result string, duration time.Duration) {
	RegisterMetrics()
	gatewayFetches.WithLabelValues(result).Inc()
	gatewayFetchDuration.Observe(duration.Seconds())
}

func RecordCacheHit() {
	RegisterMetrics()
	cacheHits.Inc()
}
