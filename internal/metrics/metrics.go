package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors used for monitoring the API:
// cache effectiveness for the per-admin employee list, login outcomes,
// and request latency.
type Metrics struct {
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	CacheInvalidations prometheus.Counter
	Logins             *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

// New creates a Metrics instance registered with the provided Registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CacheHits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "staffdesk_employee_cache_hits_total",
			Help: "Total employee list reads served from the cache.",
		}),
		CacheMisses: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "staffdesk_employee_cache_misses_total",
			Help: "Total employee list reads that fell back to the database.",
		}),
		CacheInvalidations: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "staffdesk_employee_cache_invalidations_total",
			Help: "Total employee list cache entries removed after a write.",
		}),
		Logins: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffdesk_logins_total",
			Help: "Total login attempts by outcome.",
		}, []string{"status"}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffdesk_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	m.Logins.WithLabelValues("success")
	m.Logins.WithLabelValues("failure")

	return m
}
