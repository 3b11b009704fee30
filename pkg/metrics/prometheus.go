// Package metrics provides Prometheus metrics for the hangs API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns a registry and the collectors registered on it.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	runtimeMetrics   bool
	registry         *prometheus.Registry

	// HTTP Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Domain Metrics
	hangsCreated  prometheus.Counter
	hangsDeleted  prometheus.Counter
	rsvpsAppended prometheus.Counter
}

// NewManager creates a metrics manager. Without WithRegistry it uses a fresh
// registry so no default Go metrics leak in.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hangs",
		subsystem:        "api",
		histogramBuckets: prometheus.DefBuckets,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	if m.runtimeMetrics {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.hangsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hangs_created_total",
		Help:      "Total number of hangs created",
	})

	m.hangsDeleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hangs_deleted_total",
		Help:      "Total number of hangs deleted",
	})

	m.rsvpsAppended = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rsvps_appended_total",
		Help:      "Total number of RSVP entries appended to hangs",
	})
}

// RecordHTTPRequest counts a finished request and observes its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(endpoint, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, code).Observe(duration.Seconds())
}

// HangCreated increments the hangs created counter.
func (m *Manager) HangCreated() {
	m.hangsCreated.Inc()
}

// HangDeleted increments the hangs deleted counter.
func (m *Manager) HangDeleted() {
	m.hangsDeleted.Inc()
}

// RSVPAppended increments the RSVP counter.
func (m *Manager) RSVPAppended() {
	m.rsvpsAppended.Inc()
}

// Registry returns the registry backing this manager.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
