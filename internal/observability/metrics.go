// Package observability collects Prometheus metrics for outbound DMS
// API calls. All methods are nil-safe so instrumentation stays
// optional.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the client-side request metrics.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	staleDropped    prometheus.Counter
}

// NewMetrics initialises the registry and the base metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dms_client_requests_total",
		Help: "Outbound API requests by endpoint and status code.",
	}, []string{"endpoint", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dms_client_request_duration_seconds",
		Help:    "Outbound API request duration per endpoint.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	stale := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dms_client_stale_loads_dropped_total",
		Help: "List loads discarded because a newer load superseded them.",
	})
	registry.MustRegister(requests, duration, stale)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		staleDropped:    stale,
	}
}

// ObserveRequest records one completed outbound request. A status of 0
// means no response was obtained.
func (m *Metrics) ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveStaleDrop records one discarded stale load.
func (m *Metrics) ObserveStaleDrop() {
	if m == nil {
		return
	}
	m.staleDropped.Inc()
}

// Handler returns the http.Handler for a /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registerer exposes the registry for custom metric registration.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}
