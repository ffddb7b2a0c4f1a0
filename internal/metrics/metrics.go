// Package metrics exposes Prometheus collectors for the generator and the HTTP API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a registry so several instances can coexist (tests, embedded use).
type Metrics struct {
	registry *prometheus.Registry

	generations     *prometheus.CounterVec
	failures        *prometheus.CounterVec
	weakSource      prometheus.Gauge
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "passgen_generations_total",
			Help: "Number of generated passwords, by strength category.",
		}, []string{"strength"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "passgen_generation_failures_total",
			Help: "Number of failed generations, by reason.",
		}, []string{"reason"}),
		weakSource: f.NewGauge(prometheus.GaugeOpts{
			Name: "passgen_weak_random_source",
			Help: "1 when the generator runs on the non-cryptographic fallback.",
		}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "passgen_http_requests_total",
			Help: "Number of HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "passgen_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) ObserveGeneration(strength string) {
	m.generations.WithLabelValues(strength).Inc()
}

func (m *Metrics) ObserveFailure(reason string) {
	m.failures.WithLabelValues(reason).Inc()
}

func (m *Metrics) SetWeakSource(weak bool) {
	if weak {
		m.weakSource.Set(1)
		return
	}
	m.weakSource.Set(0)
}

func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry for tests and custom exporters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
