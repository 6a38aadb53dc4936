package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "creative_factory"

// Metrics exposes Prometheus collectors for upstream calls, generation
// outcomes and HTTP traffic. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	llmRequests   *prometheus.CounterVec
	llmDuration   *prometheus.HistogramVec
	drafts        *prometheus.CounterVec
	trendsLookups *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// New creates collectors on a private registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "Language model calls by model, API and outcome.",
		}, []string{"model", "api", "outcome"}),
		llmDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "Latency of language model calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}, []string{"model", "api"}),
		drafts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "drafts_total",
			Help:      "Generated drafts by entry point and origin.",
		}, []string{"mode", "origin"}),
		trendsLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trends",
			Name:      "lookups_total",
			Help:      "Trends seed keyword lookups by country and outcome.",
		}, []string{"country", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.llmRequests, m.llmDuration, m.drafts, m.trendsLookups, m.httpRequests, m.httpDurations,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveLLM records one language model call.
func (m *Metrics) ObserveLLM(model, api, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.llmRequests.WithLabelValues(model, api, outcome).Inc()
	m.llmDuration.WithLabelValues(model, api).Observe(d.Seconds())
}

// CountDrafts adds n drafts of one origin.
func (m *Metrics) CountDrafts(mode, origin string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.drafts.WithLabelValues(mode, origin).Add(float64(n))
}

// ObserveTrendsLookup records one seed keyword lookup.
func (m *Metrics) ObserveTrendsLookup(country, outcome string) {
	if m == nil {
		return
	}
	m.trendsLookups.WithLabelValues(country, outcome).Inc()
}

// ObserveHTTP records one served request. route is the chi route pattern so
// that path parameters do not explode label cardinality.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDurations.WithLabelValues(method, route).Observe(d.Seconds())
}
