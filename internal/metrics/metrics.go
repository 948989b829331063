// Package metrics provides Prometheus metrics for the VerbNet reader.
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

// Metrics holds all Prometheus metrics. Each instance owns its registry so
// several can coexist in one process (tests, CLI plus server).
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Index metrics
	IndexBuildDuration *prometheus.HistogramVec
	IndexEntries       *prometheus.GaugeVec

	// Query metrics
	FramesEmittedTotal *prometheus.CounterVec
	DocumentLoadsTotal *prometheus.CounterVec
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verbnet_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.HTTPRequestDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "verbnet_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.HTTPRequestsInFlight = f.NewGauge(
		prometheus.GaugeOpts{
			Name: "verbnet_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	m.IndexBuildDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "verbnet_index_build_duration_seconds",
			Help:    "Duration of index builds in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"mode"},
	)

	m.IndexEntries = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "verbnet_index_entries",
			Help: "Number of keys per index table",
		},
		[]string{"table"},
	)

	m.FramesEmittedTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verbnet_frames_emitted_total",
			Help: "Total number of frames returned to callers",
		},
		[]string{"operation"},
	)

	m.DocumentLoadsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verbnet_document_loads_total",
			Help: "Total number of parsed-document loads",
		},
		[]string{"status"},
	)

	return m
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records a finished HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordIndexBuild records an index build and the resulting table sizes.
func (m *Metrics) RecordIndexBuild(mode string, duration time.Duration, documents, classes, lemmas, senseIDs int) {
	m.IndexBuildDuration.WithLabelValues(mode).Observe(duration.Seconds())
	m.IndexEntries.WithLabelValues("documents").Set(float64(documents))
	m.IndexEntries.WithLabelValues("classes").Set(float64(classes))
	m.IndexEntries.WithLabelValues("lemmas").Set(float64(lemmas))
	m.IndexEntries.WithLabelValues("sense_ids").Set(float64(senseIDs))
}

// RecordFrames adds n emitted frames for an operation.
func (m *Metrics) RecordFrames(operation string, n int) {
	m.FramesEmittedTotal.WithLabelValues(operation).Add(float64(n))
}

// RecordDocumentLoad counts a document load by outcome.
func (m *Metrics) RecordDocumentLoad(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DocumentLoadsTotal.WithLabelValues(status).Inc()
}
