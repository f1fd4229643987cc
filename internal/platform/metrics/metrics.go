// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics exposes Prometheus collectors for catalogue fetches and
// HTTP traffic.
//
// Each [Registry] owns its own prometheus registry so tests can build one
// without colliding with the process-wide default.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/countries/internal/platform/middleware"
)

const namespace = "countries"

// Registry groups the application collectors.
type Registry struct {
	registry *prometheus.Registry

	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	catalogSize   prometheus.Gauge
	phase         *prometheus.GaugeVec

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates a registry with all collectors registered.
func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "fetches_total",
				Help:      "Total number of catalogue fetches by outcome.",
			},
			[]string{"outcome"},
		),
		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "fetch_duration_seconds",
				Help:      "Duration of catalogue fetches.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
			},
		),
		catalogSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "countries",
				Help:      "Number of countries in the last successful fetch.",
			},
		),
		phase: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "phase",
				Help:      "1 for the current view-state phase, 0 otherwise.",
			},
			[]string{"phase"},
		),

		httpInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "inflight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method", "route"},
		),
	}

	r.registry.MustRegister(
		r.fetches,
		r.fetchDuration,
		r.catalogSize,
		r.phase,
		r.httpInFlight,
		r.httpRequests,
		r.httpDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return r
}

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler returns an HTTP handler exposing the registered metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// # Catalogue

// RecordFetch records one catalogue fetch. count is ignored on failure.
func (r *Registry) RecordFetch(success bool, duration time.Duration, count int) {
	outcome := "error"
	if success {
		outcome = "success"
		r.catalogSize.Set(float64(count))
	}
	r.fetches.WithLabelValues(outcome).Inc()
	r.fetchDuration.Observe(duration.Seconds())
}

// SetPhase marks phase as current and clears the others.
func (r *Registry) SetPhase(phase string, all ...string) {
	for _, other := range all {
		r.phase.WithLabelValues(other).Set(0)
	}
	r.phase.WithLabelValues(phase).Set(1)
}

// # HTTP

// Instrument wraps next with request counting and latency histograms.
//
// Routes are labelled with the chi route pattern so path parameters do not
// explode label cardinality.
func (r *Registry) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/metrics" {
			next.ServeHTTP(writer, request)
			return
		}

		recorder := &middleware.StatusRecorder{ResponseWriter: writer, Status: http.StatusOK}
		start := time.Now()

		r.httpInFlight.Inc()
		defer r.httpInFlight.Dec()

		next.ServeHTTP(recorder, request)

		route := routePattern(request)
		method := strings.ToUpper(request.Method)

		r.httpRequests.WithLabelValues(method, route, strconv.Itoa(recorder.Status)).Inc()
		r.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

func routePattern(request *http.Request) string {
	if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
		if pattern := routeContext.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
