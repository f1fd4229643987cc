// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/countries/internal/platform/metrics"
)

// value returns the value of the first sample of family whose labels include want.
func value(t *testing.T, registry *metrics.Registry, family string, want map[string]string) float64 {
	t.Helper()

	families, err := registry.Gatherer().Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != family {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			matched := true
			for k, v := range want {
				if labels[k] != v {
					matched = false
					break
				}
			}
			if !matched {
				continue
			}
			switch {
			case metric.GetCounter() != nil:
				return metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				return metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				return float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	t.Fatalf("metric %s%v not found", family, want)
	return 0
}

func TestRecordFetch(t *testing.T) {
	registry := metrics.New()

	registry.RecordFetch(true, 20*time.Millisecond, 250)
	registry.RecordFetch(false, 5*time.Millisecond, 0)
	registry.RecordFetch(false, 5*time.Millisecond, 0)

	assert.Equal(t, 1.0, value(t, registry, "countries_catalog_fetches_total", map[string]string{"outcome": "success"}))
	assert.Equal(t, 2.0, value(t, registry, "countries_catalog_fetches_total", map[string]string{"outcome": "error"}))
	assert.Equal(t, 250.0, value(t, registry, "countries_catalog_countries", nil))
	assert.Equal(t, 3.0, value(t, registry, "countries_catalog_fetch_duration_seconds", nil))
}

func TestSetPhase(t *testing.T) {
	registry := metrics.New()
	phases := []string{"loading", "success", "error"}

	registry.SetPhase("loading", phases...)
	registry.SetPhase("error", phases...)

	assert.Equal(t, 0.0, value(t, registry, "countries_catalog_phase", map[string]string{"phase": "loading"}))
	assert.Equal(t, 1.0, value(t, registry, "countries_catalog_phase", map[string]string{"phase": "error"}))
}

func TestInstrument_UsesRoutePattern(t *testing.T) {
	registry := metrics.New()

	router := chi.NewRouter()
	router.Use(registry.Instrument)
	router.Get("/countries/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, code := range []string{"FR", "DE"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/countries/"+code, nil))
	}

	assert.Equal(t, 2.0, value(t, registry, "countries_http_requests_total", map[string]string{
		"method": "GET",
		"route":  "/countries/{code}",
		"status": "404",
	}))
}

func TestHandler_ServesExposition(t *testing.T) {
	registry := metrics.New()
	registry.RecordFetch(true, time.Millisecond, 1)

	rr := httptest.NewRecorder()
	registry.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, string(body), "countries_catalog_fetches_total")
}
