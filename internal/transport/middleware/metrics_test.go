package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type recordedRequest struct {
	method, route string
	status        int
}

type fakeRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeRecorder) RecordHTTPRequest(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{method, route, status})
}

type fakeGauge struct{ value, peak int }

func (g *fakeGauge) Inc() {
	g.value++
	g.peak = max(g.peak, g.value)
}

func (g *fakeGauge) Dec() { g.value-- }

func TestMetrics_RecordsRoute(t *testing.T) {
	rec := &fakeRecorder{}
	gauge := &fakeGauge{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gauge.value != 1 {
			t.Errorf("in-flight = %d during request, want 1", gauge.value)
		}
		w.WriteHeader(http.StatusNotFound)
	})
	route := func(*http.Request) string { return "GET /api/v1/classes/{id}" }

	wrapped := Metrics(rec, gauge, route)(handler)
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/classes/x", nil))

	if len(rec.requests) != 1 {
		t.Fatalf("expected 1 recorded request, got %d", len(rec.requests))
	}
	got := rec.requests[0]
	if got.method != http.MethodGet || got.route != "GET /api/v1/classes/{id}" || got.status != http.StatusNotFound {
		t.Errorf("unexpected record %+v", got)
	}
	if gauge.value != 0 || gauge.peak != 1 {
		t.Errorf("gauge value=%d peak=%d, want 0 and 1", gauge.value, gauge.peak)
	}
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	rec := &fakeRecorder{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	wrapped := Metrics(rec, nil, func(*http.Request) string { return "" })(handler)
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.requests[0].route != "unmatched" {
		t.Errorf("route = %q, want %q", rec.requests[0].route, "unmatched")
	}
	if rec.requests[0].status != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.requests[0].status)
	}
}
