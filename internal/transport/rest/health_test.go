package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/verbnet-reader/internal/index"
)

type corpusPingerMock struct {
	err error
}

func (m *corpusPingerMock) Ping(_ context.Context) error {
	return m.err
}

type indexStatsMock struct {
	stats index.Stats
}

func (m *indexStatsMock) Stats() index.Stats { return m.stats }

var loadedIndex = &indexStatsMock{stats: index.Stats{Documents: 2, Classes: 5, Lemmas: 8, SenseIDs: 10}}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&corpusPingerMock{}, loadedIndex, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()

	h.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}

	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady_CorpusUp(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&corpusPingerMock{err: nil}, loadedIndex, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
}

func TestReady_CorpusDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&corpusPingerMock{err: errors.New("connection refused")}, loadedIndex, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&corpusPingerMock{err: nil}, loadedIndex, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}

	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}

	dbComp, ok := resp.Components["corpus"]
	if !ok {
		t.Fatal("expected 'corpus' component in response")
	}

	if dbComp.Status != "ok" {
		t.Errorf("expected corpus status 'ok', got %q", dbComp.Status)
	}
}

func TestHealth_CorpusDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&corpusPingerMock{err: errors.New("connection refused")}, loadedIndex, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}

	dbComp, ok := resp.Components["corpus"]
	if !ok {
		t.Fatal("expected 'corpus' component in response")
	}

	if dbComp.Status != "down" {
		t.Errorf("expected corpus status 'down', got %q", dbComp.Status)
	}
}

func TestHealth_IncludesLatency(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&corpusPingerMock{err: nil}, loadedIndex, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	dbComp, ok := resp.Components["corpus"]
	if !ok {
		t.Fatal("expected 'corpus' component in response")
	}

	if dbComp.Latency == "" {
		t.Error("expected non-empty latency for corpus component")
	}
}

func TestReady_EmptyIndex(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&corpusPingerMock{}, &indexStatsMock{}, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}

func TestHealth_ReportsIndexSizes(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&corpusPingerMock{}, loadedIndex, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Index == nil {
		t.Fatal("expected index sizes in response")
	}
	if resp.Index.Classes != 5 || resp.Index.SenseIDs != 10 {
		t.Errorf("unexpected index sizes %+v", *resp.Index)
	}
	if resp.Components["index"].Status != "ok" {
		t.Errorf("expected index status 'ok', got %q", resp.Components["index"].Status)
	}
}
