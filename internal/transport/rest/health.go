package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/verbnet-reader/internal/index"
)

// corpusPinger defines the minimal interface for document store health checks.
type corpusPinger interface {
	Ping(ctx context.Context) error
}

type indexStats interface {
	Stats() index.Stats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	corpus  corpusPinger
	index   indexStats
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(corpus corpusPinger, idx indexStats, version string) *HealthHandler {
	return &HealthHandler{corpus: corpus, index: idx, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Index      *IndexStatus          `json:"index,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// IndexStatus reports the sizes of the lookup tables.
type IndexStatus struct {
	Documents int `json:"documents"`
	Classes   int `json:"classes"`
	Lemmas    int `json:"lemmas"`
	SenseIDs  int `json:"senseIds"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when the document store answers and
// the index holds at least one document, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.corpus.Ping(ctx); err != nil || h.index.Stats().Documents == 0 {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings the document store with latency
// measurement and includes version and index sizes.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.corpus.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["corpus"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["corpus"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	stats := h.index.Stats()
	if stats.Documents == 0 {
		components["index"] = CompStatus{Status: "empty"}
		overallStatus = "down"
	} else {
		components["index"] = CompStatus{Status: "ok"}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Index: &IndexStatus{
			Documents: stats.Documents,
			Classes:   stats.Classes,
			Lemmas:    stats.Lemmas,
			SenseIDs:  stats.SenseIDs,
		},
		Timestamp: time.Now(),
	})
}
