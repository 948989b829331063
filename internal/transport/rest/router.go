package rest

import "net/http"

// Middleware wraps a single route.
type Middleware = func(http.Handler) http.Handler

// NewMux registers every endpoint. limitFrames wraps the frame endpoints,
// whose responses are the most expensive to build; it may be nil.
func NewMux(vn *VerbNetHandler, health *HealthHandler, metrics http.Handler, limitFrames Middleware) *http.ServeMux {
	if limitFrames == nil {
		limitFrames = func(h http.Handler) http.Handler { return h }
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}

	mux.HandleFunc("GET /api/v1/lemmas", vn.Lemmas)
	mux.Handle("GET /api/v1/lemmas/{lemma}/frames", limitFrames(http.HandlerFunc(vn.LemmaFrames)))
	mux.HandleFunc("GET /api/v1/senses", vn.Senses)
	mux.HandleFunc("GET /api/v1/classes", vn.Classes)
	mux.HandleFunc("GET /api/v1/classes/batch", vn.ClassBatch)
	mux.HandleFunc("GET /api/v1/classes/{id}", vn.Class)
	mux.Handle("GET /api/v1/classes/{id}/frames", limitFrames(http.HandlerFunc(vn.ClassFrames)))
	mux.HandleFunc("GET /api/v1/documents", vn.Documents)
	mux.HandleFunc("GET /api/v1/ids/{id}", vn.ID)

	return mux
}

// RoutePattern returns a function naming the mux pattern that serves a
// request, or "" when none does.
func RoutePattern(mux *http.ServeMux) func(*http.Request) string {
	return func(r *http.Request) string {
		_, pattern := mux.Handler(r)
		return pattern
	}
}
