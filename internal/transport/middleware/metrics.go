package middleware

import (
	"net/http"
	"time"
)

type requestRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

type inFlightGauge interface {
	Inc()
	Dec()
}

// RouteFunc names the route a request was served by, used as a metric
// label. It must return a bounded set of values.
type RouteFunc func(r *http.Request) string

// Metrics returns middleware that records request counts and durations per
// route. inFlight may be nil.
func Metrics(rec requestRecorder, inFlight inFlightGauge, route RouteFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if inFlight != nil {
				inFlight.Inc()
				defer inFlight.Dec()
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			name := route(r)
			if name == "" {
				name = "unmatched"
			}
			rec.RecordHTTPRequest(r.Method, name, sw.status, time.Since(start))
		})
	}
}
