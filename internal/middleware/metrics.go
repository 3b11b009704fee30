package middleware

import (
	"net/http"
	"time"
)

// HTTPRecorder receives one observation per finished request
type HTTPRecorder interface {
	RecordHTTPRequest(endpoint, method string, status int, duration time.Duration)
}

// Metrics records request counts and latency labelled by the matched route
// pattern. It must run inside the ServeMux so r.Pattern is set.
func Metrics(recorder HTTPRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			endpoint := r.Pattern
			if endpoint == "" {
				endpoint = "unmatched"
			}
			recorder.RecordHTTPRequest(endpoint, r.Method, wrapped.statusCode, time.Since(start))
		})
	}
}
