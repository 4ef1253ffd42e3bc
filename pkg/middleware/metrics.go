package middleware

import (
	"net/http"
	"strconv"
	"time"

	"usuarios-admin/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics records request latency labelled by the matched chi route, so
// /usuarios/1 and /usuarios/2 share one series
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		metrics.RecordHTTPRequestDuration(r.Method, path, strconv.Itoa(rw.statusCode), time.Since(start))
	})
}
