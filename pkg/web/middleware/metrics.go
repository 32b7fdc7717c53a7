package middleware

import (
	"net/http"
	"strconv"
	"time"

	"promptdeck-hq/promptdeck/pkg/telemetry/metrics"
)

// Metrics records request count and duration for each inbound request.
// pm may be nil, in which case the middleware is a no-op pass-through.
func Metrics(pm *metrics.PageMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if pm == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			pm.RecordRequest(
				r.Method,
				r.URL.Path,
				strconv.Itoa(rw.statusCode),
				time.Since(startTime),
			)
		})
	}
}
