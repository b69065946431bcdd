package middleware

import (
	"net/http"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
)

// RecordMetrics counts and times every request under its route template.
func RecordMetrics(m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			m.HTTPRequestsInFlight.Inc()
			defer m.HTTPRequestsInFlight.Dec()

			next.ServeHTTP(w, r)

			status := http.StatusOK
			if rep, ok := w.(statusReporter); ok {
				status = rep.Status()
			}

			route := metrics.Route(r.URL.Path)
			m.HTTPRequestsTotal.WithLabelValues(r.Method, route, metrics.StatusClass(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
