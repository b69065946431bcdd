package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, want string
	}{
		{"/api/hotel", "/api/hotel"},
		{"/api/hotel/12", "/api/hotel/{id}"},
		{"/api/hotel/12/vote/5", "/api/hotel/{id}/vote/{mark}"},
		{"/api/docs/openapi.json", "/api/docs/openapi.json"},
		{"/metrics", "/metrics"},
		{"/", metrics.RouteOther},
		{"/wp-admin/setup.php", metrics.RouteOther},
		{"/api/hotel/abc", metrics.RouteOther},
		{"/api/hotel/12/vote", metrics.RouteOther},
		{"/api/room/1/2", metrics.RouteOther},
	}

	for _, tc := range tests {
		if got := metrics.Route(tc.path); got != tc.want {
			t.Errorf("metrics.Route(%q) = %q, want: %q", tc.path, got, tc.want)
		}
	}
}

func TestStatusClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want string
	}{
		{http.StatusOK, "2xx"},
		{http.StatusNoContent, "2xx"},
		{http.StatusNotFound, "4xx"},
		{http.StatusInternalServerError, "5xx"},
	}

	for _, tc := range tests {
		if got := metrics.StatusClass(tc.code); got != tc.want {
			t.Errorf("metrics.StatusClass(%d) = %q, want: %q", tc.code, got, tc.want)
		}
	}
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.BookingsCreatedTotal.Inc()
	m.EventsPublishedTotal.WithLabelValues("room-booked", "success").Inc()
	m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/hotel/{id}", "2xx").Inc()

	if got := testutil.ToFloat64(m.BookingsCreatedTotal); got != 1 {
		t.Errorf("bookings_created_total = %v, want: %v", got, 1)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("rec.Code = %d, want: %d", rec.Code, http.StatusOK)
	}

	body := rec.Body.String()
	for _, name := range []string{"booking_bookings_created_total", "booking_events_published_total", "booking_http_requests_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output does not contain %q", name)
		}
	}
}
