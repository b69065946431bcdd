package metrics

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "booking"

// Metrics holds the collectors registered on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	BookingsCreatedTotal prometheus.Counter
	UsersRegisteredTotal prometheus.Counter
	HotelVotesTotal      *prometheus.CounterVec
	EventsPublishedTotal *prometheus.CounterVec
	EventsConsumedTotal  *prometheus.CounterVec
	StatsExportsTotal    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being served.",
			},
		),
		BookingsCreatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_created_total",
				Help:      "Total number of bookings created.",
			},
		),
		UsersRegisteredTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "users_registered_total",
				Help:      "Total number of registered users.",
			},
		),
		HotelVotesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "hotel_votes_total",
				Help:      "Total number of hotel votes by mark.",
			},
			[]string{"mark"},
		),
		EventsPublishedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Total number of events sent to the broker.",
			},
			[]string{"topic", "result"},
		),
		EventsConsumedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_consumed_total",
				Help:      "Total number of events read from the broker.",
			},
			[]string{"topic", "result"},
		),
		StatsExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stats_exports_total",
				Help:      "Total number of statistics exports.",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
		m.HTTPRequestsTotal, m.HTTPRequestDuration, m.HTTPRequestsInFlight,
		m.BookingsCreatedTotal, m.UsersRegisteredTotal, m.HotelVotesTotal,
		m.EventsPublishedTotal, m.EventsConsumedTotal, m.StatsExportsTotal,
	)

	return m
}

// Handler serves the application and runtime metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RouteOther labels every path that matches none of the served routes.
const RouteOther = "other"

// routes lists the served templates. Keeping the label set closed bounds
// the number of series no matter which paths clients request.
var routes = splitRoutes(
	"/api/auth/login",
	"/api/user",
	"/api/user/{id}",
	"/api/hotel",
	"/api/hotel/{id}",
	"/api/hotel/{id}/vote/{mark}",
	"/api/room",
	"/api/room/{id}",
	"/api/booking",
	"/api/stats",
	"/api/docs",
	"/api/docs/openapi.yaml",
	"/api/docs/openapi.json",
	"/health",
	"/metrics",
)

type route struct {
	template string
	segments []string
}

func splitRoutes(templates ...string) []route {
	out := make([]route, 0, len(templates))
	for _, tmpl := range templates {
		out = append(out, route{template: tmpl, segments: strings.Split(strings.Trim(tmpl, "/"), "/")})
	}
	return out
}

// Route returns the template serving path, so /api/hotel/12 and
// /api/hotel/13 share the /api/hotel/{id} label. Unknown paths map to RouteOther.
func Route(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for _, rt := range routes {
		if rt.match(segments) {
			return rt.template
		}
	}
	return RouteOther
}

func (rt route) match(segments []string) bool {
	if len(segments) != len(rt.segments) {
		return false
	}
	for i, want := range rt.segments {
		if strings.HasPrefix(want, "{") {
			if _, err := strconv.ParseInt(segments[i], 10, 64); err != nil {
				return false
			}
			continue
		}
		if segments[i] != want {
			return false
		}
	}
	return true
}

// StatusClass maps 404 to "4xx".
func StatusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}
