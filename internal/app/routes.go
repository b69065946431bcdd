package app

import (
	"net/http"

	"github.com/TkachenkoRP/spring-booking/internal/auth"
	"github.com/TkachenkoRP/spring-booking/internal/booking"
	"github.com/TkachenkoRP/spring-booking/internal/docs"
	"github.com/TkachenkoRP/spring-booking/internal/health"
	"github.com/TkachenkoRP/spring-booking/internal/hotel"
	"github.com/TkachenkoRP/spring-booking/internal/middleware"
	"github.com/TkachenkoRP/spring-booking/internal/platform/router"
	"github.com/TkachenkoRP/spring-booking/internal/platform/validation"
	"github.com/TkachenkoRP/spring-booking/internal/room"
	"github.com/TkachenkoRP/spring-booking/internal/stats"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

// guards holds the access rules shared by the route groups.
type guards struct {
	authenticated router.Middleware
	admin         router.Middleware
	validator     validation.Validator
	maxBodySize   int64
}

func newGuards(authn auth.Authenticator, validator validation.Validator, maxBodySize int64) *guards {
	return &guards{
		authenticated: auth.RequireAuth(authn),
		admin:         auth.RequireRole(user.RoleAdmin),
		validator:     validator,
		maxBodySize:   maxBodySize,
	}
}

// adminOnly authenticates the caller and requires ROLE_ADMIN.
func (g *guards) adminOnly(mws ...router.Middleware) []router.Middleware {
	return append([]router.Middleware{g.authenticated, g.admin}, mws...)
}

func (g *guards) anyUser(mws ...router.Middleware) []router.Middleware {
	return append([]router.Middleware{g.authenticated}, mws...)
}

func payload[T any](g *guards) []router.Middleware {
	return []router.Middleware{
		middleware.DecodePayload[T](g.maxBodySize),
		middleware.ValidateInput[T](g.validator),
	}
}

func mountAuthRoutes(r router.Router, handler *auth.Handler, g *guards) {
	r.Post("/api/auth/login", handler.Login, payload[auth.LoginRequest](g)...)
}

func mountUserRoutes(r router.Router, handler *user.Handler, g *guards) {
	r.Post("/api/user", handler.Create, payload[user.UpsertRequest](g)...)
	r.Get("/api/user", handler.List, g.adminOnly()...)
	r.Get("/api/user/{id}", handler.Find, g.adminOnly()...)
	r.Put("/api/user/{id}", handler.Update, g.adminOnly(payload[user.UpsertRequest](g)...)...)
	r.Delete("/api/user/{id}", handler.Delete, g.adminOnly()...)
}

func mountHotelRoutes(r router.Router, handler *hotel.Handler, g *guards) {
	r.Get("/api/hotel", handler.List, g.anyUser()...)
	r.Get("/api/hotel/{id}", handler.Find, g.anyUser()...)
	r.Put("/api/hotel/{id}/vote/{mark}", handler.Vote, g.anyUser()...)
	r.Post("/api/hotel", handler.Create, g.adminOnly(payload[hotel.UpsertRequest](g)...)...)
	r.Put("/api/hotel/{id}", handler.Update, g.adminOnly(payload[hotel.UpsertRequest](g)...)...)
	r.Delete("/api/hotel/{id}", handler.Delete, g.adminOnly()...)
}

func mountRoomRoutes(r router.Router, handler *room.Handler, g *guards) {
	r.Get("/api/room", handler.List, g.anyUser()...)
	r.Get("/api/room/{id}", handler.Find, g.anyUser()...)
	r.Post("/api/room", handler.Create, g.adminOnly(payload[room.UpsertRequest](g)...)...)
	r.Put("/api/room/{id}", handler.Update, g.adminOnly(payload[room.UpsertRequest](g)...)...)
	r.Delete("/api/room/{id}", handler.Delete, g.adminOnly()...)
}

func mountBookingRoutes(r router.Router, handler *booking.Handler, g *guards) {
	r.Get("/api/booking", handler.List, g.adminOnly()...)
	r.Post("/api/booking", handler.Create, g.anyUser(payload[booking.CreateRequest](g)...)...)
}

func mountStatsRoutes(r router.Router, handler *stats.Handler, g *guards) {
	r.Get("/api/stats", handler.Export, g.adminOnly()...)
}

func mountOpsRoutes(r router.Router, docsHandler *docs.Handler, healthHandler *health.Handler, metricsHandler http.Handler) {
	r.Get("/api/docs", docsHandler.JSON)
	r.Get("/api/docs/openapi.yaml", docsHandler.YAML)
	r.Get("/api/docs/openapi.json", docsHandler.JSON)
	r.Get("/health", healthHandler.Check)
	r.Get("/metrics", metricsHandler.ServeHTTP)
}
