package middleware

import (
	"net/http"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
	"github.com/google/uuid"
)

const maxRequestIDLen = 64

// RequestID reuses the caller's X-Request-ID or generates a new one,
// echoes it in the response and stores it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(web.HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		w.Header().Set(web.HeaderRequestID, id)
		ctx := web.NewContextWithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
