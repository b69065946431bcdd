package middleware

import (
	"fmt"
	"net/http"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
)

// ContextGuard answers 408 instead of running the handler when the client
// has gone or the server is shutting down.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := ctx.Err(); err != nil {
			err = fmt.Errorf("%s %s request %s: %w", r.Method, r.URL.Path, web.RequestIDFromContext(ctx), err)
			web.RespondRequestTimeout(w, err, message.RequestTimeout, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
