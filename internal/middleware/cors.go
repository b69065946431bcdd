package middleware

import (
	"net/http"
)

const (
	HeaderAllowOrigin   = "Access-Control-Allow-Origin"
	HeaderAllowMethods  = "Access-Control-Allow-Methods"
	HeaderAllowHeaders  = "Access-Control-Allow-Headers"
	HeaderExposeHeaders = "Access-Control-Expose-Headers"
	HeaderVary          = "Vary"

	AllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	AllowedHeaders = "Content-Type, Authorization, X-Request-ID"
)

// CORS allows the given origin, or any origin when it is "*".
func CORS(origin string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderAllowOrigin, origin)
			h.Set(HeaderAllowMethods, AllowedMethods)
			h.Set(HeaderAllowHeaders, AllowedHeaders)
			h.Set(HeaderExposeHeaders, "X-Request-ID")
			if origin != "*" {
				h.Add(HeaderVary, "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
