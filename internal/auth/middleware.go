package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/security"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
	"github.com/TkachenkoRP/spring-booking/internal/platform/jwt"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

var ErrForbidden = errors.New("insufficient role")

type Authenticator interface {
	Authenticate(ctx context.Context, name, password string) (*Principal, error)
	VerifyToken(ctx context.Context, token string) (*Principal, error)
}

// RequireAuth resolves the principal from HTTP Basic credentials or a bearer token.
func RequireAuth(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := principal(r, authn)
			if err != nil {
				if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, jwt.ErrInvalidToken) ||
					errors.Is(err, security.ErrMissingAuthHeader) || errors.Is(err, security.ErrUnsupportedScheme) {
					w.Header().Set("WWW-Authenticate", `Basic realm="booking"`)
					web.RespondUnauthorized(w, err, message.Unauthorized, nil)
					return
				}
				web.RespondInternalServerError(w, err)
				return
			}

			ctx := ContextWithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func principal(r *http.Request, authn Authenticator) (*Principal, error) {
	scheme, err := security.AuthScheme(r)
	if err != nil {
		return nil, err
	}

	if scheme == security.SchemeBasic {
		name, password, err := security.ExtractBasicCredentials(r)
		if err != nil {
			return nil, errors.Join(ErrInvalidCredentials, err)
		}
		return authn.Authenticate(r.Context(), name, password)
	}

	token, err := security.ExtractBearerToken(r)
	if err != nil || token == "" {
		return nil, errors.Join(jwt.ErrInvalidToken, err)
	}
	return authn.VerifyToken(r.Context(), token)
}

// RequireRole answers 403 unless the principal holds one of roles.
// It must run after RequireAuth.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := PrincipalFromContext(r.Context())
			if err != nil {
				web.RespondUnauthorized(w, err, message.Unauthorized, nil)
				return
			}

			if !p.HasAnyRole(roles...) {
				web.RespondForbidden(w, ErrForbidden, message.Forbidden, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
