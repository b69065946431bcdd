package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/auth"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
	"github.com/TkachenkoRP/spring-booking/internal/platform/jwt"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

var stubAuthn = &auth.StubService{
	AuthenticateFunc: func(_ context.Context, name, password string) (*auth.Principal, error) {
		switch {
		case name == "admin" && password == "111":
			return &auth.Principal{UserID: 1, Name: name, Roles: []user.Role{user.RoleAdmin}}, nil
		case name == "user" && password == "111":
			return &auth.Principal{UserID: 2, Name: name, Roles: []user.Role{user.RoleUser}}, nil
		default:
			return nil, auth.ErrInvalidCredentials
		}
	},
	VerifyTokenFunc: func(_ context.Context, token string) (*auth.Principal, error) {
		if token != "good" {
			return nil, jwt.ErrInvalidToken
		}
		return &auth.Principal{UserID: 2, Name: "user", Roles: []user.Role{user.RoleUser}}, nil
	},
}

func TestRequireAuthAndRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(r *http.Request)
		roles []user.Role
		code  int
		msg   string
	}{
		{"anonymous", func(_ *http.Request) {}, nil, http.StatusUnauthorized, message.Unauthorized},
		{"basic admin", func(r *http.Request) { r.SetBasicAuth("admin", "111") },
			[]user.Role{user.RoleAdmin}, http.StatusOK, ""},
		{"basic wrong password", func(r *http.Request) { r.SetBasicAuth("admin", "000") },
			nil, http.StatusUnauthorized, message.Unauthorized},
		{"basic user on admin route", func(r *http.Request) { r.SetBasicAuth("user", "111") },
			[]user.Role{user.RoleAdmin}, http.StatusForbidden, message.Forbidden},
		{"basic user on user route", func(r *http.Request) { r.SetBasicAuth("user", "111") },
			[]user.Role{user.RoleUser, user.RoleAdmin}, http.StatusOK, ""},
		{"bearer token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") },
			[]user.Role{user.RoleUser}, http.StatusOK, ""},
		{"bad bearer token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") },
			nil, http.StatusUnauthorized, message.Unauthorized},
		{"unknown scheme", func(r *http.Request) { r.Header.Set("Authorization", "Digest x") },
			nil, http.StatusUnauthorized, message.Unauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got *auth.Principal
			final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = auth.PrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			var h http.Handler = final
			if tc.roles != nil {
				h = auth.RequireRole(tc.roles...)(h)
			}
			h = auth.RequireAuth(stubAuthn)(h)

			req := httptest.NewRequest(http.MethodGet, "/api/hotel", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.code {
				t.Fatalf(message.FmtErrStatusCode, rec.Code, tc.code)
			}

			if tc.code == http.StatusOK {
				if got == nil {
					t.Error("principal missing from context")
				}
				return
			}

			var res web.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatal(err)
			}
			if res.Message != tc.msg {
				t.Errorf("res.Message = %q, want: %q", res.Message, tc.msg)
			}
		})
	}
}

func TestRequireRole_WithoutPrincipal(t *testing.T) {
	t.Parallel()

	h := auth.RequireRole(user.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusUnauthorized)
	}
}
