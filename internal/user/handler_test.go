package user_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/model"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

func TestHandler_Create(t *testing.T) {
	t.Parallel()

	now := time.Now().Truncate(0)
	params := user.UpsertRequest{Name: "User_1", Password: "111", Email: "mail_1@example.com"}

	tests := []struct {
		name       string
		query      string
		createFunc func(ctx context.Context, creds user.Credentials, roleType string) (*user.User, error)
		code       int
		msg        string
	}{
		{"Created admin", "?roleType=ROLE_ADMIN",
			func(_ context.Context, creds user.Credentials, roleType string) (*user.User, error) {
				return &user.User{
					Model: model.Model{ID: 1, CreatedAt: now, UpdatedAt: now},
					Name:  creds.Name, Email: creds.Email, Roles: []user.Role{user.Role(roleType)},
				}, nil
			},
			http.StatusCreated, user.MsgCreated,
		},
		{"Missing role", "", nil, http.StatusBadRequest, "Missing request parameter: roleType!"},
		{"Unknown role", "?roleType=ROLE_ROOT",
			func(_ context.Context, _ user.Credentials, roleType string) (*user.User, error) {
				return nil, fmt.Errorf("create user: %w: %q", user.ErrInvalidRole, roleType)
			},
			http.StatusBadRequest, "Invalid role value: ROLE_ROOT!",
		},
		{"Duplicate user", "?roleType=ROLE_USER",
			func(_ context.Context, _ user.Credentials, _ string) (*user.User, error) {
				return nil, user.ErrDuplicate
			},
			http.StatusBadRequest, "User with name User_1 and/or email mail_1@example.com is already registered!",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := user.NewHandler(&user.StubService{CreateFunc: tc.createFunc})

			paramsCtx := web.NewContextWithParams(context.Background(), params)
			req := httptest.NewRequestWithContext(paramsCtx, http.MethodPost, "/api/user"+tc.query, nil)
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != tc.code {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tc.code)
			}

			if tc.code != http.StatusCreated {
				var res web.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
					t.Fatal(err)
				}
				if tc.msg != "" && res.Message != tc.msg {
					t.Errorf("res.Message = %q, want: %q", res.Message, tc.msg)
				}
				return
			}

			var res web.OKResponse[user.Response]
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatal(err)
			}

			want := user.Response{ID: 1, Name: params.Name, Email: params.Email, CreateAt: now}
			if res.Data.ID != want.ID || res.Data.Name != want.Name || !res.Data.CreateAt.Equal(want.CreateAt) {
				t.Errorf("res.Data = %+v, want: %+v", res.Data, want)
			}
		})
	}
}

func TestHandler_Find(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		code int
		msg  string
	}{
		{"Existing user", "1", http.StatusOK, ""},
		{"Missing user", "42", http.StatusNotFound, "User with ID 42 not found!"},
		{"Malformed id", "abc", http.StatusBadRequest, message.InvalidInput},
	}

	svc := &user.StubService{
		FindFunc: func(_ context.Context, userID int64) (*user.User, error) {
			if userID != 1 {
				return nil, user.ErrNotFound
			}
			return &user.User{Model: model.Model{ID: 1}, Name: "User_1"}, nil
		},
	}
	h := user.NewHandler(svc)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/user/"+tc.id, nil)
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()
			h.Find(rec, req)

			if rec.Code != tc.code {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tc.code)
			}

			if tc.msg == "" {
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

func TestHandler_List(t *testing.T) {
	t.Parallel()

	svc := &user.StubService{
		ListFunc: func(_ context.Context) ([]user.User, error) {
			return []user.User{
				{Model: model.Model{ID: 1}, Name: "User_1"},
				{Model: model.Model{ID: 2}, Name: "User_2"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rec := httptest.NewRecorder()
	user.NewHandler(svc).List(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusOK)
	}

	var res web.OKResponse[user.ListResponse]
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}

	if len(res.Data.Users) != 2 {
		t.Errorf("len(res.Data.Users) = %d, want: %d", len(res.Data.Users), 2)
	}
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()

	var deleted int64
	svc := &user.StubService{
		DeleteFunc: func(_ context.Context, userID int64) error {
			deleted = userID
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/user/3", nil)
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()
	user.NewHandler(svc).Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusNoContent)
	}

	if deleted != 3 {
		t.Errorf("deleted = %d, want: %d", deleted, 3)
	}
}
