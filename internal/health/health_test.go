package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/health"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) PingContext(_ context.Context) error {
	return p.err
}

func TestHandler_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"up", nil, http.StatusOK, health.MsgOK},
		{"down", errors.New("connection refused"), http.StatusServiceUnavailable, health.MsgUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			health.NewHandler(&stubPinger{err: tc.err}).Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tc.code {
				t.Fatalf(message.FmtErrStatusCode, rec.Code, tc.code)
			}

			var res struct {
				Message string `json:"message"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatal(err)
			}
			if res.Message != tc.msg {
				t.Errorf("res.Message = %q, want: %q", res.Message, tc.msg)
			}
		})
	}
}
