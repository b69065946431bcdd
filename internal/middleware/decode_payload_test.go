package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/middleware"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
)

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	const header = "X-Handler-Called"

	type hotel struct {
		Name     string  `json:"name"`
		Distance float64 `json:"distanceFromCityCenter"`
	}

	tests := []struct {
		name     string
		code     int
		payload  []byte
		bodySize int64
		header   string
	}{
		{"Valid payload", http.StatusOK, []byte(`{"name":"Hotel_1","distanceFromCityCenter":2.5}`), 64, "true"},
		{"Payload too large", http.StatusRequestEntityTooLarge, []byte(`{"name": "Hotel_1", "distanceFromCityCenter": 2.5}`), 4, ""},
		{"Unknown field", http.StatusUnprocessableEntity, []byte(`{"name": "Hotel_1", "stars": 5}`), 64, ""},
		{"Extra payload", http.StatusBadRequest, []byte(`{"name": "Hotel_1"}{"name": "Hotel_2"}`), 64, ""},
		{"Incorrect data type", http.StatusBadRequest, []byte(`{"name": "Hotel_1", "distanceFromCityCenter": "far"}`), 64, ""},
		{"Malformed payload", http.StatusBadRequest, []byte(`{"name"`), 64, ""},
		{"Empty body", http.StatusBadRequest, []byte(``), 64, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[hotel](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}

				w.Header().Set(header, "true")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(&params)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/hotel", bytes.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			middleware.DecodePayload[hotel](tt.bodySize)(handler).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.code)
			}

			if got := rec.Header().Get(header); got != tt.header {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, got, tt.header)
			}

			gotBody := strings.TrimSuffix(rec.Body.String(), "\n")
			if tt.header == "true" && gotBody != string(tt.payload) {
				t.Errorf("rec.Body.String() = %q, want: %q", gotBody, string(tt.payload))
			}
		})
	}
}

func TestDecodePayload_UnknownFieldDetails(t *testing.T) {
	t.Parallel()

	type room struct {
		Name string `json:"name"`
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/room", strings.NewReader(`{"name":"r","floor":2}`))
	rec := httptest.NewRecorder()
	middleware.DecodePayload[room](1024)(handler).ServeHTTP(rec, req)

	var res web.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}

	if res.Errors["field"] != "floor" {
		t.Errorf("res.Errors[field] = %q, want: %q", res.Errors["field"], "floor")
	}
}

func TestDecodePayload_ErrorMessages(t *testing.T) {
	t.Parallel()

	type booking struct {
		ArrivalDate timex.Date `json:"arrivalDate"`
		RoomID      int64      `json:"roomId"`
	}

	tests := []struct {
		name    string
		payload string
		code    int
		msg     string
		field   string
	}{
		{"Malformed date", `{"arrivalDate":"01.02.2030","roomId":1}`, http.StatusBadRequest, message.DateInputError, ""},
		{"Date as number", `{"arrivalDate":20300201,"roomId":1}`, http.StatusBadRequest, message.DateInputError, ""},
		{"Room id as string", `{"arrivalDate":"2030-02-01","roomId":"one"}`, http.StatusBadRequest, message.InvalidInput, "roomId"},
		{"Trailing value", `{"roomId":1} []`, http.StatusBadRequest, message.InvalidInput, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(tc.payload))
			rec := httptest.NewRecorder()
			middleware.DecodePayload[booking](1024)(handler).ServeHTTP(rec, req)

			if rec.Code != tc.code {
				t.Fatalf(message.FmtErrStatusCode, rec.Code, tc.code)
			}

			var res web.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatal(err)
			}
			if res.Message != tc.msg {
				t.Errorf("res.Message = %q, want: %q", res.Message, tc.msg)
			}
			if res.Errors["field"] != tc.field {
				t.Errorf("res.Errors[field] = %q, want: %q", res.Errors["field"], tc.field)
			}
		})
	}
}
