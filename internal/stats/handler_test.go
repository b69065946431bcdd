package stats_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
	"github.com/TkachenkoRP/spring-booking/internal/stats"
)

func TestHandler_Export(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		query  string
		svcErr error
		code   int
		msg    string
	}{
		{"exported", "?pathToFolder=daily", nil, http.StatusNoContent, ""},
		{"missing folder", "", nil, http.StatusBadRequest, "Missing request parameter: pathToFolder!"},
		{"blank folder", "?pathToFolder=%20", nil, http.StatusBadRequest, "Missing request parameter: pathToFolder!"},
		{"mkdir failure", "?pathToFolder=daily", fmt.Errorf("%w exports/daily: denied", stats.ErrCreateDir), http.StatusBadRequest, "Failed to create directory: exports/daily"},
		{"escaping folder", "?pathToFolder=../etc", fmt.Errorf("%w: ../etc", stats.ErrOutsideBaseDir), http.StatusBadRequest, "Relative folder must stay inside the export directory: ../etc"},
		{"store failure", "?pathToFolder=daily", context.DeadlineExceeded, http.StatusInternalServerError, message.ServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &stats.StubExporter{
				ExportFunc: func(_ context.Context, folder string) (string, error) {
					if tc.svcErr != nil {
						return "", tc.svcErr
					}
					return "exports/" + folder, nil
				},
				DirFunc: func(folder string) string {
					return "exports/" + folder
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/api/stats"+tc.query, nil)
			rec := httptest.NewRecorder()
			stats.NewHandler(svc).Export(rec, req)

			if rec.Code != tc.code {
				t.Fatalf(message.FmtErrStatusCode, rec.Code, tc.code)
			}
			if tc.code == http.StatusNoContent {
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
