package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tc := range tests {
		if got := logging.ParseLevel(tc.in); got != tc.want {
			t.Errorf("logging.ParseLevel(%q) = %v, want: %v", tc.in, got, tc.want)
		}
	}
}

func TestSetupLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger := logging.SetupLogger("production", "info", &buf)
	logger.Info("hello", "hotel_id", 1)
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want: %d", len(lines), 1)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("production log line is not json: %v", err)
	}

	if entry["service"] != logging.ServiceName {
		t.Errorf("entry[service] = %v, want: %v", entry["service"], logging.ServiceName)
	}
}
