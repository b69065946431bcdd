package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/config"
)

const validConfig = `{
  "app": {"env": "development", "log_level": "debug"},
  "server": {"port": 8080, "read_timeout": "10s", "shutdown_timeout": "5s"},
  "db": {"driver": "pgx", "ping_timeout": "2s"},
  "jwt": {"jti_length": 8, "issuer": "booking-api", "ttl": "15m"},
  "argon2": {"memory": 1024, "iterations": 1, "threads": 1, "salt_length": 8, "key_length": 16},
  "kafka": {"brokers": ["localhost:9092"], "group_id": "g", "room_booked_topic": "rb", "user_registered_topic": "ur"},
  "mongo": {"database": "booking"}
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load(%q) = %v, want: %v", path, err, nil)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 8080)
	}

	if cfg.Server.ReadTimeout.Duration != 10*time.Second {
		t.Errorf("cfg.Server.ReadTimeout = %v, want: %v", cfg.Server.ReadTimeout.Duration, 10*time.Second)
	}

	if cfg.JWT.TTL.Duration != 15*time.Minute {
		t.Errorf("cfg.JWT.TTL = %v, want: %v", cfg.JWT.TTL.Duration, 15*time.Minute)
	}

	if cfg.Seed == nil || cfg.Seed.Enabled {
		t.Errorf("cfg.Seed = %+v, want: disabled", cfg.Seed)
	}

	if cfg.Stats == nil {
		t.Error("cfg.Stats = nil, want: non-nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, validConfig)

	t.Setenv("PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("SEED_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load(%q) = %v, want: %v", path, err, nil)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 9090)
	}

	wantBrokers := []string{"k1:9092", "k2:9092"}
	if !reflect.DeepEqual(cfg.Kafka.Brokers, wantBrokers) {
		t.Errorf("cfg.Kafka.Brokers = %v, want: %v", cfg.Kafka.Brokers, wantBrokers)
	}

	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("cfg.Mongo.URI = %q, want: %q", cfg.Mongo.URI, "mongodb://localhost:27017")
	}

	if !cfg.Seed.Enabled {
		t.Error("cfg.Seed.Enabled = false, want: true")
	}

	if cfg.App.LogLevel != "error" {
		t.Errorf("cfg.App.LogLevel = %q, want: %q", cfg.App.LogLevel, "error")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr error
	}{
		{"missing section", `{"app": {}}`, nil, config.ErrMissingSection},
		{"invalid json", `{`, nil, nil},
		{"invalid port", validConfig, map[string]string{"PORT": "abc"}, nil},
		{"invalid seed flag", validConfig, map[string]string{"SEED_ENABLED": "maybe"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(path)
			if err == nil {
				t.Fatalf("config.Load(%q) = nil, want: error", path)
			}

			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("config.Load(%q) = %v, want: %v", path, err, tc.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("config.Load(missing) = nil, want: error")
	}
}
