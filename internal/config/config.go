package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
)

type App struct {
	Env      string `json:"env,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}

type Server struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

type JWT struct {
	JTILength uint32         `json:"jti_length,omitempty"`
	Issuer    string         `json:"issuer,omitempty"`
	TTL       timex.Duration `json:"ttl,omitempty"`
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

type Kafka struct {
	Brokers             []string       `json:"brokers,omitempty"`
	GroupID             string         `json:"group_id,omitempty"`
	RoomBookedTopic     string         `json:"room_booked_topic,omitempty"`
	UserRegisteredTopic string         `json:"user_registered_topic,omitempty"`
	WriteTimeout        timex.Duration `json:"write_timeout,omitempty"`
}

type Mongo struct {
	URI            string         `json:"-"`
	Database       string         `json:"database,omitempty"`
	ConnectTimeout timex.Duration `json:"connect_timeout,omitempty"`
}

func (m *Mongo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("uri", "*"),
		slog.String("database", m.Database),
		slog.Duration("connect_timeout", m.ConnectTimeout.Duration),
	)
}

type Seed struct {
	Enabled bool `json:"enabled,omitempty"`
}

type Stats struct {
	BaseDir string `json:"base_dir,omitempty"`
}

type Config struct {
	App    *App    `json:"app,omitempty"`
	Server *Server `json:"server,omitempty"`
	DB     *DB     `json:"db,omitempty"`
	JWT    *JWT    `json:"jwt,omitempty"`
	Argon2 *Argon2 `json:"argon2,omitempty"`
	Kafka  *Kafka  `json:"kafka,omitempty"`
	Mongo  *Mongo  `json:"mongo,omitempty"`
	Seed   *Seed   `json:"seed,omitempty"`
	Stats  *Stats  `json:"stats,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("jwt", c.JWT),
		slog.Any("argon2", c.Argon2),
		slog.Any("kafka", c.Kafka),
		slog.Any("mongo", c.Mongo),
		slog.Any("seed", c.Seed),
		slog.Any("stats", c.Stats),
	)
}

var ErrMissingSection = errors.New("config: missing section")

// Load reads the json config file and applies the environment overrides.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	sections := []struct {
		name    string
		missing bool
	}{
		{"app", c.App == nil},
		{"server", c.Server == nil},
		{"db", c.DB == nil},
		{"jwt", c.JWT == nil},
		{"argon2", c.Argon2 == nil},
		{"kafka", c.Kafka == nil},
		{"mongo", c.Mongo == nil},
	}
	for _, s := range sections {
		if s.missing {
			return fmt.Errorf("%w: %s", ErrMissingSection, s.name)
		}
	}

	if c.Seed == nil {
		c.Seed = &Seed{}
	}
	if c.Stats == nil {
		c.Stats = &Stats{}
	}
	return nil
}

func overrideWithEnv(cfg *Config) error {
	if appEnv, ok := os.LookupEnv("ENV"); ok {
		cfg.App.Env = appEnv
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.App.LogLevel = level
	}

	if url, ok := os.LookupEnv("URL"); ok {
		cfg.Server.URL = url
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}

	if brokers, ok := os.LookupEnv("KAFKA_BROKERS"); ok {
		cfg.Kafka.Brokers = splitList(brokers)
	}

	if uri, ok := os.LookupEnv("MONGO_URI"); ok {
		cfg.Mongo.URI = uri
	}

	if seed, ok := os.LookupEnv("SEED_ENABLED"); ok {
		enabled, err := strconv.ParseBool(seed)
		if err != nil {
			return fmt.Errorf("parse SEED_ENABLED %q: %w", seed, err)
		}
		cfg.Seed.Enabled = enabled
	}

	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
