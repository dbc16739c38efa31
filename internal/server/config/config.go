// Package config loads the chat server configuration.
// Values come from the environment first, command-line flags override them.
package config

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/iudanet/gophchat/internal/validation"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	HTTPAddr       string `env:"HTTP_ADDR,       default=:8080"`
	StorageBackend string `env:"STORAGE_BACKEND, default=file"   validate:"oneof=file sqlite redis memory"`
	DataDir        string `env:"DATA_DIR,        default=./data"`
	SQLitePath     string `env:"SQLITE_PATH"`
	LogLevel       string `env:"LOG_LEVEL,       default=info"   validate:"oneof=debug info warn error"`
	LogFormat      string `env:"LOG_FORMAT,      default=text"   validate:"oneof=text json"`
	CORSOrigin     string `env:"CORS_ORIGIN,     default=*"`

	Redis     RedisConfig
	Retention RetentionConfig
	RateLimit RateLimitConfig

	// ShowVersion задается только флагом -version
	ShowVersion bool
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	Prefix   string `env:"REDIS_PREFIX,   default=gophchat"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type RetentionConfig struct {
	Cap  int `env:"LOG_CAP,  default=100"`
	Keep int `env:"LOG_KEEP, default=50"`
}

type RateLimitConfig struct {
	// Auth запросов register/login с одного IP за Window
	Auth   int           `env:"RATE_LIMIT_AUTH,   default=20"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=1m"`
}

// Load reads configuration from the process environment and args.
func Load(ctx context.Context, args []string) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper(), args)
}

// LoadWith reads configuration from lookuper and args.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper, args []string) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	fs := flag.NewFlagSet("gophchat-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "storage backend: file, sqlite, redis or memory")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for file and sqlite storage")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version information")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(cfg.DataDir, "gophchat.db")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Retention.Keep <= 0 || c.Retention.Keep >= c.Retention.Cap {
		return fmt.Errorf("invalid config: LOG_KEEP must be in (0, LOG_CAP), got keep=%d cap=%d",
			c.Retention.Keep, c.Retention.Cap)
	}
	if c.RateLimit.Auth <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid config: rate limit must be positive, got %d per %s",
			c.RateLimit.Auth, c.RateLimit.Window)
	}
	return nil
}

// Level возвращает уровень slog
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger создает логгер по LOG_FORMAT и LOG_LEVEL
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
