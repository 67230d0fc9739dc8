package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends
const (
	BackendMemory   = "memory"
	BackendBolt     = "bolt"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Change feeds
const (
	FeedNoop     = "noop"
	FeedLocal    = "local"
	FeedRedis    = "redis"
	FeedPostgres = "postgres"
	FeedKafka    = "kafka"
)

type Config struct {
	App    AppConfig
	Store  StoreConfig
	Feed   FeedConfig
	JWT    JWTConfig
	Gemini GeminiConfig
	Seed   SeedConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int      `env:"APP_PORT" envDefault:"8080"`
	Env            string   `env:"APP_ENV" envDefault:"development"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	Timezone       string   `env:"APP_TIMEZONE" envDefault:"UTC"`
	LatencyScale   float64  `env:"SIMULATED_LATENCY_SCALE" envDefault:"0"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`

	// login attempts per minute per client IP
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
	LoginRateBurst int `env:"LOGIN_RATE_BURST" envDefault:"5"`
}

type StoreConfig struct {
	Backend    string `env:"STORE_BACKEND" envDefault:"memory"`
	Namespace  string `env:"STORE_NAMESPACE" envDefault:"nexus_"`
	BoltPath   string `env:"STORE_BOLT_PATH" envDefault:"nexus.db"`
	SQLitePath string `env:"STORE_SQLITE_PATH" envDefault:"nexus.sqlite"`

	Redis    RedisConfig
	Postgres DatabaseConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"nexus-office"`
	SSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`
}

// DSN builds a postgres connection URL
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

type FeedConfig struct {
	Kind         string   `env:"FEED_KIND" envDefault:"local"`
	Channel      string   `env:"FEED_CHANNEL" envDefault:"nexus_changes"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"nexus-changes"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string `env:"JWT_SECRET_KEY"`
	AccessExpiration string `env:"JWT_ACCESS_EXPIRATION_TIME" envDefault:"1h"`
}

type GeminiConfig struct {
	APIKey      string `env:"GEMINI_API_KEY"`
	AccessToken string `env:"GEMINI_ACCESS_TOKEN"`
	Model       string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Endpoint    string `env:"GEMINI_ENDPOINT"`
}

type SeedConfig struct {
	Enabled       bool   `env:"SEED_ENABLED" envDefault:"true"`
	ExcludeUserID string `env:"SEED_EXCLUDE_USER_ID" envDefault:"u2"`

	// how often a running server checks whether the new day needs seeding
	Interval time.Duration `env:"SEED_INTERVAL" envDefault:"1h"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required"))
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		errs = append(errs, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err))
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid APP_TIMEZONE: %w", err))
	}
	if c.App.LatencyScale < 0 {
		errs = append(errs, errors.New("SIMULATED_LATENCY_SCALE must not be negative"))
	}
	if c.App.LoginRateLimit <= 0 || c.App.LoginRateBurst <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_LIMIT and LOGIN_RATE_BURST must be positive"))
	}
	if c.Seed.Enabled && c.Seed.Interval <= 0 {
		errs = append(errs, errors.New("SEED_INTERVAL must be positive"))
	}
	if strings.TrimSpace(c.Store.Namespace) == "" {
		errs = append(errs, errors.New("STORE_NAMESPACE is required"))
	}

	switch c.Store.Backend {
	case BackendMemory:
	case BackendBolt:
		if c.Store.BoltPath == "" {
			errs = append(errs, errors.New("STORE_BOLT_PATH is required for the bolt backend"))
		}
	case BackendSQLite:
		if c.Store.SQLitePath == "" {
			errs = append(errs, errors.New("STORE_SQLITE_PATH is required for the sqlite backend"))
		}
	case BackendRedis:
		if c.Store.Redis.Addr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis backend"))
		}
	case BackendPostgres:
		if c.Store.Postgres.Password == "" {
			errs = append(errs, errors.New("DB_PASSWORD is required for the postgres backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend))
	}

	switch c.Feed.Kind {
	case FeedNoop, FeedLocal:
	case FeedRedis:
		if c.Store.Backend != BackendRedis {
			errs = append(errs, errors.New("FEED_KIND=redis requires STORE_BACKEND=redis"))
		}
	case FeedPostgres:
		if c.Store.Backend != BackendPostgres {
			errs = append(errs, errors.New("FEED_KIND=postgres requires STORE_BACKEND=postgres"))
		}
	case FeedKafka:
		if len(c.Feed.KafkaBrokers) == 0 {
			errs = append(errs, errors.New("KAFKA_BROKERS is required for the kafka feed"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown FEED_KIND %q", c.Feed.Kind))
	}

	return errors.Join(errs...)
}

// Location is the office time zone. Validate has already checked it.
func (a AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (a AppConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
