package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultHTMXURL = "https://unpkg.com/htmx.org@1.9.12"

type Config struct {
	AppEnv   string
	HTTPAddr string

	Session SessionConfig
	Log     LogConfig
	Metrics MetricsConfig

	// HTMXURL is the script loaded by every page for live field updates.
	// Empty disables it; forms still work with full page posts.
	HTMXURL string
}

type SessionConfig struct {
	// Secret signs session cookies. Outside prod a random one is generated
	// per process, so restarting drops every session.
	Secret       string
	TTL          time.Duration
	CookieName   string
	MaxSessions  int64
	SecureCookie bool
}

type LogConfig struct {
	Level  string
	Format string // text or json
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	// Cloud Run sets PORT. Prefer it when HTTP_ADDR isn't explicitly set.
	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8081"
		}
	}

	appEnv := env("APP_ENV", "dev")

	cfg := Config{
		AppEnv:   appEnv,
		HTTPAddr: httpAddr,
		Session: SessionConfig{
			Secret:       os.Getenv("SESSION_SECRET"),
			TTL:          envDuration("SESSION_TTL", 12*time.Hour),
			CookieName:   env("SESSION_COOKIE", "rd_session"),
			MaxSessions:  envInt("SESSION_MAX", 10000),
			SecureCookie: envBool("SESSION_SECURE_COOKIE", appEnv == "prod"),
		},
		Log: LogConfig{
			Level:  env("LOG_LEVEL", "info"),
			Format: env("LOG_FORMAT", "text"),
		},
		Metrics: MetricsConfig{
			Enabled: envBool("METRICS_ENABLED", true),
			Path:    env("METRICS_PATH", "/metrics"),
		},
		HTMXURL: envAllowEmpty("HTMX_URL", defaultHTMXURL),
	}
	if cfg.Session.Secret == "" && !cfg.IsProd() {
		cfg.Session.Secret = randomSecret()
	}
	return cfg
}

func (c Config) IsProd() bool {
	return c.AppEnv == "prod"
}

func (c Config) Validate() error {
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required when APP_ENV=%s", c.AppEnv)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Log.Format)
	}
	if c.Metrics.Enabled && (c.Metrics.Path == "" || c.Metrics.Path[0] != '/') {
		return fmt.Errorf("METRICS_PATH must start with /, got %q", c.Metrics.Path)
	}
	return nil
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// envAllowEmpty distinguishes an unset key from one set to "".
func envAllowEmpty(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int64) int64 {
	n, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return d
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("session secret: %v", err))
	}
	return hex.EncodeToString(b)
}
