package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Session   SessionConfig
	Reporting ReportingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port         string
	TemplateGlob string
	StaticDir    string
}

// BackendConfig points at the inventory REST API this frontend consumes.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig carries the securecookie keys protecting the session cookie.
type SessionConfig struct {
	CookieName string
	HashKey    string
	BlockKey   string
	Secure     bool
}

// ReportingConfig holds the optional scheduled-snapshot settings. The job is
// disabled when Username is empty.
type ReportingConfig struct {
	CronSchedule string
	OutputDir    string
	Username     string
	Password     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	timeout, err := time.ParseDuration(getenvWithDefault("BACKEND_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getenvWithDefault("APP_PORT", "8080"),
			TemplateGlob: getenvWithDefault("TEMPLATE_GLOB", "web/templates/*.html"),
			StaticDir:    getenvWithDefault("STATIC_DIR", "web/static"),
		},
		Backend: BackendConfig{
			BaseURL: getenvWithDefault("BACKEND_BASE_URL", "http://localhost:3000/api"),
			Timeout: timeout,
		},
		Session: SessionConfig{
			CookieName: getenvWithDefault("SESSION_COOKIE_NAME", "c4_session"),
			HashKey:    os.Getenv("SESSION_HASH_KEY"),
			BlockKey:   os.Getenv("SESSION_BLOCK_KEY"),
			Secure:     os.Getenv("SESSION_COOKIE_SECURE") == "true",
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("SNAPSHOT_CRON_SCHEDULE", "0 22 * * *"),
			OutputDir:    getenvWithDefault("SNAPSHOT_OUTPUT_DIR", "reports"),
			Username:     os.Getenv("SNAPSHOT_USERNAME"),
			Password:     os.Getenv("SNAPSHOT_PASSWORD"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL must be provided")
	}

	// securecookie wants 32/64 byte hash keys and 16/24/32 byte block keys.
	switch len(c.Session.HashKey) {
	case 32, 64:
	default:
		return errors.New("SESSION_HASH_KEY must be 32 or 64 bytes")
	}

	switch len(c.Session.BlockKey) {
	case 16, 24, 32:
	default:
		return errors.New("SESSION_BLOCK_KEY must be 16, 24 or 32 bytes")
	}

	if c.Reporting.Username != "" {
		if c.Reporting.CronSchedule == "" {
			return errors.New("SNAPSHOT_CRON_SCHEDULE must be provided")
		}
		if c.Reporting.Password == "" {
			return errors.New("SNAPSHOT_PASSWORD must be provided")
		}
		if c.Reporting.OutputDir == "" {
			return errors.New("SNAPSHOT_OUTPUT_DIR must be provided")
		}
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
