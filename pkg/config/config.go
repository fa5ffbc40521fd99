package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr           string `conf:"default::8080,env:HTTP_ADDR"`
	RateLimitPerMinute int    `conf:"default:100,env:RATE_LIMIT_PER_MINUTE"`

	// Redis backs the Idempotency-Key store for order creation. Empty disables it.
	RedisURL       string        `conf:"env:REDIS_URL"`
	IdempotencyTTL time.Duration `conf:"default:24h,env:IDEMPOTENCY_TTL"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// CORS is applied in development only, and only when enabled.
	// CORSAllowedOrigins is a comma-separated list; * allows every origin.
	CORSEnabled        bool   `conf:"default:false,env:CORS_ENABLED"`
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:carbuilder,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// IsDevelopment reports whether the service runs with ENVIRONMENT=development.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.CORSEnabled {
		errs = append(errs, "CORS_ENABLED must be false in production (permissive CORS is development-only)")
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if cfg.RateLimitPerMinute <= 0 {
		errs = append(errs, "RATE_LIMIT_PER_MINUTE must be positive in production")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
