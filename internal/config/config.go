package config

import (
	"fmt"
	"net"
	"time"

	pkgconfig "github.com/Jinxhater/LUXE/pkg/config"
)

// Session store backends.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds all configuration for the storefront.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"STOREFRONT_HTTP_PORT" envDefault:"8080"`

	// Sessions
	SessionStore      string `env:"SESSION_STORE" envDefault:"memory"`
	SessionTTLHours   int    `env:"SESSION_TTL_HOURS" envDefault:"168"`
	SessionCookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session"`

	// Redis, used when SessionStore is "redis"
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Kafka
	KafkaEnabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Seeded admin account
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@luxe.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Per-IP limit on /api/auth; 0 disables it.
	AuthRateLimitRPS   float64 `env:"AUTH_RATE_LIMIT_RPS" envDefault:"5"`
	AuthRateLimitBurst int     `env:"AUTH_RATE_LIMIT_BURST" envDefault:"10"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	PprofAllowedCIDRs  []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.1/32,::1/128" envSeparator:","`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration invariants. It runs as part of Load.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.SessionStore != SessionStoreMemory && c.SessionStore != SessionStoreRedis {
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStoreMemory, SessionStoreRedis, c.SessionStore)
	}
	if c.SessionTTLHours < 1 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTLHours)
	}
	if c.SessionCookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME is required")
	}
	if c.SessionStore == SessionStoreRedis && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when SESSION_STORE=redis")
	}
	if c.KafkaEnabled && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
	}
	// bcrypt.MinCost and bcrypt.MaxCost
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost)
	}
	if c.AuthRateLimitRPS < 0 || c.AuthRateLimitBurst < 0 {
		return fmt.Errorf("AUTH_RATE_LIMIT_RPS and AUTH_RATE_LIMIT_BURST must not be negative")
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %v", c.OTELSampleRate)
	}
	for _, cidr := range c.PprofAllowedCIDRs {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("invalid PPROF_ALLOWED_CIDRS entry %q: %w", cidr, err)
		}
	}
	return nil
}

// IsProduction reports whether the storefront runs in production, which
// marks the session cookie Secure and restricts CORS to the allowed origins.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SessionTTL returns the session lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}
