package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the service.
type Config struct {
	// MongoDB
	MongoDBURI   string `env:"MONGODB_URI,required"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"campusHub"`

	// JWT
	JWTSecretKey   string        `env:"ACCESS_TOKEN_SECRET,required"`
	JWTIssuer      string        `env:"JWT_ISSUER" envDefault:"campushub-api"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`

	// Payment provider
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`

	// Redis event journal (optional; journal is disabled when unset)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// HTTP server
	ServerHost string `env:"SERVER_HOST" envDefault:""`
	ServerPort string `env:"PORT" envDefault:"5000"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load configuration from environment: " + err.Error())
	}

	if cfg.JWTSecretKey == "" {
		return nil, errors.New("access_token_secret is required")
	}
	if cfg.MongoDBURI == "" {
		return nil, errors.New("mongodb_uri is required")
	}
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = time.Hour
	}

	return cfg, nil
}

// JournalEnabled reports whether the Redis event journal should be wired.
func (c *Config) JournalEnabled() bool {
	return c.RedisAddr != ""
}
