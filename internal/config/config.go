package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config holds all runtime settings, loaded from the environment with
// optional .env overrides. The only required decision is DATABASE_URL: a
// postgres:// URL selects the Postgres backend, anything else is treated as
// a SQLite file path.
type Config struct {
	Port        string `env:"PORT" default:"9091"`
	DatabaseURL string `env:"DATABASE_URL" default:"wellness.db"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" default:"0"`

	LogLevel string `env:"LOG_LEVEL" default:"info"`

	DigestSchedule  string        `env:"DIGEST_SCHEDULE" default:"0 6 * * *"`
	SummaryCacheTTL time.Duration `env:"SUMMARY_CACHE_TTL" default:"5m"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	return &cfg, nil
}

// IsPostgres reports whether DATABASE_URL points at a Postgres server rather
// than a local SQLite file.
func (c *Config) IsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}
