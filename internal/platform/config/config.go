// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. POSTGRES_DSN is optional: when
// empty the key-value store is disabled and the engine runs stateless, with
// no cache and no history.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"local"`
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8081"`
	HealthPort  int    `env:"HEALTH_PORT" envDefault:"8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	// Engine behavior.
	CacheTTL            time.Duration `env:"CACHE_TTL" envDefault:"3600s"`
	HistoryTTLFactor    int           `env:"HISTORY_TTL_FACTOR" envDefault:"24"`
	StoreTimeout        time.Duration `env:"STORE_TIMEOUT" envDefault:"2s"`
	MaxTextLength       int           `env:"MAX_TEXT_LENGTH" envDefault:"5000"`
	HistoryDefaultLimit int           `env:"HISTORY_DEFAULT_LIMIT" envDefault:"50"`
	StatsDefaultDays    int           `env:"STATS_DEFAULT_DAYS" envDefault:"7"`
	StatsFetchLimit     int           `env:"STATS_FETCH_LIMIT" envDefault:"1000"`

	// HTTP API rate limiting.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// Store maintenance.
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`

	// Database pool tuning.
	DBMaxConnections    int32         `env:"DB_MAX_CONNECTIONS" envDefault:"4"`
	DBMinConnections    int32         `env:"DB_MIN_CONNECTIONS" envDefault:"0"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
}

// StoreEnabled reports whether a key-value store is configured.
func (c *Config) StoreEnabled() bool {
	return c.PostgresDSN != ""
}

// HistoryTTL is the retention for history entries. History must outlive
// cache entries so statistics keep working after cached results expire.
func (c *Config) HistoryTTL() time.Duration {
	factor := c.HistoryTTLFactor
	if factor < 1 {
		factor = 1
	}

	return c.CacheTTL * time.Duration(factor)
}

// Load reads configuration from the environment, with optional .env support.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	return cfg, nil
}
