package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, read from environment variables.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	CacheBackend string        `env:"CACHE_BACKEND" envDefault:"memory"`
	RedisAddr    string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	RateLimitCapacity int           `env:"RATE_LIMIT_CAPACITY" envDefault:"5"`
	RateLimitRefill   time.Duration `env:"RATE_LIMIT_REFILL" envDefault:"1m"`
}

// Load parses the configuration from the environment. A local .env file is
// loaded first when present; real deployments set the variables directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.CacheBackend != "memory" && cfg.CacheBackend != "redis" {
		return nil, fmt.Errorf("invalid CACHE_BACKEND %q: must be memory or redis", cfg.CacheBackend)
	}
	if cfg.RateLimitCapacity <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CAPACITY %d: must be positive", cfg.RateLimitCapacity)
	}

	return cfg, nil
}
