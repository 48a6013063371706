// Package config loads the storefront frontend configuration from the
// environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BackendURL is the base URL of the remote storefront API that performs
	// all real authentication, persistence, and validation.
	BackendURL string `env:"BACKEND_URL, default=http://localhost:8000"`

	// CookieSecret signs the session id cookie. An empty secret is only
	// acceptable in development.
	CookieSecret string `env:"COOKIE_SECRET"`

	Session SessionConfig
}

type SessionConfig struct {
	// Backend selects the session store: "memory" or "redis".
	Backend string        `env:"SESSION_BACKEND, default=memory"`
	TTL     time.Duration `env:"SESSION_TTL, default=720h"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
