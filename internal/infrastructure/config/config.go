package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Auth    AuthConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dispute_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SessionConfig selects and tunes the session persistence strategy.
// Strategy "redis" holds records server-side and supports immediate
// revocation; "jwt" issues self-contained tokens revocable only by expiry.
type SessionConfig struct {
	Strategy   string        `env:"SESSION_STRATEGY,    default=redis"`
	Secret     string        `env:"SESSION_SECRET"`
	MaxAge     time.Duration `env:"SESSION_MAX_AGE,     default=720h"`
	RefreshAge time.Duration `env:"SESSION_REFRESH_AGE, default=24h"`
}

type AuthConfig struct {
	BcryptCost int `env:"BCRYPT_COST, default=12"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Session.Strategy != "redis" && cfg.Session.Strategy != "jwt" {
		return nil, fmt.Errorf("config: unknown session strategy %q", cfg.Session.Strategy)
	}
	if cfg.Session.Strategy == "jwt" && cfg.Session.Secret == "" {
		return nil, fmt.Errorf("config: SESSION_SECRET is required for the jwt strategy")
	}
	return &cfg, nil
}
