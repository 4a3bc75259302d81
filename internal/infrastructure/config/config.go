package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins is the comma-separated list of allowed origins for the
	// browser client. "*" allows any origin.
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	Mongo Mongo
	Redis Redis
	Admin AdminBootstrap
}

type Mongo struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=blood_donation"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AdminBootstrap configures the one-time default admin created when the
// admins collection is empty. Skipped when the password is unset.
type AdminBootstrap struct {
	Username string `env:"ADMIN_BOOTSTRAP_USERNAME, default=admin"`
	Email    string `env:"ADMIN_BOOTSTRAP_EMAIL,    default=admin@blooddonation.local"`
	Password string `env:"ADMIN_BOOTSTRAP_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
