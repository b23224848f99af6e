// Package config loads service configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the vouch server.
type Config struct {
	// ListenAddr is the bind address for the HTTP endpoint.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":9001"`

	// JWTSecret is the HMAC secret for signing tokens (HS256).
	// The process refuses to start without it.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// RedisURL selects the Redis-backed user store and event stream.
	// When empty the server runs with in-memory equivalents.
	RedisURL string `env:"REDIS_URL"`

	// TOTPIssuer is the service name shown in authenticator apps.
	TOTPIssuer string `env:"TOTP_ISSUER" envDefault:"Vouch"`

	// BcryptCost is the bcrypt cost factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

// Load reads the configuration from the environment. A .env file in
// the working directory is applied first if present.
func Load() (*Config, error) {
	// The .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return cfg, nil
}
