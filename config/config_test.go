package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, ":9001", cfg.ListenAddr)
	assert.Equal(t, "Vouch", cfg.TOTPIssuer)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LISTEN_ADDR", ":8080")
	t.Setenv("TOTP_ISSUER", "Example")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "Example", cfg.TOTPIssuer)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoad_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
