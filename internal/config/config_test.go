package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "JWT_SECRET", "JWT_ISSUER", "JWT_TTL_MINUTES", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(key, values[key])
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{
		"DATABASE_URL": "postgres://localhost/checkin",
		"JWT_SECRET":   "s3cret",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Equal(t, "field-checkin", cfg.JWTIssuer)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"PORT":                     "9090",
		"DATABASE_URL":             " postgres://db/checkin ",
		"JWT_SECRET":               "s3cret",
		"JWT_ISSUER":               "tracker",
		"JWT_TTL_MINUTES":          "30",
		"CORS_ALLOWED_ORIGINS":     "https://a.example, ,https://b.example",
		"SHUTDOWN_TIMEOUT_SECONDS": "-4",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/checkin", cfg.DatabaseURL)
	assert.Equal(t, "tracker", cfg.JWTIssuer)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadRequiresSecrets(t *testing.T) {
	setEnv(t, map[string]string{"JWT_SECRET": "s3cret"})
	_, err := Load()
	assert.EqualError(t, err, "DATABASE_URL is required")

	setEnv(t, map[string]string{"DATABASE_URL": "postgres://localhost/checkin"})
	_, err = Load()
	assert.EqualError(t, err, "JWT_SECRET is required")
}
