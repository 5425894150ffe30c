package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/app")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "auth_token", cfg.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.Production())
	assert.False(t, cfg.CookieSecure())
	assert.Equal(t, http.SameSiteLaxMode, cfg.CookieSameSite())
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/app")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	// No hardcoded fallback: the secret must come from the environment.
	assert.Error(t, err)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestProductionHardening(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.True(t, cfg.CookieSecure())
	assert.Equal(t, http.SameSiteStrictMode, cfg.CookieSameSite())
}

func TestCORSOrigins(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ORIGIN", "https://app.example.com/, http://localhost:3000 ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:3000"}, cfg.CORSOrigins())
}

func TestInvalidTokenTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "-5m")

	_, err := Load()
	assert.Error(t, err)
}
