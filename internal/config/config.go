// Package config assembles runtime configuration from the environment.
package config

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration for the API process.
// The signing secret is carried here and injected where needed; nothing
// reads it from the environment after startup.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret   string `env:"JWT_SECRET,required,notEmpty"`

	Port       string        `env:"PORT" envDefault:"8080"`
	AppEnv     string        `env:"APP_ENV" envDefault:"development"`
	CORSOrigin string        `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
	CookieName string        `env:"COOKIE_NAME" envDefault:"auth_token"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// Load reads .env if present (ok if missing in prod) and parses the
// environment into a Config. Missing required vars fail startup.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return cfg, nil
}

// Production reports whether the process runs with production hardening
// (secure cookies, strict same-site).
func (c Config) Production() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// CookieSecure reports whether session cookies carry the Secure attribute.
func (c Config) CookieSecure() bool { return c.Production() }

// CookieSameSite returns the SameSite mode for session cookies:
// strict in production, lax otherwise.
func (c Config) CookieSameSite() http.SameSite {
	if c.Production() {
		return http.SameSiteStrictMode
	}
	return http.SameSiteLaxMode
}

// CORSOrigins splits the comma-separated CORS_ORIGIN value into a clean list.
func (c Config) CORSOrigins() []string {
	var origins []string
	for _, p := range strings.Split(c.CORSOrigin, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
