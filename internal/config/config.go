// Package config loads process configuration from the environment.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultAdminPassword is the development fallback used when neither
// ADMIN_PASSWORD nor ADMIN_PASSWORD_HASH is set. Deployments must override
// it; Load warns when running on the default.
const DefaultAdminPassword = "admin123"

// Config stores all configuration of the application.
type Config struct {
	Addr   string
	WebDir string

	// DatabaseURL selects the postgres backend; when empty the in-memory
	// fallback store is used. AdminDatabaseURL is an elevated connection for
	// writes that bypasses row-level security policies.
	DatabaseURL      string
	AdminDatabaseURL string

	// AdminPassword is the shared admin credential. AdminPasswordHash is an
	// optional bcrypt hash that takes precedence over the plaintext value.
	AdminPassword     string
	AdminPasswordHash string

	// Optional OIDC single sign-on for the admin session. SSO is enabled
	// only when every field is present.
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
	OIDCAdminEmail   string
}

// Load reads configuration from the environment, consulting a .env file in
// the working directory if one is present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	cfg := &Config{
		Addr:              env("ADDR", ":3000"),
		WebDir:            env("WEB_DIR", "public"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		AdminDatabaseURL:  os.Getenv("ADMIN_DATABASE_URL"),
		AdminPassword:     env("ADMIN_PASSWORD", DefaultAdminPassword),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		OIDCIssuer:        os.Getenv("OIDC_ISSUER"),
		OIDCClientID:      os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret:  os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:   os.Getenv("OIDC_REDIRECT_URL"),
		OIDCAdminEmail:    os.Getenv("OIDC_ADMIN_EMAIL"),
	}

	if cfg.AdminPassword == DefaultAdminPassword && cfg.AdminPasswordHash == "" {
		log.Println("WARN: ADMIN_PASSWORD not set, using the development default")
	}
	return cfg
}

// SSOEnabled reports whether every setting required for admin single
// sign-on is present.
func (c *Config) SSOEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != "" && c.OIDCClientSecret != "" &&
		c.OIDCRedirectURL != "" && c.OIDCAdminEmail != ""
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
