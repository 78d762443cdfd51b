package app

import (
	"time"

	"github.com/guttosm/export-go/config"
)

// baseConfig is a valid configuration without MongoDB or admin login.
func baseConfig() config.Config {
	return config.Config{
		Log: config.LogConfig{Level: "error"},
		Server: config.ServerConfig{
			Port:            "0",
			RateLimit:       100,
			RateWindow:      time.Minute,
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Calculator: config.CalculatorConfig{Locale: "en-US", Currency: "USD"},
		Site:       config.SiteConfig{CookieMaxAge: time.Hour},
		Auth: config.AuthConfig{
			JWTSecretKey:   config.DefaultJWTSecret,
			JWTIssuer:      "export-go",
			AccessTokenTTL: 15 * time.Minute,
		},
	}
}

// withAdmin enables admin login with a bcrypt hash of "password123".
func withAdmin(cfg config.Config) config.Config {
	cfg.Auth.AdminEmail = "admin@export-go.com"
	cfg.Auth.AdminPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	cfg.Auth.JWTSecretKey = "a-test-secret-that-is-long-enough-for-hs256"
	return cfg
}
