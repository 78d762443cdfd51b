package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")

		assert.Equal(t, "en-US", cfg.Calculator.Locale)
		assert.Equal(t, "USD", cfg.Calculator.Currency)

		assert.Empty(t, cfg.Site.ContentPath)
		assert.Equal(t, 365*24*time.Hour, cfg.Site.CookieMaxAge)
		assert.False(t, cfg.Site.CookieSecure)

		assert.False(t, cfg.Auth.Enabled)
		assert.False(t, cfg.Auth.AdminConfigured())
		assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecretKey)
		assert.Equal(t, "export-go", cfg.Auth.JWTIssuer)
		assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)

		assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
		assert.Equal(t, "export_go", cfg.Database.DatabaseName)
		assert.Equal(t, 30*24*time.Hour, cfg.Database.LogsTTL)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
		assert.Equal(t, 2, cfg.Database.CircuitBreakerSuccessThreshold)
		assert.Equal(t, 30*time.Second, cfg.Database.CircuitBreakerTimeout)
	})

	t.Run("loads configuration from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("CALCULATOR_LOCALE", "pt-BR")
		_ = os.Setenv("CALCULATOR_CURRENCY", "brl")
		_ = os.Setenv("SITE_CONTENT_PATH", "/etc/export-go/content.yaml")
		_ = os.Setenv("LANG_COOKIE_SECURE", "true")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("ADMIN_EMAIL", "Admin@Example.com")
		_ = os.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
		_ = os.Setenv("JWT_ACCESS_TOKEN_TTL", "1h")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("MONGODB_DATABASE", "custom")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, "pt-BR", cfg.Calculator.Locale)
		assert.Equal(t, "BRL", cfg.Calculator.Currency)
		assert.Equal(t, "/etc/export-go/content.yaml", cfg.Site.ContentPath)
		assert.True(t, cfg.Site.CookieSecure)
		assert.True(t, cfg.Auth.Enabled)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.Equal(t, "admin@example.com", cfg.Auth.AdminEmail)
		assert.True(t, cfg.Auth.AdminConfigured())
		assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "custom", cfg.Database.DatabaseName)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "maybe")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.False(t, cfg.Auth.Enabled)
	})

	t.Run("blank values fall back to defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CALCULATOR_LOCALE", "   ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "en-US", cfg.Calculator.Locale)
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , key2 , ,key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.Len(t, cfg.Auth.APIKeys, 3)
		assert.True(t, cfg.Auth.APIKeys["key3"])
	})

	t.Run("returns nil for empty API keys", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeys)
	})

	t.Run("appends CORS origins to the defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://export.example.com, ")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "https://export.example.com")
		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:5500")
		assert.NotContains(t, cfg.Server.CORSOrigins, "")
	})
}

func TestConfig_Validate(t *testing.T) {
	strongSecret := "0123456789abcdef0123456789abcdef"

	base := func() Config {
		os.Clearenv()
		return Load()
	}

	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, base().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "admin email without hash",
			mutate:  func(c *Config) { c.Auth.AdminEmail = "admin@example.com" },
			wantErr: "must be set together",
		},
		{
			name: "admin with default secret",
			mutate: func(c *Config) {
				c.Auth.AdminEmail = "admin@example.com"
				c.Auth.AdminPasswordHash = "$2a$10$hash"
			},
			wantErr: "JWT_SECRET_KEY",
		},
		{
			name: "admin with short secret",
			mutate: func(c *Config) {
				c.Auth.AdminEmail = "admin@example.com"
				c.Auth.AdminPasswordHash = "$2a$10$hash"
				c.Auth.JWTSecretKey = "short"
			},
			wantErr: "JWT_SECRET_KEY",
		},
		{
			name: "admin with zero ttl",
			mutate: func(c *Config) {
				c.Auth.AdminEmail = "admin@example.com"
				c.Auth.AdminPasswordHash = "$2a$10$hash"
				c.Auth.JWTSecretKey = strongSecret
				c.Auth.AccessTokenTTL = 0
			},
			wantErr: "JWT_ACCESS_TOKEN_TTL",
		},
		{
			name:    "api key auth without keys",
			mutate:  func(c *Config) { c.Auth.Enabled = true },
			wantErr: "API_KEYS",
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("configured admin is valid", func(t *testing.T) {
		cfg := base()
		cfg.Auth.AdminEmail = "admin@example.com"
		cfg.Auth.AdminPasswordHash = "$2a$10$hash"
		cfg.Auth.JWTSecretKey = strongSecret

		assert.NoError(t, cfg.Validate())
	})
}
