// Package config provides configuration management for the export-go service.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret is only suitable for local development.
const DefaultJWTSecret = "change-me-in-production-export-go"

// minJWTSecretLength is the shortest HS256 secret accepted outside development.
const minJWTSecretLength = 32

// Config holds the complete application configuration.
type Config struct {
	Log        LogConfig
	Server     ServerConfig
	Calculator CalculatorConfig
	Site       SiteConfig
	Auth       AuthConfig
	Database   DatabaseConfig
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string
	RateLimit       int
	RateWindow      time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
}

// CalculatorConfig controls how calculator amounts are rendered.
type CalculatorConfig struct {
	// Locale is a BCP 47 tag such as en-US.
	Locale string
	// Currency is an ISO 4217 code such as USD.
	Currency string
}

// SiteConfig holds static site settings.
type SiteConfig struct {
	// ContentPath overrides the embedded site content when set.
	ContentPath string
	// CookieMaxAge is how long the language preference cookie lives.
	CookieMaxAge time.Duration
	// CookieSecure marks the preference cookie Secure.
	CookieSecure bool
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	// Enabled turns on API key checks for the public API.
	Enabled bool
	APIKeys map[string]bool
	// AdminEmail and AdminPasswordHash (bcrypt) identify the only account
	// that may log in. Login is disabled when either is empty.
	AdminEmail        string
	AdminPasswordHash string
	JWTSecretKey      string
	JWTIssuer         string
	AccessTokenTTL    time.Duration
}

// AdminConfigured reports whether admin login is available.
func (a AuthConfig) AdminConfigured() bool {
	return a.AdminEmail != "" && a.AdminPasswordHash != ""
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			RateLimit:       getEnvInt("RATE_LIMIT", 100),
			RateWindow:      getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
			CORSOrigins:     parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:     getEnv("SWAGGER_USER", ""),
			SwaggerPass:     getEnv("SWAGGER_PASS", ""),
		},
		Calculator: CalculatorConfig{
			Locale:   getEnv("CALCULATOR_LOCALE", "en-US"),
			Currency: strings.ToUpper(getEnv("CALCULATOR_CURRENCY", "USD")),
		},
		Site: SiteConfig{
			ContentPath:  getEnv("SITE_CONTENT_PATH", ""),
			CookieMaxAge: getEnvDuration("LANG_COOKIE_MAX_AGE", 365*24*time.Hour),
			CookieSecure: getEnvBool("LANG_COOKIE_SECURE", false),
		},
		Auth: AuthConfig{
			Enabled:           getEnvBool("AUTH_ENABLED", false),
			APIKeys:           parseAPIKeys(os.Getenv("API_KEYS")),
			AdminEmail:        strings.ToLower(getEnv("ADMIN_EMAIL", "")),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecretKey:      getEnv("JWT_SECRET_KEY", DefaultJWTSecret),
			JWTIssuer:         getEnv("JWT_ISSUER", "export-go"),
			AccessTokenTTL:    getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "export_go"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

// Validate reports configuration that would make the service unsafe or
// unusable. It does not check values that have working fallbacks.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if (c.Auth.AdminEmail == "") != (c.Auth.AdminPasswordHash == "") {
		errs = append(errs, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be set together"))
	}
	if c.Auth.AdminConfigured() {
		if c.Auth.JWTSecretKey == DefaultJWTSecret || len(c.Auth.JWTSecretKey) < minJWTSecretLength {
			errs = append(errs, errors.New("JWT_SECRET_KEY must be a non-default secret of at least 32 bytes"))
		}
		if c.Auth.AccessTokenTTL <= 0 {
			errs = append(errs, errors.New("JWT_ACCESS_TOKEN_TTL must be positive"))
		}
	}
	if c.Auth.Enabled && len(c.Auth.APIKeys) == 0 {
		errs = append(errs, errors.New("AUTH_ENABLED requires API_KEYS"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// local static site dev servers
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5500",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
