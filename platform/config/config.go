// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// SessionConfig provides settings for signing and issuing session cookies.
type SessionConfig interface {
	GetSessionSecret() string
	GetSessionCookieName() string
	GetSessionCookieSecure() bool
	GetSessionTTL() time.Duration
}

// CredentialsConfig provides the dashboard login credentials.
type CredentialsConfig interface {
	GetDashboardUsername() string
	GetDashboardPassword() string
	GetDashboardPasswordHash() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetRequestTimeout() time.Duration
}

// DisplayConfig provides settings for rendering timestamps in responses
// and exports.
type DisplayConfig interface {
	GetDisplayLocation() *time.Location
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                   string
	HTTPAddr              string
	DatabaseURL           string
	SessionSecret         string
	SessionCookieName     string
	SessionCookieSecure   bool
	SessionTTL            time.Duration
	DashboardUsername     string
	DashboardPassword     string
	DashboardPasswordHash string
	CORSAllowAll          bool
	CORSOrigins           []string
	CORSAllowCreds        bool
	RequestTimeout        time.Duration
	DisplayTimezone       string

	displayLocation *time.Location
}

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// SessionConfig implementation
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetSessionCookieName() string { return c.SessionCookieName }
func (c *Config) GetSessionCookieSecure() bool { return c.SessionCookieSecure }
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }

// CredentialsConfig implementation
func (c *Config) GetDashboardUsername() string     { return c.DashboardUsername }
func (c *Config) GetDashboardPassword() string     { return c.DashboardPassword }
func (c *Config) GetDashboardPasswordHash() string { return c.DashboardPasswordHash }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string              { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool            { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string         { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool          { return c.CORSAllowCreds }
func (c *Config) GetRequestTimeout() time.Duration { return c.RequestTimeout }

// DisplayConfig implementation
func (c *Config) GetDisplayLocation() *time.Location { return c.displayLocation }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                   getEnv("ENV", "development"),
		HTTPAddr:              getEnv("HTTP_ADDR", ":3000"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		SessionSecret:         getEnv("SESSION_SECRET", ""),
		SessionCookieName:     getEnv("SESSION_COOKIE_NAME", "dashboard_session"),
		SessionCookieSecure:   strings.EqualFold(getEnv("SESSION_COOKIE_SECURE", "false"), "true"),
		SessionTTL:            getDuration("SESSION_TTL", 24*time.Hour),
		DashboardUsername:     getEnv("DASHBOARD_USERNAME", "admin"),
		DashboardPassword:     getEnv("DASHBOARD_PASSWORD", ""),
		DashboardPasswordHash: getEnv("DASHBOARD_PASSWORD_HASH", ""),
		CORSAllowAll:          corsAllowAll,
		CORSOrigins:           corsOrigins,
		CORSAllowCreds:        strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RequestTimeout:        getDuration("REQUEST_TIMEOUT", 30*time.Second),
		DisplayTimezone:       getEnv("DISPLAY_TIMEZONE", "Asia/Jakarta"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.DashboardPassword == "" && cfg.DashboardPasswordHash == "" {
		return nil, fmt.Errorf("DASHBOARD_PASSWORD or DASHBOARD_PASSWORD_HASH is required")
	}

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", cfg.DisplayTimezone, err)
	}
	cfg.displayLocation = loc

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	if parsed, err := time.ParseDuration(raw); err == nil {
		return parsed
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
