package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL         string
	SessionTokenExpiry time.Duration
	CookieSecure       bool
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionTokenExpiry: time.Hour * time.Duration(getEnvAsInt("SESSION_TOKEN_EXPIRY_HOURS", 168)), // 7 days
		CookieSecure:       getEnvAsBool("COOKIE_SECURE", false),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetSessionTokenExpiry returns the expiry duration for session tokens.
func (c *Config) GetSessionTokenExpiry() time.Duration {
	return c.SessionTokenExpiry
}

// GetCookieSecure returns whether session cookies require HTTPS.
func (c *Config) GetCookieSecure() bool {
	return c.CookieSecure
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
