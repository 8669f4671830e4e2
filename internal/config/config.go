// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"fitness-tracker-api/internal/models"
)

// Config holds all configuration values for the application.
type Config struct {
	// Database
	DatabaseURL string

	// Local server
	Port int

	// Application
	Stage          string
	LogLevel       string
	ServiceVersion string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port: getEnvInt("PORT", 8080),

		Stage:          getEnv("STAGE", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ServiceVersion: getEnv("SERVICE_VERSION", "1.0.0"),
	}

	return cfg, nil
}

// RequireDatabase returns ErrMissingDatabaseURL when no connection string is set.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return models.ErrMissingDatabaseURL
	}
	return nil
}

// DatabaseURLFromEnv reads DATABASE_URL directly. The Lambda handler calls
// this on every invocation.
func DatabaseURLFromEnv() string {
	return os.Getenv("DATABASE_URL")
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
