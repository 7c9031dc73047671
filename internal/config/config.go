package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for our application
type Config struct {
	Port         string
	Origin       string
	Environment  string
	LogLevel     string
	MaxUploadMB  int
	Database     DatabaseConfig
	MetricsPath  string
	EnableDBLogs bool
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "medi"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = getEnv("DB_DSN", fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name))

	maxUploadMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_MB: %w", err)
	}
	if maxUploadMB <= 0 {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_MB: must be positive, got %d", maxUploadMB)
	}

	origin := getEnv("ORIGIN", "http://localhost:4200")
	if err := validateOrigin(origin); err != nil {
		return nil, err
	}

	enableDBLogs, err := strconv.ParseBool(getEnv("DB_LOGS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_LOGS: %w", err)
	}

	return &Config{
		Port:         getEnv("PORT", "3001"),
		Origin:       origin,
		Environment:  getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		MaxUploadMB:  maxUploadMB,
		Database:     dbConfig,
		MetricsPath:  getEnv("METRICS_PATH", "/metrics"),
		EnableDBLogs: enableDBLogs,
	}, nil
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// validateOrigin rejects values the CORS middleware would panic on.
func validateOrigin(origin string) error {
	if origin == "*" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://") {
		return nil
	}
	return fmt.Errorf("invalid ORIGIN %q: must be * or start with http:// or https://", origin)
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
