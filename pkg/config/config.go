// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads an optional .env file, then builds server, search, logging and metrics settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Search contains search provider configuration
	Search SearchConfig

	// Log contains logging configuration
	Log LogConfig

	// Metrics contains metrics exposition configuration
	Metrics MetricsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// AllowedOrigins lists the CORS origins accepted by the API
	AllowedOrigins []string
}

// SearchConfig holds search provider configuration
type SearchConfig struct {
	// APIKey authenticates against SerpApi. Required.
	APIKey string

	// BaseURL is the SerpApi search endpoint
	BaseURL string

	// Engine is the SerpApi engine identifier
	Engine string

	// QueryTimeout bounds each dork query
	QueryTimeout time.Duration

	// HTTPTimeout bounds any outbound HTTP request
	HTTPTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug/info/warn/error
	Level string

	// Format is json or text
	Format string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	// Enabled mounts /metrics on the API router
	Enabled bool
}

// LoadFromEnv loads configuration from environment variables.
// Values from a .env file in the working directory are applied first
// without overriding variables already set in the environment.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			AllowedOrigins: getEnvAsListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Search: SearchConfig{
			APIKey:       os.Getenv("SERPAPI_KEY"),
			BaseURL:      getEnvOrDefault("SERPAPI_BASE_URL", "https://serpapi.com/search.json"),
			Engine:       getEnvOrDefault("SERPAPI_ENGINE", "google"),
			QueryTimeout: getEnvAsMillisOrDefault("DORK_QUERY_TIMEOUT_MS", 10*time.Second),
			HTTPTimeout:  getEnvAsMillisOrDefault("HTTP_CLIENT_TIMEOUT_MS", 30*time.Second),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json")),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBoolOrDefault("METRICS_ENABLED", true),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsMillisOrDefault reads a millisecond count; unparsable values yield -1 so Validate rejects them
func getEnvAsMillisOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	ms, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	return time.Duration(ms) * time.Millisecond
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Search.APIKey == "" {
		return errors.New("SERPAPI_KEY environment variable is not set")
	}

	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return errors.New("port must be a number between 1 and 65535")
	}

	if c.Search.BaseURL == "" {
		return errors.New("search base URL cannot be empty")
	}

	if c.Search.QueryTimeout <= 0 {
		return errors.New("dork query timeout must be a positive number of milliseconds")
	}

	if c.Search.HTTPTimeout <= 0 {
		return errors.New("HTTP client timeout must be a positive number of milliseconds")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
