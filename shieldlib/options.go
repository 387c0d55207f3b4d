// ABOUTME: Configuration options for the Email Shield library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package shield

import (
	"time"

	"email-shield-api/core/interfaces"
	"email-shield-api/core/search"
	"email-shield-api/infrastructure/serpapi"
)

// Config holds the configuration for the client
type Config struct {
	// APIKey authenticates against SerpApi. Required unless SearchProvider is set.
	APIKey string

	// BaseURL overrides the SerpApi endpoint
	BaseURL string

	// Engine overrides the SerpApi engine
	Engine string

	// HTTPClient performs outbound requests
	HTTPClient interfaces.HTTPClient

	// Logger receives structured log output
	Logger interfaces.Logger

	// QueryTimeout bounds each scope query
	QueryTimeout time.Duration

	// SearchProvider replaces the SerpApi adapter
	SearchProvider interfaces.SearchProvider
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithAPIKey sets the SerpApi key
func WithAPIKey(key string) Option {
	return func(c *Config) error {
		c.APIKey = key
		return nil
	}
}

// WithBaseURL sets the SerpApi endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return NewError(ErrorTypeConfiguration, "base URL cannot be empty")
		}
		c.BaseURL = baseURL
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithQueryTimeout sets the per-query time budget
func WithQueryTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "query timeout must be positive").
				WithContext("timeout", timeout.String())
		}
		c.QueryTimeout = timeout
		return nil
	}
}

// WithSearchProvider replaces the SerpApi adapter, e.g. for tests or another engine
func WithSearchProvider(provider interfaces.SearchProvider) Option {
	return func(c *Config) error {
		c.SearchProvider = provider
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		BaseURL:      serpapi.DefaultBaseURL,
		Engine:       serpapi.DefaultEngine,
		HTTPClient:   DefaultHTTPClient(),
		Logger:       DefaultLogger(),
		QueryTimeout: search.DefaultQueryTimeout,
	}
}
