// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package shield

import (
	"time"

	"email-shield-api/core/interfaces"
	httpInfra "email-shield-api/infrastructure/http/standard"
	loggerInfra "email-shield-api/infrastructure/logger/standard"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultLogger creates a default logger that writes JSON to stdout
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewStandardLogger()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
