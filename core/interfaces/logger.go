package interfaces

// Logger defines the interface for logging throughout the application.
// Implementations wrap a concrete backend (logrus in production, a recorder in
// tests) behind a level-per-method API with structured fields.
//
// Example usage:
//
//	logger.Warn("Dork query timed out", map[string]interface{}{
//		"scope": "github",
//		"query": "site:github.com intext:someone@example.com",
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Degraded provider calls are reported at this level.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards every message. Useful as a default when no logger is wired.
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields map[string]interface{}) {}
func (NopLogger) Info(msg string, fields map[string]interface{})  {}
func (NopLogger) Warn(msg string, fields map[string]interface{})  {}
func (NopLogger) Error(msg string, fields map[string]interface{}) {}
