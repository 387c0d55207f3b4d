// ABOUTME: Error types and handling for the Email Shield library
// ABOUTME: Provides structured errors with context for library operations

package shield

import (
	"errors"
	"fmt"

	coreerrors "email-shield-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates the email address was rejected
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeConfiguration indicates the client is missing required settings
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}

func hasType(err error, errType ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == errType
	}
	return false
}

// fromCoreError converts a core error into the public error type
func fromCoreError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *coreerrors.ValidationError
	if errors.As(err, &validationErr) {
		return NewError(ErrorTypeValidation, validationErr.Message).
			WithCause(err).
			WithContext("field", validationErr.Field)
	}

	var configErr *coreerrors.ConfigurationError
	if errors.As(err, &configErr) {
		return NewError(ErrorTypeConfiguration, configErr.Message).
			WithCause(err).
			WithContext("key", configErr.Key)
	}

	return NewError(ErrorTypeInternal, "email analysis failed").WithCause(err)
}
