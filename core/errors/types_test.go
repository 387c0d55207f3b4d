package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "email",
		Message: "invalid email format",
	}

	expected := "validation error on field 'email': invalid email format"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestConfigurationError_Error(t *testing.T) {
	err := &ConfigurationError{
		Key:     "SERPAPI_KEY",
		Message: "must be set",
	}

	expected := "configuration error for 'SERPAPI_KEY': must be set"
	if err.Error() != expected {
		t.Errorf("ConfigurationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 401,
		Message:    "Invalid API key",
		API:        "serpapi",
	}

	expected := "external API error from serpapi: 401 - Invalid API key"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "email"}) {
		t.Error("IsValidation should return true for ValidationError")
	}

	if IsValidation(errors.New("some other error")) {
		t.Error("IsValidation should return false for other errors")
	}
}

func TestIsConfiguration(t *testing.T) {
	if !IsConfiguration(&ConfigurationError{Key: "SERPAPI_KEY"}) {
		t.Error("IsConfiguration should return true for ConfigurationError")
	}

	if IsConfiguration(&ValidationError{}) {
		t.Error("IsConfiguration should return false for ValidationError")
	}
}

func TestIsExternalAPI_Wrapped(t *testing.T) {
	apiErr := &ExternalAPIError{StatusCode: 500, API: "serpapi"}
	wrapped := fmt.Errorf("search failed: %w", apiErr)

	if !IsExternalAPI(wrapped) {
		t.Error("IsExternalAPI should see through wrapped errors")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("boom")
	wrapped := WrapError(base, "decode response")

	if wrapped.Error() != "decode response: boom" {
		t.Errorf("WrapError() = %v, want %v", wrapped.Error(), "decode response: boom")
	}

	if !errors.Is(wrapped, base) {
		t.Error("WrapError should preserve the original error for errors.Is")
	}
}
