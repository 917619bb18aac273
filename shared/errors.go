package shared

import "errors"

// ErrValidation tags failures caused by malformed or out-of-range input.
// Use errors.Is to test for it regardless of the concrete error value.
var ErrValidation = errors.New("validation failed")

// ErrConfiguration tags failures caused by missing or malformed configuration.
var ErrConfiguration = errors.New("invalid configuration")

// ValidationError reports a field-level validation failure.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + ": " + e.Message
}

// Unwrap ties every ValidationError to ErrValidation.
func (e ValidationError) Unwrap() error {
	return ErrValidation
}

// ConfigurationError reports a missing or malformed configuration key.
type ConfigurationError struct {
	Key     string `json:"key,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ConfigurationError) Error() string {
	if e.Key == "" {
		return e.Message
	}

	return e.Key + ": " + e.Message
}

// Unwrap ties every ConfigurationError to ErrConfiguration.
func (e ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
