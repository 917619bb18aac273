package shared

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the singleton validator instance used by this package.
// Struct validation requires non-nil struct fields by default.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// ValidateStruct validates payload using go-playground/validator tags.
// Returns nil when validation passes, or a ValidationError describing the
// first failing field.
func ValidateStruct(payload any) error {
	err := GetValidator().Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]

		return ValidationError{
			Field:   CamelToSnakeCase(first.Field()),
			Message: fmt.Sprintf("failed on the %q rule", first.Tag()),
		}
	}

	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// IsValidEmail reports whether email is a well-formed address.
func IsValidEmail(email string) bool {
	return GetValidator().Var(email, "required,email") == nil
}

// IsValidURL reports whether value is a well-formed http or https URL.
// Other schemes do not count.
func IsValidURL(value string) bool {
	return GetValidator().Var(value, "required,http_url") == nil
}
