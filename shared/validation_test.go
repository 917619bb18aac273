//go:build unit

package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValidator(t *testing.T) {
	t.Parallel()

	first := GetValidator()
	second := GetValidator()

	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	type signupRequest struct {
		Email    string `validate:"required,email"`
		UserName string `validate:"required,min=3"`
		Age      int    `validate:"gte=0"`
	}

	t.Run("valid_payload", func(t *testing.T) {
		t.Parallel()

		err := ValidateStruct(signupRequest{
			Email:    "dev@example.com",
			UserName: "dev",
			Age:      30,
		})

		assert.NoError(t, err)
	})

	t.Run("missing_required_field", func(t *testing.T) {
		t.Parallel()

		err := ValidateStruct(signupRequest{UserName: "dev"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)

		var validationErr ValidationError

		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "email", validationErr.Field)
		assert.Contains(t, validationErr.Message, `"required"`)
	})

	t.Run("field_name_converted_to_snake_case", func(t *testing.T) {
		t.Parallel()

		err := ValidateStruct(signupRequest{
			Email:    "dev@example.com",
			UserName: "ab",
		})

		var validationErr ValidationError

		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "user_name", validationErr.Field)
		assert.Contains(t, validationErr.Message, `"min"`)
	})

	t.Run("reports_first_failure_only", func(t *testing.T) {
		t.Parallel()

		err := ValidateStruct(signupRequest{})

		var validationErr ValidationError

		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "email", validationErr.Field)
	})
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple", "user@example.com", true},
		{"subdomain", "user@mail.example.com", true},
		{"plus_tag", "user+tag@example.com", true},
		{"missing_at", "userexample.com", false},
		{"missing_domain", "user@", false},
		{"empty", "", false},
		{"whitespace", "user @example.com", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsValidEmail(tc.email))
		})
	}
}

func TestIsValidURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"https", "https://example.com", true},
		{"http", "http://example.com/path?q=1", true},
		{"ftp_rejected", "ftp://example.com", false},
		{"no_scheme", "example.com", false},
		{"empty", "", false},
		{"garbage", "http://", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsValidURL(tc.url))
		})
	}
}
