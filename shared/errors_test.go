//go:build unit

package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("error_includes_field", func(t *testing.T) {
		t.Parallel()

		err := ValidationError{Field: "email", Message: "must not be empty"}

		assert.Equal(t, "email: must not be empty", err.Error())
	})

	t.Run("error_without_field", func(t *testing.T) {
		t.Parallel()

		err := ValidationError{Message: "payload rejected"}

		assert.Equal(t, "payload rejected", err.Error())
	})

	t.Run("unwraps_to_sentinel", func(t *testing.T) {
		t.Parallel()

		err := ValidationError{Field: "email", Message: "bad"}

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("survives_wrapping", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("create account: %w", ValidationError{Field: "email", Message: "bad"})

		assert.ErrorIs(t, wrapped, ErrValidation)

		var validationErr ValidationError

		require.ErrorAs(t, wrapped, &validationErr)
		assert.Equal(t, "email", validationErr.Field)
	})

	t.Run("marshals_with_lowercase_keys", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(ValidationError{Field: "email", Message: "bad"})

		require.NoError(t, err)
		assert.JSONEq(t, `{"field":"email","message":"bad"}`, string(data))
	})
}

func TestConfigurationError(t *testing.T) {
	t.Parallel()

	t.Run("error_includes_key", func(t *testing.T) {
		t.Parallel()

		err := ConfigurationError{Key: "DATABASE_URL", Message: "required environment variable is not set"}

		assert.Equal(t, "DATABASE_URL: required environment variable is not set", err.Error())
	})

	t.Run("error_without_key", func(t *testing.T) {
		t.Parallel()

		err := ConfigurationError{Message: "config unreadable"}

		assert.Equal(t, "config unreadable", err.Error())
	})

	t.Run("unwraps_to_sentinel", func(t *testing.T) {
		t.Parallel()

		err := ConfigurationError{Key: "PORT", Message: "bad"}

		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("distinct_from_validation", func(t *testing.T) {
		t.Parallel()

		err := ConfigurationError{Key: "PORT", Message: "bad"}

		assert.False(t, errors.Is(err, ErrValidation))
	})
}
