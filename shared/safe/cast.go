package safe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCastFailed is returned when a value cannot be cast to the requested type.
var ErrCastFailed = errors.New("cast failed")

// Cast asserts value to type T with an error return instead of a panic.
// Returns an error wrapping ErrCastFailed when the dynamic type of value is
// not T. A nil value never casts successfully, even to interface types.
//
// Example:
//
//	name, err := safe.Cast[string](raw)
//	if err != nil {
//	    return fmt.Errorf("read name attribute: %w", err)
//	}
func Cast[T any](value any) (T, error) {
	out, ok := value.(T)
	if !ok {
		var zero T

		return zero, fmt.Errorf("%w: %T is not %T", ErrCastFailed, value, zero)
	}

	return out, nil
}

// CastOrDefault asserts value to type T, returning defaultValue when the
// assertion fails.
//
// Example:
//
//	limit := safe.CastOrDefault(raw, 100)
func CastOrDefault[T any](value any, defaultValue T) T {
	out, ok := value.(T)
	if !ok {
		return defaultValue
	}

	return out
}

// ParseBoolOrDefault parses s as a boolean ("1", "t", "true", "0", "f",
// "false" in any case), returning defaultValue when s does not parse.
func ParseBoolOrDefault(s string, defaultValue bool) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}

	return parsed
}

// ParseIntOrDefault parses s as a base-10 int64, returning defaultValue when
// s does not parse.
func ParseIntOrDefault(s string, defaultValue int64) int64 {
	parsed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return defaultValue
	}

	return parsed
}

// ParseFloatOrDefault parses s as a float64, returning defaultValue when s
// does not parse.
func ParseFloatOrDefault(s string, defaultValue float64) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return defaultValue
	}

	return parsed
}
