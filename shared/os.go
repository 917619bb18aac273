package shared

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/Plasma-Engine/plasma-engine-shared/shared/safe"
)

// ErrNotPointer indicates that SetConfigFromEnvVars received something other
// than a pointer to a struct.
var ErrNotPointer = errors.New("expected a pointer to a struct")

// GetenvOrDefault returns the value of the environment variable key, or
// defaultValue when the variable is unset, empty or whitespace-only.
func GetenvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	return value
}

// GetenvBoolOrDefault reads the environment variable key as a boolean.
// Accepted truthy values are "true", "1", "yes" and "on"; falsy values are
// "false", "0", "no" and "off" (case-insensitive). Anything else, including
// an unset variable, yields defaultValue.
func GetenvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// GetenvIntOrDefault reads the environment variable key as a base-10 int64,
// returning defaultValue when the variable is unset or does not parse.
func GetenvIntOrDefault(key string, defaultValue int64) int64 {
	return safe.ParseIntOrDefault(os.Getenv(key), defaultValue)
}

// GetenvFloatOrDefault reads the environment variable key as a float64,
// returning defaultValue when the variable is unset or does not parse.
func GetenvFloatOrDefault(key string, defaultValue float64) float64 {
	return safe.ParseFloatOrDefault(os.Getenv(key), defaultValue)
}

// GetenvSliceOrDefault reads the environment variable key as a comma-separated
// list. Items are trimmed and empty items dropped. Returns defaultValue when
// the variable is unset or blank.
func GetenvSliceOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	if len(items) == 0 {
		return defaultValue
	}

	return items
}

// GetenvRequired returns the value of the environment variable key, or a
// ConfigurationError when the variable is unset or blank.
func GetenvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return "", ConfigurationError{
			Key:     key,
			Message: "required environment variable is not set",
		}
	}

	return value, nil
}

// SetConfigFromEnvVars populates the struct pointed to by target from
// environment variables named by `env:"..."` field tags. Supported field
// kinds are string, bool, the int, uint and float families. Unset variables
// leave the field at its zero value; values that fail to parse are skipped.
func SetConfigFromEnvVars(target any) error {
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Ptr || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %T", ErrNotPointer, target)
	}

	structValue := value.Elem()
	structType := structValue.Type()

	for i := range structType.NumField() {
		field := structValue.Field(i)
		if !field.CanSet() {
			continue
		}

		key := structType.Field(i).Tag.Get("env")
		if key == "" {
			continue
		}

		raw, found := os.LookupEnv(key)
		if !found {
			continue
		}

		setFieldFromString(field, raw)
	}

	return nil
}

func setFieldFromString(field reflect.Value, raw string) {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			field.SetBool(parsed)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			field.SetInt(parsed)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if parsed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64); err == nil {
			field.SetUint(parsed)
		}
	case reflect.Float32, reflect.Float64:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			field.SetFloat(parsed)
		}
	default:
		// Unsupported kinds keep their zero value.
	}
}

// LocalEnvConfig records that the local .env bootstrap ran.
type LocalEnvConfig struct {
	Initialized bool
}

var (
	localEnvConfig     *LocalEnvConfig
	localEnvConfigOnce sync.Once
)

// InitLocalEnvConfig loads a .env file from the working directory when
// present and prints the running version and environment name. Safe to call
// from multiple packages; the work happens once.
func InitLocalEnvConfig() *LocalEnvConfig {
	localEnvConfigOnce.Do(func() {
		// Existing process variables win over .env entries.
		_ = godotenv.Load()

		localEnvConfig = &LocalEnvConfig{Initialized: true}

		fmt.Printf("VERSION: %s\n\n", GetenvOrDefault("VERSION", "NO-VERSION"))
		fmt.Printf("ENVIRONMENT NAME: %s\n\n", GetenvOrDefault("ENV_NAME", "local"))
	})

	return localEnvConfig
}
