package safe

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrPathNotFound is returned when a JSON path does not resolve to a value.
var ErrPathNotFound = errors.New("json path not found")

// UnmarshalOrDefault decodes JSON into a value of type T, returning
// defaultValue when the document cannot be decoded.
//
// Example:
//
//	cfg := safe.UnmarshalOrDefault(payload, defaultConfig)
func UnmarshalOrDefault[T any](data []byte, defaultValue T) T {
	var out T

	if err := json.Unmarshal(data, &out); err != nil {
		return defaultValue
	}

	return out
}

// MarshalOrDefault encodes v as JSON, returning defaultValue when encoding
// fails (unsupported types such as channels or funcs).
//
// Example:
//
//	body := safe.MarshalOrDefault(event, "{}")
func MarshalOrDefault(v any, defaultValue string) string {
	data, err := json.Marshal(v)
	if err != nil {
		return defaultValue
	}

	return string(data)
}

// JSONPath resolves a dot-notation path inside a JSON document and returns
// the value as a string. Returns an error wrapping ErrPathNotFound when the
// path resolves to nothing, including when the document is malformed.
//
// Example:
//
//	region, err := safe.JSONPath(doc, "cluster.region")
//	if err != nil {
//	    return fmt.Errorf("read region: %w", err)
//	}
func JSONPath(doc, path string) (string, error) {
	result := gjson.Get(doc, path)
	if !result.Exists() {
		return "", fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	return result.String(), nil
}

// JSONPathOrDefault resolves a dot-notation path inside a JSON document,
// returning defaultValue when the path resolves to nothing.
//
// Example:
//
//	region := safe.JSONPathOrDefault(doc, "cluster.region", "us-east-1")
func JSONPathOrDefault(doc, path, defaultValue string) string {
	result := gjson.Get(doc, path)
	if !result.Exists() {
		return defaultValue
	}

	return result.String()
}
