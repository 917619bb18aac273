package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/Plasma-Engine/plasma-engine-shared/shared/log"
)

// Contains reports whether item occurs in slice.
func Contains[T comparable](slice []T, item T) bool {
	return slices.Contains(slice, item)
}

// Reverse reverses s in place and returns it for chaining.
func Reverse[T any](s []T) []T {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}

// IsUUID reports whether s parses as a UUID in any accepted textual form.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)

	return err == nil
}

// GenerateUUID returns a random v4 UUID as a string.
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateUUIDv7 returns a new time-ordered UUID. The error surfaces only
// when the system entropy source fails.
func GenerateUUIDv7() (uuid.UUID, error) {
	return uuid.NewV7()
}

// UUIDsToStrings renders each UUID in uuids in canonical form.
func UUIDsToStrings(uuids []uuid.UUID) []string {
	result := make([]string, len(uuids))
	for i := range uuids {
		result[i] = uuids[i].String()
	}

	return result
}

// SafeIntToUint64 converts val to uint64, substituting 1 for negative inputs.
func SafeIntToUint64(val int) uint64 {
	if val < 0 {
		return 1
	}

	return uint64(val)
}

// SafeInt64ToInt narrows val to int, clamping at the platform limits.
func SafeInt64ToInt(val int64) int {
	switch {
	case val > math.MaxInt:
		return math.MaxInt
	case val < math.MinInt:
		return math.MinInt
	}

	return int(val)
}

// SafeUintToInt narrows val to int, capping at math.MaxInt.
func SafeUintToInt(val uint) int {
	if val > math.MaxInt {
		return math.MaxInt
	}

	return int(val)
}

// SafeIntToUint32 converts value to uint32. Inputs outside [0, math.MaxUint32]
// fall back to defaultVal; when a logger is supplied the fallback is recorded
// at debug level under fieldName.
func SafeIntToUint32(value int, defaultVal uint32, logger log.Logger, fieldName string) uint32 {
	if value >= 0 && uint64(value) <= math.MaxUint32 {
		return uint32(value)
	}

	if logger != nil {
		logger.Log(
			context.Background(),
			log.LevelDebug,
			"uint32 conversion out of range, using default",
			log.String("field_name", fieldName),
			log.Int("value", value),
			log.Int("default", int(defaultVal)),
		)
	}

	return defaultVal
}

// StructToJSONString renders s as a compact JSON string.
func StructToJSONString(s any) (string, error) {
	encoded, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode struct as JSON: %w", err)
	}

	return string(encoded), nil
}

// MergeMaps applies source onto target following JSON Merge Patch rules:
// nil values delete keys, any other value overwrites. A nil target starts a
// fresh map. The returned map is target itself, mutated.
func MergeMaps(source, target map[string]any) map[string]any {
	if target == nil {
		target = make(map[string]any, len(source))
	}

	for key, value := range source {
		if value == nil {
			delete(target, key)

			continue
		}

		target[key] = value
	}

	return target
}

// DeepMerge merges override into base recursively and returns a new map.
// When both sides hold a nested map under the same key the maps are merged;
// for every other collision the override value wins. Neither input is
// modified.
func DeepMerge(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(override))

	for key, value := range base {
		result[key] = value
	}

	for key, value := range override {
		overrideMap, overrideIsMap := value.(map[string]any)

		if existing, ok := result[key]; ok && overrideIsMap {
			if existingMap, existingIsMap := existing.(map[string]any); existingIsMap {
				result[key] = DeepMerge(existingMap, overrideMap)

				continue
			}
		}

		result[key] = value
	}

	return result
}

// FlattenMap collapses nested maps into a single level, joining key segments
// with separator. An empty separator defaults to ".". Nested empty maps
// contribute no keys.
func FlattenMap(m map[string]any, separator string) map[string]any {
	if separator == "" {
		separator = "."
	}

	flat := make(map[string]any, len(m))
	flattenInto(flat, m, "", separator)

	return flat
}

func flattenInto(flat, m map[string]any, prefix, separator string) {
	for key, value := range m {
		flatKey := key
		if prefix != "" {
			flatKey = prefix + separator + key
		}

		if nested, ok := value.(map[string]any); ok {
			flattenInto(flat, nested, flatKey, separator)

			continue
		}

		flat[flatKey] = value
	}
}

// Chunk splits items into consecutive slices of at most size elements. The
// final chunk may be shorter. Returns nil for empty input or a non-positive
// size.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)

	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end:end])
	}

	return chunks
}

// Unique returns items with duplicates removed, keeping the first occurrence
// of each value in order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result
}

// UniqueBy returns items with duplicates removed, where identity is decided
// by the key function. The first occurrence of each key wins.
func UniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	result := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		result = append(result, item)
	}

	return result
}
