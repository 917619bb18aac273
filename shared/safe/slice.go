package safe

import (
	"errors"
	"fmt"
)

// ErrEmptySlice is returned when an element is requested from an empty slice.
var ErrEmptySlice = errors.New("empty slice")

// ErrIndexOutOfBounds is returned when an index falls outside the slice bounds.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// At returns the element at index. Indexes outside the slice bounds produce
// an ErrIndexOutOfBounds error naming both the index and the slice length.
//
// Example:
//
//	row, err := safe.At(rows, idx)
//	if err != nil {
//	    return fmt.Errorf("read row %d: %w", idx, err)
//	}
func At[T any](slice []T, index int) (T, error) {
	if index < 0 || index >= len(slice) {
		var zero T

		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, len(slice))
	}

	return slice[index], nil
}

// AtOrDefault returns the element at index, or defaultValue when index falls
// outside the slice bounds.
func AtOrDefault[T any](slice []T, index int, defaultValue T) T {
	if index < 0 || index >= len(slice) {
		return defaultValue
	}

	return slice[index]
}

// First returns the leading element of slice, or ErrEmptySlice when there is
// none.
func First[T any](slice []T) (T, error) {
	if len(slice) == 0 {
		var zero T

		return zero, ErrEmptySlice
	}

	return slice[0], nil
}

// FirstOrDefault returns the leading element of slice, or defaultValue when
// the slice is empty.
func FirstOrDefault[T any](slice []T, defaultValue T) T {
	return AtOrDefault(slice, 0, defaultValue)
}

// Last returns the trailing element of slice, or ErrEmptySlice when there is
// none.
func Last[T any](slice []T) (T, error) {
	if len(slice) == 0 {
		var zero T

		return zero, ErrEmptySlice
	}

	return slice[len(slice)-1], nil
}

// LastOrDefault returns the trailing element of slice, or defaultValue when
// the slice is empty.
func LastOrDefault[T any](slice []T, defaultValue T) T {
	return AtOrDefault(slice, len(slice)-1, defaultValue)
}
