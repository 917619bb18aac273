// Package pointers provides small helpers for pointer creation and
// dereferencing.
//
// Use it to cut boilerplate when assembling request payloads and test
// fixtures while keeping pointer semantics explicit at call sites.
package pointers
