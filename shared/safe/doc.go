// Package safe provides panic-free helpers for slices, math, regex, JSON,
// type casts, and file access.
//
// Core APIs include bounds-checked slice accessors (First, Last, At), decimal
// division helpers (Divide, Percentage), cached regex compilation (Compile,
// MatchString), JSON decode/encode with fallbacks (UnmarshalOrDefault,
// JSONPath), type assertions with fallbacks (Cast, CastOrDefault), and file
// helpers that create parent directories (WriteFile).
//
// Functions that can fail either return explicit errors or accept a default
// value to fall back on, so callers never have to recover from a panic in
// production paths.
package safe
