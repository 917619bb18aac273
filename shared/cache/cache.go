// Package cache provides a TTL-bound memoizer for deterministic, expensive
// computations.
//
// A Memoizer caches the result of an operation per argument list. A stored
// value is served only while its age is strictly below the TTL; expired
// entries are recomputed on the next request and evicted lazily, never by a
// background sweep. Failed computations are never cached.
package cache

import (
	"errors"
	"time"
)

// DefaultTTL is the entry lifetime used when WithTTL is absent.
const DefaultTTL = 5 * time.Minute

// ErrNilOperation is returned when Do receives a nil operation.
var ErrNilOperation = errors.New("nil operation")

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Memoizer caches results of an operation keyed by its arguments.
//
// A Memoizer is not safe for concurrent use: it is scoped to a single
// logical caller, like a request handler or a worker loop. Callers that
// share one across goroutines must provide their own locking.
type Memoizer[T any] struct {
	name    string
	ttl     time.Duration
	now     func() time.Time
	entries map[Key]entry[T]
}

type options struct {
	ttl time.Duration
	now func() time.Time
}

// Option configures a Memoizer at construction.
type Option func(*options)

// WithTTL sets the entry lifetime. Non-positive values keep DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithClock replaces the time source, letting tests control expiry
// deterministically. Nil values keep the real clock.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// New creates a Memoizer for the operation identified by name. The name is
// part of every key, so two memoizers with different names never observe
// each other's entries even for identical arguments.
func New[T any](name string, opts ...Option) *Memoizer[T] {
	cfg := options{ttl: DefaultTTL, now: time.Now}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Memoizer[T]{
		name:    name,
		ttl:     cfg.ttl,
		now:     cfg.now,
		entries: make(map[Key]entry[T]),
	}
}

// Do returns the cached value for args when a live entry exists, without
// invoking op. Otherwise it invokes op, stores the result with a fresh
// expiry, and returns it. An entry is live while its age is strictly below
// the TTL; an expired entry found by a lookup is deleted before op runs.
//
// Errors from op propagate unchanged and nothing is stored, so the next
// call with the same args invokes op again. A nil Memoizer calls through
// without caching.
func (m *Memoizer[T]) Do(op func() (T, error), args ...any) (T, error) {
	var zero T

	if op == nil {
		return zero, ErrNilOperation
	}

	if m == nil {
		return op()
	}

	key := NewKey(m.name, args...)

	if e, ok := m.entries[key]; ok {
		if m.now().Before(e.expiresAt) {
			return e.value, nil
		}

		delete(m.entries, key)
	}

	value, err := op()
	if err != nil {
		return zero, err
	}

	m.entries[key] = entry[T]{value: value, expiresAt: m.now().Add(m.ttl)}

	return value, nil
}

// Len reports the number of live entries. Expired entries that have not yet
// been evicted by a lookup are not counted.
func (m *Memoizer[T]) Len() int {
	if m == nil {
		return 0
	}

	live := 0
	now := m.now()

	for _, e := range m.entries {
		if now.Before(e.expiresAt) {
			live++
		}
	}

	return live
}

// Flush drops every entry, live or expired.
func (m *Memoizer[T]) Flush() {
	if m == nil {
		return
	}

	m.entries = make(map[Key]entry[T])
}
