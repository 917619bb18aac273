// Package retry wraps fallible operations with configurable retry attempts
// and geometric backoff between them.
//
// Every failure is retried until the attempt budget is exhausted; the error
// from the final attempt is returned to the caller unchanged. Waits between
// attempts honor context cancellation.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/Plasma-Engine/plasma-engine-shared/shared/backoff"
	"github.com/Plasma-Engine/plasma-engine-shared/shared/log"
)

// Defaults applied when an option is absent or carries a non-positive value.
const (
	DefaultMaxAttempts = 3
	DefaultDelay       = 1 * time.Second
	DefaultBackoff     = 2.0
)

// ErrNilOperation is returned when Do or DoWithResult receives a nil operation.
var ErrNilOperation = errors.New("nil operation")

// Operation is a fallible unit of work without a result.
type Operation func(ctx context.Context) error

// OperationWithResult is a fallible unit of work producing a value.
type OperationWithResult[T any] func(ctx context.Context) (T, error)

type config struct {
	maxAttempts int
	delay       time.Duration
	backoff     float64
	jitter      bool
	logger      log.Logger
	onRetry     func(attempt int, err error, wait time.Duration)
}

// Option configures the retry behavior of Do and DoWithResult.
type Option func(*config)

// WithMaxAttempts sets the total number of attempts, including the first.
// Non-positive values keep DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithDelay sets the wait before the first retry. Subsequent waits grow by
// the backoff factor. Non-positive values keep DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithBackoff sets the multiplier applied to the wait after each failed
// attempt. Non-positive values keep DefaultBackoff.
func WithBackoff(factor float64) Option {
	return func(c *config) {
		if factor > 0 {
			c.backoff = factor
		}
	}
}

// WithFullJitter randomizes each wait uniformly in [0, wait). Off by
// default, so waits follow the plain geometric series.
func WithFullJitter() Option {
	return func(c *config) {
		c.jitter = true
	}
}

// WithLogger sets the logger used to report failed attempts at warn level.
// Defaults to a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnRetry registers a hook invoked after each failed attempt that will
// be retried, before the wait. attempt is the 1-based index of the attempt
// that just failed.
func WithOnRetry(hook func(attempt int, err error, wait time.Duration)) Option {
	return func(c *config) {
		c.onRetry = hook
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxAttempts: DefaultMaxAttempts,
		delay:       DefaultDelay,
		backoff:     DefaultBackoff,
		logger:      log.NewNop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Do invokes op until it succeeds or the attempt budget is exhausted.
//
// The first success returns nil immediately. Each failure is followed by a
// wait of delay * backoff^i, where i is the zero-based index of the failed
// attempt, so the waits form a geometric series. Every failure is retried;
// no error kind is exempt. When the final attempt fails, its error is
// returned unchanged.
//
// Cancelling ctx during a wait aborts the remaining attempts and returns an
// error wrapping the context error. The operation itself receives ctx and is
// responsible for honoring it mid-flight.
//
// Example:
//
//	err := retry.Do(ctx, func(ctx context.Context) error {
//	    return client.Ping(ctx)
//	}, retry.WithMaxAttempts(5), retry.WithDelay(200*time.Millisecond))
func Do(ctx context.Context, op Operation, opts ...Option) error {
	if op == nil {
		return ErrNilOperation
	}

	_, err := DoWithResult(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, opts...)

	return err
}

// DoWithResult invokes op until it succeeds or the attempt budget is
// exhausted, returning the value from the first successful attempt. Retry
// semantics are identical to Do; on exhaustion the zero value of T is
// returned alongside the final attempt's unchanged error.
//
// Example:
//
//	token, err := retry.DoWithResult(ctx, func(ctx context.Context) (string, error) {
//	    return client.FetchToken(ctx)
//	})
func DoWithResult[T any](ctx context.Context, op OperationWithResult[T], opts ...Option) (T, error) {
	var zero T

	if op == nil {
		return zero, ErrNilOperation
	}

	if ctx == nil {
		ctx = context.Background()
	}

	cfg := newConfig(opts...)

	var lastErr error

	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if attempt == cfg.maxAttempts {
			break
		}

		wait := backoff.Delay(cfg.delay, cfg.backoff, attempt-1)
		if cfg.jitter {
			wait = backoff.FullJitter(wait)
		}

		cfg.logger.Log(ctx, log.LevelWarn, "operation failed, retrying",
			log.Int("attempt", attempt),
			log.Int("max_attempts", cfg.maxAttempts),
			log.Duration("wait", wait),
			log.Err(err),
		)

		if cfg.onRetry != nil {
			cfg.onRetry(attempt, err, wait)
		}

		if sleepErr := backoff.Sleep(ctx, wait); sleepErr != nil {
			return zero, sleepErr
		}
	}

	return zero, lastErr
}
