// Package backoff provides geometric delay, jitter, and context-aware sleep
// primitives for retry flows and rate limiting.
package backoff

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	mrand "math/rand/v2"
	"time"
)

// Delay calculates the geometric delay for a zero-based attempt number:
// initial * factor^attempt, clamped to math.MaxInt64 on overflow.
//
// Non-positive initial delays return 0, negative attempts are treated as 0,
// and factors below zero that would produce a negative or undefined result
// return 0.
func Delay(initial time.Duration, factor float64, attempt int) time.Duration {
	if initial <= 0 {
		return 0
	}

	if attempt < 0 {
		attempt = 0
	}

	scaled := float64(initial) * math.Pow(factor, float64(attempt))

	switch {
	case math.IsNaN(scaled), scaled <= 0:
		return 0
	case scaled >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(scaled)
}

// FullJitter draws a uniformly random duration from [0, delay), the full
// jitter strategy for desynchronizing retry storms. Randomness comes from
// crypto/rand, degrading to a seeded math/rand/v2 generator when the system
// entropy source fails. Non-positive delays yield 0.
func FullJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}

	drawn, err := rand.Int(rand.Reader, big.NewInt(int64(delay)))
	if err != nil {
		return time.Duration(fallbackJitter(int64(delay)))
	}

	return time.Duration(drawn.Int64())
}

// midpointDivisor halves the ceiling when no randomness is available at all.
const midpointDivisor = 2

// fallbackJitter produces a jitter value when crypto/rand.Int fails. It first
// tries to seed a math/rand/v2 PCG from raw crypto/rand bytes, which uses a
// different code path and may still succeed. If even that fails, it returns
// the midpoint so backoff never stalls waiting for entropy.
func fallbackJitter(maxValue int64) int64 {
	var seed [8]byte

	if _, err := rand.Read(seed[:]); err != nil {
		return maxValue / midpointDivisor
	}

	rng := mrand.New(mrand.NewPCG(binary.LittleEndian.Uint64(seed[:]), 0)) // #nosec G404 -- crypto entropy already failed

	return rng.Int64N(maxValue)
}

// DelayWithJitter combines Delay with FullJitter, returning a random duration
// in [0, initial * factor^attempt). This is the "full jitter" strategy for
// spreading out retry storms.
func DelayWithJitter(initial time.Duration, factor float64, attempt int) time.Duration {
	return FullJitter(Delay(initial, factor, attempt))
}

// Sleep suspends the calling goroutine for duration, honoring context
// cancellation. Returns nil when the sleep completes, or an error wrapping
// the context error when interrupted. Zero or negative durations return
// immediately.
func Sleep(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return nil
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("sleep interrupted: %w", ctx.Err())
	}
}
