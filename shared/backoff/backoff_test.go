//go:build unit

package backoff

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayGrowsGeometrically(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial time.Duration
		factor  float64
		attempt int
		want    time.Duration
	}{
		{"first attempt gets the initial delay", 100 * time.Millisecond, 2.0, 0, 100 * time.Millisecond},
		{"second attempt doubles", 100 * time.Millisecond, 2.0, 1, 200 * time.Millisecond},
		{"third attempt quadruples", 100 * time.Millisecond, 2.0, 2, 400 * time.Millisecond},
		{"fourth attempt is 8x", 100 * time.Millisecond, 2.0, 3, 800 * time.Millisecond},
		{"fractional factor", time.Second, 1.5, 2, 2250 * time.Millisecond},
		{"factor 1 keeps the delay flat", 250 * time.Millisecond, 1.0, 9, 250 * time.Millisecond},
		{"factor below 1 shrinks the delay", time.Second, 0.5, 2, 250 * time.Millisecond},
		{"negative attempt clamps to 0", 100 * time.Millisecond, 2.0, -5, 100 * time.Millisecond},
		{"zero initial yields nothing", 0, 2.0, 5, 0},
		{"negative initial yields nothing", -100 * time.Millisecond, 2.0, 5, 0},
		{"zero factor kills later attempts", 100 * time.Millisecond, 0, 1, 0},
		{"zero factor leaves the first attempt intact", 100 * time.Millisecond, 0, 0, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Delay(tt.initial, tt.factor, tt.attempt))
		})
	}
}

func TestDelayClampsOverflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial time.Duration
		factor  float64
		attempt int
	}{
		{"hour initial doubled 40 times", time.Hour, 2.0, 40},
		{"second initial doubled 50 times", time.Second, 2.0, 50},
		{"day initial tripled 30 times", 24 * time.Hour, 3.0, 30},
		{"absurd factor", time.Millisecond, 1e12, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Delay(tt.initial, tt.factor, tt.attempt)

			assert.Equal(t, time.Duration(math.MaxInt64), got)
			assert.Positive(t, int64(got), "clamped result must never wrap negative")
		})
	}
}

func TestDelayNegativeFactor(t *testing.T) {
	t.Parallel()

	// Odd powers of a negative factor come out negative and degrade to 0.
	assert.Equal(t, time.Duration(0), Delay(time.Second, -2.0, 1))
	assert.Equal(t, 4*time.Second, Delay(time.Second, -2.0, 2))
}

func TestDelaySeriesTotal(t *testing.T) {
	t.Parallel()

	var total time.Duration

	for attempt := range 4 {
		total += Delay(50*time.Millisecond, 2.0, attempt)
	}

	// 50 + 100 + 200 + 400
	assert.Equal(t, 750*time.Millisecond, total)
}

// drawsWithin asserts that repeated draws stay inside [0, upper).
func drawsWithin(t *testing.T, upper time.Duration, draws int, draw func() time.Duration) {
	t.Helper()

	for range draws {
		got := draw()

		assert.GreaterOrEqual(t, got, time.Duration(0))
		assert.Less(t, got, upper)
	}
}

func TestFullJitterStaysBelowDelay(t *testing.T) {
	t.Parallel()

	for _, delay := range []time.Duration{100 * time.Millisecond, time.Second, 10 * time.Second} {
		drawsWithin(t, delay, 100, func() time.Duration { return FullJitter(delay) })
	}
}

func TestFullJitterNonPositiveDelay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Duration(0), FullJitter(0))
	assert.Equal(t, time.Duration(0), FullJitter(-100*time.Millisecond))
}

func TestFullJitterCentersAroundHalfTheDelay(t *testing.T) {
	t.Parallel()

	const draws = 1000

	delay := 100 * time.Millisecond

	var sum time.Duration

	for range draws {
		sum += FullJitter(delay)
	}

	mean := sum / draws

	// A uniform [0, delay) draw averages delay/2; allow 20% slack.
	assert.InDelta(t, int64(delay/2), int64(mean), float64(delay/5),
		"mean of %d draws drifted to %v", draws, mean)
}

func TestDelayWithJitterStaysBelowCeiling(t *testing.T) {
	t.Parallel()

	initial := 100 * time.Millisecond

	for attempt := range 5 {
		ceiling := Delay(initial, 2.0, attempt)

		drawsWithin(t, ceiling, 50, func() time.Duration {
			return DelayWithJitter(initial, 2.0, attempt)
		})
	}
}

func timedSleep(ctx context.Context, duration time.Duration) (time.Duration, error) {
	start := time.Now()
	err := Sleep(ctx, duration)

	return time.Since(start), err
}

func TestSleepRunsToCompletion(t *testing.T) {
	t.Parallel()

	elapsed, err := timedSleep(context.Background(), 50*time.Millisecond)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

func TestSleepInterruptedByCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	elapsed, err := timedSleep(ctx, time.Second)

	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestSleepInterruptedByDeadline(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := timedSleep(ctx, time.Second)

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSleepNonPositiveDurations(t *testing.T) {
	t.Parallel()

	elapsed, err := timedSleep(context.Background(), 0)

	require.NoError(t, err)
	assert.Less(t, elapsed, 10*time.Millisecond)

	_, err = timedSleep(context.Background(), -time.Second)

	require.NoError(t, err)
}

func TestSleepCancelledBeforeCall(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	elapsed, err := timedSleep(ctx, time.Second)

	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, elapsed, 100*time.Millisecond)
}

func TestFallbackJitterRange(t *testing.T) {
	t.Parallel()

	const maxValue = 1000

	seen := map[int64]struct{}{}

	for range 200 {
		got := fallbackJitter(maxValue)

		assert.GreaterOrEqual(t, got, int64(0))
		assert.Less(t, got, int64(maxValue))

		seen[got] = struct{}{}
	}

	assert.Greater(t, len(seen), 1, "draws should not all collapse to one value")
}
