package runtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Plasma-Engine/plasma-engine-shared/shared"
	"github.com/Plasma-Engine/plasma-engine-shared/shared/log"
)

// ErrNilOperation is returned when Timed or TimedWithResult receives a nil
// operation.
var ErrNilOperation = errors.New("nil operation")

// Timed runs op inside a span named after operation and logs the elapsed wall
// time at debug level once it returns. The log entry is emitted on both the
// success and the failure path, and op's error is returned unchanged.
func Timed(ctx context.Context, operation string, op func(context.Context) error) error {
	if op == nil {
		return ErrNilOperation
	}

	_, err := TimedWithResult(ctx, operation, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})

	return err
}

// TimedWithResult runs op inside a span named after operation, records the
// elapsed wall time as a span attribute and logs it at debug level through the
// logger carried by ctx. On failure the error is recorded on the span and the
// span status is set to codes.Error; op's result and error are returned
// unchanged either way.
func TimedWithResult[T any](ctx context.Context, operation string, op func(context.Context) (T, error)) (T, error) {
	if op == nil {
		var zero T
		return zero, ErrNilOperation
	}

	if ctx == nil {
		ctx = context.Background()
	}

	logger := shared.NewLoggerFromContext(ctx)
	tracer := shared.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, operation)
	defer span.End()

	start := time.Now()
	result, err := op(ctx)
	elapsed := time.Since(start)

	span.SetAttributes(attribute.Float64("duration_ms", durationMillis(elapsed)))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	logger.Log(ctx, log.LevelDebug, formatElapsed(operation, elapsed),
		log.String("operation", operation),
		log.Duration("duration", elapsed))

	return result, err
}

// Measure starts a wall clock for operation and returns a function that logs
// the elapsed time at debug level when called. It is the lightweight variant
// of Timed for defer-style measurement without a span:
//
//	defer runtime.Measure(ctx, "rebuild-index")()
func Measure(ctx context.Context, operation string) func() {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := shared.NewLoggerFromContext(ctx)
	start := time.Now()

	return func() {
		elapsed := time.Since(start)

		logger.Log(ctx, log.LevelDebug, formatElapsed(operation, elapsed),
			log.String("operation", operation),
			log.Duration("duration", elapsed))
	}
}

func formatElapsed(operation string, elapsed time.Duration) string {
	return fmt.Sprintf("%s executed in %.2fms", operation, durationMillis(elapsed))
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
