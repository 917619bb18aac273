package runtime

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/Plasma-Engine/plasma-engine-shared/shared"
	"github.com/Plasma-Engine/plasma-engine-shared/shared/log"
)

// Logger is the minimal logging surface the recovery helpers require.
// shared/log.Logger satisfies it, as does any type exposing the same
// structured Log method.
type Logger interface {
	Log(ctx context.Context, level log.Level, msg string, fields ...log.Field)
}

// Recover recovers from a panic, logs it with the stack trace through the
// logger carried by ctx and records it on the active span, then lets the
// goroutine keep running. Use it in defer statements for workers and handlers
// that must survive panics.
//
//	defer runtime.Recover(ctx, "report-worker")
func Recover(ctx context.Context, name string) {
	if recovered := recover(); recovered != nil {
		if ctx == nil {
			ctx = context.Background()
		}

		stack := debug.Stack()
		logPanicWithStack(ctx, shared.NewLoggerFromContext(ctx), name, recovered, stack)
		RecordPanicToSpan(ctx, recovered, stack, name)
	}
}

// RecoverAndCrash recovers from a panic, logs it and records it on the active
// span, then re-panics with the original value. Use it for critical sections
// where continuing after a panic would leave corrupted state behind.
func RecoverAndCrash(ctx context.Context, name string) {
	if recovered := recover(); recovered != nil {
		if ctx == nil {
			ctx = context.Background()
		}

		stack := debug.Stack()
		logPanicWithStack(ctx, shared.NewLoggerFromContext(ctx), name, recovered, stack)
		RecordPanicToSpan(ctx, recovered, stack, name)

		panic(recovered)
	}
}

// Go launches fn on a new goroutine with panic recovery already installed.
// The name identifies the goroutine in log entries and span events. A nil fn
// is ignored.
func Go(ctx context.Context, name string, fn func(context.Context)) {
	if fn == nil {
		return
	}

	go func() {
		defer Recover(ctx, name)

		fn(ctx)
	}()
}

// HandlePanicValue processes a panic value already recovered by an external
// mechanism, logging it and recording it on the active span without calling
// recover itself. A nil panicValue is a no-op.
func HandlePanicValue(ctx context.Context, logger Logger, panicValue any, name string) {
	if panicValue == nil {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	stack := debug.Stack()
	logPanicWithStack(ctx, logger, name, panicValue, stack)
	RecordPanicToSpan(ctx, panicValue, stack, name)
}

// logPanicWithStack logs the panic with a pre-captured stack trace. A nil
// logger drops the entry rather than panicking inside a recovery path.
func logPanicWithStack(ctx context.Context, logger Logger, name string, panicValue any, stack []byte) {
	if logger == nil {
		return
	}

	logger.Log(ctx, log.LevelError, "panic recovered",
		log.String("goroutine", name),
		log.String("panic", fmt.Sprintf("%v", panicValue)),
		log.String("stack", string(stack)))
}
