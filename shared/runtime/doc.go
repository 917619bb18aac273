// Package runtime provides panic recovery and operation timing helpers for
// goroutines, workers and request handlers.
//
// The recovery helpers capture the panic value and stack trace, log them
// through the logger carried by the context and record them on the active
// span. Recover keeps the goroutine alive, RecoverAndCrash re-panics after
// recording, and Go launches a goroutine with recovery already installed:
//
//	func worker(ctx context.Context) {
//		defer runtime.Recover(ctx, "balance-worker")
//		// ...
//	}
//
//	runtime.Go(ctx, "cache-refresher", func(ctx context.Context) {
//		// ...
//	})
//
// The timing helpers wrap an operation in a span and emit a debug log entry
// with the elapsed wall time once the operation returns:
//
//	result, err := runtime.TimedWithResult(ctx, "load-profile", loadProfile)
package runtime
