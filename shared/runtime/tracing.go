package runtime

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrPanic is the sentinel wrapped into the error recorded on a span when a
// panic is captured. Callers inspecting span events can match it with errors.Is.
var ErrPanic = errors.New("panic")

// PanicSpanEventName is the span event name used for recovered panics.
const PanicSpanEventName = "panic.recovered"

// RecordPanicToSpan records a recovered panic on the span carried by ctx.
//
// It adds a PanicSpanEventName event with the panic value, the captured stack
// trace and the goroutine name, records the panic as a span error and sets the
// span status to codes.Error. When ctx carries no span, or the span is not
// recording, the call is a no-op.
func RecordPanicToSpan(ctx context.Context, panicValue any, stack []byte, goroutineName string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.AddEvent(PanicSpanEventName, trace.WithAttributes(
		attribute.String("panic.value", fmt.Sprintf("%v", panicValue)),
		attribute.String("panic.stack", string(stack)),
		attribute.String("panic.goroutine_name", goroutineName),
	))

	span.RecordError(fmt.Errorf("%w: %v", ErrPanic, panicValue))
	span.SetStatus(codes.Error, "panic recovered in "+goroutineName)
}
