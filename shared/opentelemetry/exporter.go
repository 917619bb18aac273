package opentelemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// RedactingSpanExporter rewrites span attributes with a Redactor before
// forwarding spans to the wrapped exporter. Completed spans reach span
// processors as immutable snapshots, so redaction happens at the exporter
// boundary where the span can be rebuilt.
//
// Usage:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(opentelemetry.NewRedactingSpanExporter(exporter, nil)),
//	)
type RedactingSpanExporter struct {
	exporter sdktrace.SpanExporter
	redactor *Redactor
}

// NewRedactingSpanExporter wraps exporter. A nil redactor falls back to
// NewDefaultRedactor. A nil exporter yields a drop-everything exporter.
func NewRedactingSpanExporter(exporter sdktrace.SpanExporter, redactor *Redactor) *RedactingSpanExporter {
	if redactor == nil {
		redactor = NewDefaultRedactor()
	}

	return &RedactingSpanExporter{exporter: exporter, redactor: redactor}
}

// ExportSpans redacts the attributes and event attributes of every span and
// forwards the rewritten snapshots. tracetest.SpanStub is the only public
// ReadOnlySpan constructor, so each span is rebuilt through a stub.
func (e *RedactingSpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if e.exporter == nil {
		return nil
	}

	redacted := make([]sdktrace.ReadOnlySpan, len(spans))

	for i, span := range spans {
		stub := tracetest.SpanStubFromReadOnlySpan(span)
		stub.Attributes = redactAttributesByKey(stub.Attributes, e.redactor)

		for j := range stub.Events {
			stub.Events[j].Attributes = redactAttributesByKey(stub.Events[j].Attributes, e.redactor)
		}

		redacted[i] = stub.Snapshot()
	}

	return e.exporter.ExportSpans(ctx, redacted)
}

// Shutdown shuts down the wrapped exporter.
func (e *RedactingSpanExporter) Shutdown(ctx context.Context) error {
	if e.exporter == nil {
		return nil
	}

	return e.exporter.Shutdown(ctx)
}
