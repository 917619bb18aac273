//go:build unit

package opentelemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/Plasma-Engine/plasma-engine-shared/shared/security"
)

type captureExporter struct {
	exported []sdktrace.ReadOnlySpan
	shutdown bool
}

func (c *captureExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	c.exported = append(c.exported, spans...)
	return nil
}

func (c *captureExporter) Shutdown(context.Context) error {
	c.shutdown = true
	return nil
}

func TestRedactingSpanExporter_RedactsExportedSpans(t *testing.T) {
	t.Parallel()

	redactor, err := NewRedactor([]RedactionRule{
		{FieldPattern: `(?i)^password$`, Action: RedactionMask},
		{FieldPattern: `(?i)^token$`, Action: RedactionDrop},
		{FieldPattern: `(?i)^document$`, Action: RedactionHash},
	}, "***")
	require.NoError(t, err)

	inner := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(NewRedactingSpanExporter(inner, redactor)),
	)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("exporter-test").Start(context.Background(), "checkout")
	span.SetAttributes(
		attribute.String("user.id", "u1"),
		attribute.String("user.password", "secret"),
		attribute.String("auth.token", "tok_123"),
		attribute.String("customer.document", "123456789"),
	)
	span.End()

	spans := inner.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "checkout", spans[0].Name)

	values := make(map[string]string, len(spans[0].Attributes))
	for _, attr := range spans[0].Attributes {
		values[string(attr.Key)] = attr.Value.AsString()
	}

	assert.Equal(t, "u1", values["user.id"])
	assert.Equal(t, "***", values["user.password"])
	assert.NotContains(t, values, "auth.token")
	assert.True(t, strings.HasPrefix(values["customer.document"], "sha256:"))
}

func TestRedactingSpanExporter_RedactsEventAttributes(t *testing.T) {
	t.Parallel()

	inner := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(NewRedactingSpanExporter(inner, nil)),
	)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("exporter-test").Start(context.Background(), "login")
	span.AddEvent("authenticated", trace.WithAttributes(
		attribute.String("password", "hunter2"),
		attribute.String("user", "alice"),
	))
	span.End()

	spans := inner.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "authenticated", spans[0].Events[0].Name)

	values := make(map[string]string, len(spans[0].Events[0].Attributes))
	for _, attr := range spans[0].Events[0].Attributes {
		values[string(attr.Key)] = attr.Value.AsString()
	}

	assert.Equal(t, security.ObfuscatedValue, values["password"])
	assert.Equal(t, "alice", values["user"])
}

func TestRedactingSpanExporter_DefaultRedactor(t *testing.T) {
	t.Parallel()

	inner := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(NewRedactingSpanExporter(inner, nil)),
	)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("exporter-test").Start(context.Background(), "call")
	span.SetAttributes(
		attribute.String("api_key", "sk-12345"),
		attribute.String("http.method", "GET"),
	)
	span.End()

	spans := inner.GetSpans()
	require.Len(t, spans, 1)

	values := make(map[string]string, len(spans[0].Attributes))
	for _, attr := range spans[0].Attributes {
		values[string(attr.Key)] = attr.Value.AsString()
	}

	assert.Equal(t, security.ObfuscatedValue, values["api_key"])
	assert.Equal(t, "GET", values["http.method"])
}

func TestRedactingSpanExporter_NilExporter(t *testing.T) {
	t.Parallel()

	exporter := NewRedactingSpanExporter(nil, nil)

	assert.NoError(t, exporter.ExportSpans(context.Background(), nil))
	assert.NoError(t, exporter.Shutdown(context.Background()))
}

func TestRedactingSpanExporter_ShutdownDelegates(t *testing.T) {
	t.Parallel()

	inner := &captureExporter{}
	exporter := NewRedactingSpanExporter(inner, nil)

	require.NoError(t, exporter.Shutdown(context.Background()))
	assert.True(t, inner.shutdown, "wrapped exporter Shutdown must be called")
}
