package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Plasma-Engine/plasma-engine-shared/shared/log"
)

// ErrNilParentContext indicates that a nil parent context was provided.
var ErrNilParentContext = errors.New("nil parent context")

// defaultTracerName is the instrumentation name used when a context carries no tracer.
const defaultTracerName = "shared.default"

const (
	correlationIDPrefix = "pe"

	// correlationEntropyBytes random bytes render as 16 hex characters.
	correlationEntropyBytes = 8
)

// ---- Context container ----

type customContextKey string

// CustomContextKey is the context key used to store CustomContextKeyValue.
var CustomContextKey = customContextKey("shared_context")

// CustomContextKeyValue holds the request-scoped facilities we attach to context.
type CustomContextKeyValue struct {
	CorrelationID string
	Tracer        trace.Tracer
	Logger        log.Logger
}

// cloneContextValues copies the container stored in ctx so that derived
// contexts never mutate the values visible to their ancestors. A missing or
// wrong-typed value yields an empty non-nil container.
func cloneContextValues(ctx context.Context) *CustomContextKeyValue {
	values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if !ok || values == nil {
		return &CustomContextKeyValue{}
	}

	return &CustomContextKeyValue{
		CorrelationID: values.CorrelationID,
		Tracer:        values.Tracer,
		Logger:        values.Logger,
	}
}

// ---- Logger helpers ----

// NewLoggerFromContext extracts the Logger carried by ctx, or a NopLogger
// when none is present.
//
//nolint:ireturn
func NewLoggerFromContext(ctx context.Context) log.Logger {
	if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok &&
		values != nil && values.Logger != nil {
		return values.Logger
	}

	return &log.NopLogger{}
}

// ContextWithLogger returns a context carrying the given Logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	values := cloneContextValues(ctx)
	values.Logger = logger

	return context.WithValue(ctx, CustomContextKey, values)
}

// ---- Tracer helpers ----

// NewTracerFromContext extracts the trace.Tracer carried by ctx, or the
// globally registered tracer when none is present.
//
//nolint:ireturn
func NewTracerFromContext(ctx context.Context) trace.Tracer {
	if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok &&
		values != nil && values.Tracer != nil {
		return values.Tracer
	}

	return otel.Tracer(defaultTracerName)
}

// ContextWithTracer returns a context carrying the given trace.Tracer.
func ContextWithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	values := cloneContextValues(ctx)
	values.Tracer = tracer

	return context.WithValue(ctx, CustomContextKey, values)
}

// ---- Correlation ID helpers ----

// NewCorrelationID generates a correlation identifier of the form
// "pe-<unix seconds>-<16 hex chars>" for request tracking across services.
func NewCorrelationID() string {
	buf := make([]byte, correlationEntropyBytes)
	// crypto/rand.Read cannot fail on supported platforms.
	_, _ = rand.Read(buf)

	return fmt.Sprintf("%s-%d-%s", correlationIDPrefix, time.Now().Unix(), hex.EncodeToString(buf))
}

// ContextWithCorrelationID returns a context carrying the given correlation ID.
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	values := cloneContextValues(ctx)
	values.CorrelationID = correlationID

	return context.WithValue(ctx, CustomContextKey, values)
}

// NewCorrelationIDFromContext returns the correlation ID carried by ctx, or
// an empty string when none is present. It never generates one; use
// NewCorrelationID or NewTrackingFromContext for that.
func NewCorrelationIDFromContext(ctx context.Context) string {
	if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && values != nil {
		return values.CorrelationID
	}

	return ""
}

// ---- Tracking bundle ----

// TrackingComponents bundles the request-scoped facilities extracted from a context.
type TrackingComponents struct {
	Logger        log.Logger
	Tracer        trace.Tracer
	CorrelationID string
}

// NewTrackingFromContext extracts logger, tracer and correlation ID from ctx,
// substituting functional defaults for whatever is missing: a NopLogger, the
// globally registered tracer, and a freshly generated correlation ID.
//
//nolint:ireturn
func NewTrackingFromContext(ctx context.Context) (log.Logger, trace.Tracer, string) {
	tracking := trackingFromContext(ctx)

	return tracking.Logger, tracking.Tracer, tracking.CorrelationID
}

func trackingFromContext(ctx context.Context) TrackingComponents {
	values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if !ok || values == nil {
		values = &CustomContextKeyValue{}
	}

	tracking := TrackingComponents{
		Logger:        values.Logger,
		Tracer:        values.Tracer,
		CorrelationID: strings.TrimSpace(values.CorrelationID),
	}

	if tracking.Logger == nil {
		tracking.Logger = &log.NopLogger{}
	}

	if tracking.Tracer == nil {
		tracking.Tracer = otel.Tracer(defaultTracerName)
	}

	if tracking.CorrelationID == "" {
		tracking.CorrelationID = NewCorrelationID()
	}

	return tracking
}

// ---- Deadline management ----

// WithTimeoutSafe derives a context that expires after timeout without ever
// extending a deadline the parent already carries. A nil parent yields
// ErrNilParentContext instead of the panic context.WithTimeout would raise.
//
// When the parent expires sooner than timeout, the derived context simply
// inherits that earlier deadline; Deadline() keeps reporting the parent's
// value.
func WithTimeoutSafe(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc, error) {
	if parent == nil {
		return nil, nil, ErrNilParentContext
	}

	if deadline, ok := parent.Deadline(); ok {
		if time.Until(deadline) < timeout {
			ctx, cancel := context.WithCancel(parent)
			return ctx, cancel, nil
		}
	}

	ctx, cancel := context.WithTimeout(parent, timeout)

	return ctx, cancel, nil
}
