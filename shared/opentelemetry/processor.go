package opentelemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Plasma-Engine/plasma-engine-shared/shared"
)

// CorrelationIDAttrKey is the span attribute carrying the request correlation ID.
const CorrelationIDAttrKey = "correlation.id"

// CorrelationSpanProcessor stamps the correlation ID carried by the starting
// context onto every new span. Spans started from contexts without one are
// left untouched.
//
// Usage:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithSpanProcessor(opentelemetry.CorrelationSpanProcessor{}),
//	    // ... other options
//	)
type CorrelationSpanProcessor struct{}

func (CorrelationSpanProcessor) OnStart(ctx context.Context, s sdktrace.ReadWriteSpan) {
	if correlationID := shared.NewCorrelationIDFromContext(ctx); correlationID != "" {
		s.SetAttributes(attribute.String(CorrelationIDAttrKey, correlationID))
	}
}

func (CorrelationSpanProcessor) OnEnd(sdktrace.ReadOnlySpan) {}

func (CorrelationSpanProcessor) Shutdown(context.Context) error { return nil }

func (CorrelationSpanProcessor) ForceFlush(context.Context) error { return nil }

// redactAttributesByKey applies the redactor to an attribute list. The
// segment after the last dot of the key is matched as the field name and the
// full key as its path, so "user.password" matches a ^password$ field rule.
// Dropped attributes are removed from the result. A nil redactor returns the
// input unchanged.
func redactAttributesByKey(attrs []attribute.KeyValue, redactor *Redactor) []attribute.KeyValue {
	if redactor == nil {
		return attrs
	}

	result := make([]attribute.KeyValue, 0, len(attrs))

	for _, attr := range attrs {
		key := string(attr.Key)

		field := key
		if idx := strings.LastIndex(key, "."); idx >= 0 {
			field = key[idx+1:]
		}

		action, matched := redactor.actionFor(key, field)
		if !matched {
			result = append(result, attr)
			continue
		}

		switch action {
		case RedactionDrop:
		case RedactionHash:
			result = append(result, attribute.String(key, hashValue(attr.Value.Emit())))
		default:
			result = append(result, attribute.String(key, redactor.maskValue))
		}
	}

	return result
}
