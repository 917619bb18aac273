package opentelemetry

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SetSpanAttributesFromStruct marshals valueStruct to JSON and records it as
// a string attribute under key.
func SetSpanAttributesFromStruct(span trace.Span, key string, valueStruct any) error {
	jsonBytes, err := json.Marshal(valueStruct)
	if err != nil {
		return err
	}

	span.SetAttributes(attribute.String(sanitizeUTF8(key), sanitizeUTF8(string(jsonBytes))))

	return nil
}

// SetSpanAttributesFromStructRedacted marshals valueStruct to JSON with the
// redactor's rules applied to every object field, then records the result as
// a string attribute under key. A nil redactor applies NewDefaultRedactor.
func SetSpanAttributesFromStructRedacted(span trace.Span, key string, valueStruct any, redactor *Redactor) error {
	if redactor == nil {
		redactor = NewDefaultRedactor()
	}

	processed, err := ObfuscateStruct(valueStruct, redactor)
	if err != nil {
		return err
	}

	jsonBytes, err := json.Marshal(processed)
	if err != nil {
		return err
	}

	span.SetAttributes(attribute.String(sanitizeUTF8(key), sanitizeUTF8(string(jsonBytes))))

	return nil
}

// sanitizeUTF8 replaces invalid byte sequences so the attribute survives
// OTLP marshaling.
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	return strings.ToValidUTF8(s, "�")
}
