// Package opentelemetry provides redaction helpers for trace pipelines.
//
// A Redactor applies ordered mask/hash/drop rules to field values, matched by
// field name and dotted path. RedactingSpanExporter rewrites span and event
// attributes with a Redactor before handing spans to the wrapped exporter,
// and CorrelationSpanProcessor stamps the correlation ID carried by a context
// onto every span it starts.
package opentelemetry
