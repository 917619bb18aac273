// Package zap provides adapters and helpers around zap-based logging.
//
// It bridges the shared/log abstraction to zap while preserving structured
// fields, stamping every entry with the owning service name, and teeing
// entries into the OpenTelemetry log bridge.
package zap
