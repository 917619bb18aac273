package log

import "context"

// NopLogger discards every log event. It is the library's default wherever a
// logger is optional: the retry wrapper, the context helpers and the crypto
// module all fall back to it instead of checking for nil before each call.
type NopLogger struct{}

var _ Logger = (*NopLogger)(nil)

// NewNop returns a ready-to-use no-op logger.
func NewNop() Logger {
	return &NopLogger{}
}

// Log discards the event.
func (l *NopLogger) Log(context.Context, Level, string, ...Field) {}

// With returns the receiver unchanged; there is nothing to attach fields to.
//
//nolint:ireturn
func (l *NopLogger) With(...Field) Logger { return l }

// WithGroup returns the receiver unchanged.
//
//nolint:ireturn
func (l *NopLogger) WithGroup(string) Logger { return l }

// Enabled reports false for every level so callers can skip field assembly.
func (l *NopLogger) Enabled(Level) bool { return false }

// Sync has nothing to flush.
func (l *NopLogger) Sync(context.Context) error { return nil }
