package zap

import (
	"context"
	"time"

	logpkg "github.com/Plasma-Engine/plasma-engine-shared/shared/log"
	"github.com/Plasma-Engine/plasma-engine-shared/shared/security"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field aliases zap.Field so callers of the convenience methods do not need
// a second zap import.
type Field = zap.Field

// Logger adapts a zap.Logger to the log.Logger interface. Every write path
// masks sensitive field values and escapes control characters, and when the
// context carries an active span the trace and span ids are attached.
//
// The zero value and a nil *Logger are both usable; they log nowhere.
type Logger struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
}

var _ logpkg.Logger = (*Logger)(nil)

// base returns the wrapped zap logger, or a nop logger when the receiver is
// nil or was never initialized.
func (l *Logger) base() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// child wraps zl, carrying over the parent's level handle.
func (l *Logger) child(zl *zap.Logger) *Logger {
	c := &Logger{logger: zl}
	if l != nil {
		c.atomicLevel = l.atomicLevel
	}

	return c
}

// Log implements log.Logger. Field values are masked and sanitized on the
// way through, and trace_id/span_id are appended when ctx carries an active
// span so log lines correlate with traces.
func (l *Logger) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	entry := l.base().Check(logLevelToZap(level), sanitizeString(msg))
	if entry == nil {
		return
	}

	entry.Write(append(toZapFields(fields), traceFields(ctx)...)...)
}

// With returns a child logger whose fields pass through the same masking
// and sanitization as Log.
//
//nolint:ireturn
func (l *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	return l.child(l.base().With(toZapFields(fields)...))
}

// WithGroup returns a child logger that nests subsequent fields under name.
//
//nolint:ireturn
func (l *Logger) WithGroup(name string) logpkg.Logger {
	return l.child(l.base().With(zap.Namespace(name)))
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level logpkg.Level) bool {
	return l.base().Core().Enabled(logLevelToZap(level))
}

// Sync flushes buffered entries. It returns early when ctx is already done
// and abandons the flush if ctx expires while zap is still syncing.
func (l *Logger) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	flushed := make(chan error, 1)

	go func() {
		flushed <- l.base().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-flushed:
		return err
	}
}

// WithZapFields returns a child logger with raw zap fields attached. The
// fields bypass masking and sanitization; the caller owns their content.
func (l *Logger) WithZapFields(fields ...Field) *Logger {
	return l.child(l.base().With(fields...))
}

// Debug writes msg at debug level.
func (l *Logger) Debug(msg string, fields ...Field) {
	l.base().Debug(sanitizeString(msg), fields...)
}

// Info writes msg at info level.
func (l *Logger) Info(msg string, fields ...Field) {
	l.base().Info(sanitizeString(msg), fields...)
}

// Warn writes msg at warn level.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.base().Warn(sanitizeString(msg), fields...)
}

// Error writes msg at error level.
func (l *Logger) Error(msg string, fields ...Field) {
	l.base().Error(sanitizeString(msg), fields...)
}

// Raw exposes the wrapped zap logger.
func (l *Logger) Raw() *zap.Logger {
	return l.base()
}

// Level returns the handle that adjusts the logger's level at runtime.
func (l *Logger) Level() zap.AtomicLevel {
	if l == nil {
		return zap.AtomicLevel{}
	}

	return l.atomicLevel
}

// Any builds a field from any value.
func Any(key string, value any) Field { return zap.Any(key, value) }

// String builds a string field.
func String(key, value string) Field { return zap.String(key, value) }

// Int builds an int field.
func Int(key string, value int) Field { return zap.Int(key, value) }

// Bool builds a bool field.
func Bool(key string, value bool) Field { return zap.Bool(key, value) }

// Duration builds a duration field.
func Duration(key string, value time.Duration) Field { return zap.Duration(key, value) }

// ErrorField builds a field from err under the standard "error" key.
func ErrorField(err error) Field { return zap.Error(err) }

// traceFields extracts trace correlation fields from ctx. It returns nil
// when ctx is nil or carries no valid span context.
func traceFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}

	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}

// toZapFields converts log fields for the wrapped logger, masking sensitive
// keys and escaping control characters in string values.
func toZapFields(fields []logpkg.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, toZapField(f))
	}

	return out
}

func toZapField(f logpkg.Field) zap.Field {
	if security.IsSensitiveField(f.Key) {
		return zap.String(f.Key, security.ObfuscatedValue)
	}

	if s, ok := f.Value.(string); ok {
		return zap.String(f.Key, sanitizeString(s))
	}

	return zap.Any(f.Key, f.Value)
}

var zapLevels = map[logpkg.Level]zapcore.Level{
	logpkg.LevelDebug: zapcore.DebugLevel,
	logpkg.LevelInfo:  zapcore.InfoLevel,
	logpkg.LevelWarn:  zapcore.WarnLevel,
	logpkg.LevelError: zapcore.ErrorLevel,
}

// logLevelToZap maps a log level onto its zapcore equivalent. Unknown levels
// degrade to info.
func logLevelToZap(level logpkg.Level) zapcore.Level {
	if mapped, ok := zapLevels[level]; ok {
		return mapped
	}

	return zapcore.InfoLevel
}
