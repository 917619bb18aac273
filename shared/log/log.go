package log

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Logger is the logging interface shared by every Plasma Engine service.
// The zap adapter is the production implementation; NopLogger is the
// default wherever a logger is optional.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level represents the severity of a log entry. Numbering is inverted from
// the slog and zap conventions: LevelError is 0 and LevelDebug is 3, so a
// logger's configured level acts as a verbosity ceiling. A logger set to
// LevelInfo emits error, warn and info entries and suppresses debug.
type Level uint8

// The four severities, most severe first.
const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

// String returns the lowercase name of the level, or "unknown" for values
// outside the defined range.
func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}

	return "unknown"
}

// ParseLevel converts a level name into a Level. Parsing is
// case-insensitive and accepts "warning" as an alias for "warn".
func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(lvl) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return LevelError, fmt.Errorf("not a valid Level: %q", lvl)
}

// Field is a typed key/value attribute attached to a log event.
type Field struct {
	Key   string
	Value any
}

// Any builds a field from an arbitrary value. Prefer the typed constructors
// where one fits; values passed through Any reach the sink as-is, so the
// caller is responsible for keeping secrets out of them.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// String builds a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Bool builds a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Duration builds a field carrying an elapsed time in its string form, so
// "1.5s" appears in the output instead of a bare nanosecond count.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Err builds the conventional "error" field.
func Err(err error) Field { return Field{Key: "error", Value: err} }
