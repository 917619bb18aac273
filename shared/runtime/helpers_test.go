//go:build unit

package runtime

import (
	"context"
	"sync"
	"time"

	"github.com/Plasma-Engine/plasma-engine-shared/shared/log"
)

// recordingLogger captures structured log entries for assertions. It satisfies
// log.Logger so it can travel inside a context, and is shared across the
// runtime test files.
type recordingLogger struct {
	mu      sync.Mutex
	entries []loggedEntry
	logged  chan struct{} // signals each captured entry
}

type loggedEntry struct {
	level  log.Level
	msg    string
	fields []log.Field
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{
		logged: make(chan struct{}, 1), // buffered to avoid blocking the logging goroutine
	}
}

func (l *recordingLogger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	l.mu.Lock()
	l.entries = append(l.entries, loggedEntry{level: level, msg: msg, fields: fields})
	l.mu.Unlock()

	select {
	case l.logged <- struct{}{}:
	default:
	}
}

func (l *recordingLogger) With(_ ...log.Field) log.Logger { return l }
func (l *recordingLogger) WithGroup(_ string) log.Logger  { return l }
func (l *recordingLogger) Enabled(_ log.Level) bool       { return true }
func (l *recordingLogger) Sync(context.Context) error     { return nil }

func (l *recordingLogger) snapshot() []loggedEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]loggedEntry, len(l.entries))
	copy(out, l.entries)

	return out
}

func (l *recordingLogger) wasPanicLogged() bool {
	for _, entry := range l.snapshot() {
		if entry.level == log.LevelError && entry.msg == "panic recovered" {
			return true
		}
	}

	return false
}

func (l *recordingLogger) waitForLog(timeout time.Duration) bool {
	select {
	case <-l.logged:
		return true
	case <-time.After(timeout):
		return false
	}
}

// fieldValue returns the value of the named field on the given entry.
func (l *recordingLogger) fieldValue(entryIndex int, key string) (any, bool) {
	entries := l.snapshot()
	if entryIndex < 0 || entryIndex >= len(entries) {
		return nil, false
	}

	for _, field := range entries[entryIndex].fields {
		if field.Key == key {
			return field.Value, true
		}
	}

	return nil, false
}
