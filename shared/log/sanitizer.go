package log

import (
	"context"
	"fmt"
	"strings"
)

// forgeryReplacer strips characters an attacker could use to forge extra
// log lines or terminal escapes (CWE-117) out of caller-supplied values.
var forgeryReplacer = strings.NewReplacer(
	"\n", " ",
	"\r", " ",
	"\t", " ",
	"\x1b", "",
)

// SanitizeValue returns value with log-forging characters neutralized.
// Use it on any string that originates outside the process before attaching
// it to a log event.
func SanitizeValue(value string) string {
	return forgeryReplacer.Replace(value)
}

// SafeError logs err through logger at error level. With production set the
// entry carries only the error's concrete type, keeping secrets embedded in
// error text out of aggregated logs; otherwise the full error is attached.
func SafeError(logger Logger, ctx context.Context, msg string, err error, production bool) {
	if logger == nil || err == nil || !logger.Enabled(LevelError) {
		return
	}

	field := Err(err)
	if production {
		field = String("error_type", fmt.Sprintf("%T", err))
	}

	logger.Log(ctx, LevelError, msg, field)
}
