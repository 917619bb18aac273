package zap

import "strings"

// controlEscapes rewrites the control characters that can terminate or
// realign a console log line (CWE-117 log forging) into their escaped
// two-character forms. The JSON encoder escapes these on its own; the
// console encoder used during development does not.
var controlEscapes = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// sanitizeString returns s with its line-control characters escaped.
func sanitizeString(s string) string {
	return controlEscapes.Replace(s)
}
