package shared

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Plasma-Engine/plasma-engine-shared/shared/safe"
)

var (
	uuidPathRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	htmlTagRegex  = regexp.MustCompile(`<[^>]+>`)
)

// RemoveAccents strips diacritical marks from value, so "café" becomes "cafe".
func RemoveAccents(value string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	result, _, err := transform.String(t, value)
	if err != nil {
		return "", err
	}

	return result, nil
}

// RemoveSpaces removes every whitespace character from value, including tabs
// and newlines.
func RemoveSpaces(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, value)
}

// IsNilOrEmpty reports whether s is nil or points to a blank string. The
// literals "null" and "nil" count as blank.
func IsNilOrEmpty(s *string) bool {
	if s == nil {
		return true
	}

	trimmed := strings.TrimSpace(*s)

	return trimmed == "" || trimmed == "null" || trimmed == "nil"
}

// CamelToSnakeCase converts value to snake_case by lowering each upper-case
// rune and prefixing it with an underscore.
func CamelToSnakeCase(value string) string {
	var sb strings.Builder

	for i, r := range value {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteRune('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

var accentClasses = buildAccentClasses()

func buildAccentClasses() map[rune]string {
	groups := []string{"aáàãâ", "eéèê", "ií", "oóõô", "uú", "cç"}

	classes := make(map[rune]string)

	for _, group := range groups {
		lowerClass := "[" + group + "]"
		upperClass := "[" + strings.ToUpper(group) + "]"

		for _, r := range group {
			classes[r] = lowerClass
		}

		for _, r := range strings.ToUpper(group) {
			classes[r] = upperClass
		}
	}

	return classes
}

// RegexIgnoreAccents widens each accentable character in pattern into a
// character class covering its accented forms, so a pattern built from "cafe"
// also matches "café".
func RegexIgnoreAccents(pattern string) string {
	var sb strings.Builder

	for _, r := range pattern {
		if class, ok := accentClasses[r]; ok {
			sb.WriteString(class)

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// RemoveChars drops every rune of value that appears as a key in chars.
func RemoveChars(value string, chars map[string]bool) string {
	var sb strings.Builder

	for _, r := range value {
		if chars[string(r)] {
			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// KeepChars keeps only the characters of value matched by the allowedChars
// character class body, such as "a-z0-9". An empty or invalid class leaves
// value unchanged.
func KeepChars(value, allowedChars string) string {
	if allowedChars == "" {
		return value
	}

	filtered, err := safe.ReplaceAllString("[^"+allowedChars+"]", value, "")
	if err != nil {
		return value
	}

	return filtered
}

// ReplaceUUIDWithPlaceholder replaces every UUID in path with ":id", which
// keeps route templates stable when grouping request paths.
func ReplaceUUIDWithPlaceholder(path string) string {
	return uuidPathRegex.ReplaceAllString(path, ":id")
}

// ValidateServerAddress returns value when it is a well-formed host:port
// address, and an empty string otherwise.
func ValidateServerAddress(value string) string {
	_, port, err := net.SplitHostPort(value)
	if err != nil || port == "" {
		return ""
	}

	return value
}

// HashSHA256 returns the hex-encoded SHA-256 digest of input.
func HashSHA256(input string) string {
	sum := sha256.Sum256([]byte(input))

	return hex.EncodeToString(sum[:])
}

// StringToInt parses value as an int. Returns 100 when value does not parse,
// which keeps pagination limits sane on malformed input.
func StringToInt(value string) int {
	number, err := strconv.Atoi(value)
	if err != nil {
		return 100
	}

	return number
}

// RemoveHTMLTags strips anything shaped like an HTML or XML tag from value.
func RemoveHTMLTags(value string) string {
	return htmlTagRegex.ReplaceAllString(value, "")
}

// Truncate shortens value to at most maxLength runes. Non-positive lengths
// leave value unchanged.
func Truncate(value string, maxLength int) string {
	if maxLength <= 0 {
		return value
	}

	asRunes := []rune(value)
	if len(asRunes) <= maxLength {
		return value
	}

	return string(asRunes[:maxLength])
}

// SanitizeString normalizes untrusted input. It optionally strips HTML tags,
// filters value down to allowedChars, truncates to maxLength runes and trims
// surrounding whitespace, in that order. A zero maxLength or empty
// allowedChars disables the respective step; an allowedChars set that does
// not form a valid character class is ignored.
func SanitizeString(value string, maxLength int, allowedChars string, removeHTML bool) string {
	if removeHTML {
		value = RemoveHTMLTags(value)
	}

	value = KeepChars(value, allowedChars)
	value = Truncate(value, maxLength)

	return strings.TrimSpace(value)
}

// NormalizePhone reduces a phone number to its digits, dropping spaces,
// punctuation and any leading plus sign.
func NormalizePhone(phone string) string {
	var sb strings.Builder

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
