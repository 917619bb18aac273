package security

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode"
)

// ObfuscatedValue replaces the value of a sensitive field wherever one is
// detected, so the original never reaches a log line or span attribute.
const ObfuscatedValue = "***"

// defaultSensitiveFields lists field names whose values must never be logged.
// All entries are lowercase; matching is case-insensitive and tolerant of
// camelCase and snake_case naming.
var defaultSensitiveFields = []string{
	// Credentials and tokens.
	"password", "newpassword", "oldpassword", "passwordsalt",
	"token", "access_token", "accesstoken", "refresh_token", "refreshtoken",
	"secret", "clientsecret", "client_secret", "clientid", "client_id",
	"key", "apikey", "api_key", "private_key", "privatekey",
	"auth", "authorization", "credential", "credentials",

	// Financial and personally identifying data.
	"card_number", "cardnumber", "pan", "cvv", "cvc",
	"expiry", "expiry_date", "expiration_date", "card_expiry",
	"account_number", "accountnumber", "routing_number", "routingnumber",
	"iban", "swift", "swift_code", "bic", "sort_code", "bsb",
	"ssn", "social_security", "tax_id", "taxid", "tin", "national_id",
	"date_of_birth", "dob", "mother_maiden_name",
	"pin", "otp", "totp", "mfa_code",
	"security_answer", "security_question",
	"biometric", "fingerprint",
}

// shortTokens marks the entries that are too short for substring scanning:
// "pin" would flag "spinning" and "key" would flag "keyboard". These only
// match when they equal a whole token of the field name.
var shortTokens = map[string]bool{
	"key":  true,
	"auth": true,
	"pin":  true,
	"otp":  true,
	"cvv":  true,
	"cvc":  true,
	"ssn":  true,
	"pan":  true,
	"bic":  true,
	"bsb":  true,
	"dob":  true,
	"tin":  true,
}

// sensitiveSet returns the lookup set built from defaultSensitiveFields.
// The set is built once and shared; callers must not mutate it.
var sensitiveSet = sync.OnceValue(func() map[string]bool {
	set := make(map[string]bool, len(defaultSensitiveFields))
	for _, field := range defaultSensitiveFields {
		set[field] = true
	}

	return set
})

// DefaultSensitiveFields returns the built-in sensitive field names. The
// returned slice is a clone, so callers cannot mutate shared state.
func DefaultSensitiveFields() []string {
	return slices.Clone(defaultSensitiveFields)
}

// DefaultSensitiveFieldsMap returns the same entries as
// DefaultSensitiveFields, keyed for lookups. The returned map is a copy, so
// callers cannot mutate shared state.
func DefaultSensitiveFieldsMap() map[string]bool {
	set := sensitiveSet()

	clone := make(map[string]bool, len(set))
	maps.Copy(clone, set)

	return clone
}

// IsSensitiveField reports whether fieldName names a value that must be
// obfuscated before it is logged. Matching is case-insensitive and
// camelCase-aware: "sessionToken" and "APIKey" are reduced to
// "session_token" and "api_key" before comparison. Entries listed in
// shortTokens must equal a whole token of the name; every other entry
// matches on word boundaries, so "sessionToken" is caught by "token" while
// "spinning" is not caught by "pin".
func IsSensitiveField(fieldName string) bool {
	set := sensitiveSet()

	lower := strings.ToLower(fieldName)
	if set[lower] {
		return true
	}

	snake := snakeCase(fieldName)
	if snake != lower && set[snake] {
		return true
	}

	for _, token := range splitTokens(snake) {
		if shortTokens[token] {
			return true
		}
	}

	for _, pattern := range defaultSensitiveFields {
		if shortTokens[pattern] {
			continue
		}

		if containsWord(snake, pattern) {
			return true
		}

		if snake != lower && containsWord(lower, pattern) {
			return true
		}
	}

	return false
}

// snakeCase lowercases a field name and inserts an underscore at every
// camelCase word break. The last letter of an acronym run starts the next
// word, so "APIKey" becomes "api_key" rather than "apik_ey".
func snakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder
	b.Grow(len(name) + 2)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && startsWord(runes, i) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// startsWord reports whether the uppercase rune at runes[i] begins a new
// word: it follows a lowercase rune or a digit, or it ends an acronym run
// and a lowercase rune comes next.
func startsWord(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// splitTokens breaks a normalized field name into its alphanumeric tokens.
func splitTokens(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool { return !isWordRune(r) })
}

// containsWord reports whether word occurs in s bounded on both sides by the
// start or end of the string or by a non-alphanumeric byte.
func containsWord(s, word string) bool {
	from := 0
	for from+len(word) <= len(s) {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return false
		}

		start := from + i
		end := start + len(word)

		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}

		from = start + 1
	}

	return false
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

func isWordByte(b byte) bool {
	return isWordRune(rune(b))
}
