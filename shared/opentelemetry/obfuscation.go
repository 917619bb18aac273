package opentelemetry

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/Plasma-Engine/plasma-engine-shared/shared/security"
)

// RedactionAction selects how a matched field value is rewritten.
type RedactionAction string

const (
	// RedactionMask replaces the value with the redactor's mask string.
	RedactionMask RedactionAction = "mask"
	// RedactionHash replaces the value with a deterministic sha256 digest so
	// equal values stay correlatable across spans without being exposed.
	RedactionHash RedactionAction = "hash"
	// RedactionDrop removes the field entirely.
	RedactionDrop RedactionAction = "drop"
)

// RedactionRule matches fields by name and, optionally, by dotted path inside
// a payload ("config.database.password"). An empty pattern is ignored; when
// both are set, both must match.
type RedactionRule struct {
	// FieldPattern is a regular expression matched against the field name.
	FieldPattern string
	// PathPattern is a regular expression matched against the dotted path.
	PathPattern string
	// Action defaults to RedactionMask when blank.
	Action RedactionAction

	fieldRegex *regexp.Regexp
	pathRegex  *regexp.Regexp
}

// Redactor applies an ordered list of RedactionRules to field values. The
// first matching rule wins. A Redactor is immutable after construction and
// safe for concurrent use.
type Redactor struct {
	rules     []RedactionRule
	maskValue string
}

// NewRedactor compiles the rule patterns and returns a ready Redactor. An
// empty maskValue falls back to security.ObfuscatedValue.
func NewRedactor(rules []RedactionRule, maskValue string) (*Redactor, error) {
	if maskValue == "" {
		maskValue = security.ObfuscatedValue
	}

	compiled := make([]RedactionRule, len(rules))

	for i, rule := range rules {
		if rule.Action == "" {
			rule.Action = RedactionMask
		}

		if rule.FieldPattern != "" {
			re, err := regexp.Compile(rule.FieldPattern)
			if err != nil {
				return nil, fmt.Errorf("invalid redaction field pattern at index %d: %w", i, err)
			}

			rule.fieldRegex = re
		}

		if rule.PathPattern != "" {
			re, err := regexp.Compile(rule.PathPattern)
			if err != nil {
				return nil, fmt.Errorf("invalid redaction path pattern at index %d: %w", i, err)
			}

			rule.pathRegex = re
		}

		compiled[i] = rule
	}

	return &Redactor{rules: compiled, maskValue: maskValue}, nil
}

// NewDefaultRedactor masks every field in security.DefaultSensitiveFields,
// matched case-insensitively by exact name.
func NewDefaultRedactor() *Redactor {
	fields := security.DefaultSensitiveFields()
	rules := make([]RedactionRule, len(fields))

	for i, field := range fields {
		rules[i] = RedactionRule{
			FieldPattern: `(?i)^` + regexp.QuoteMeta(field) + `$`,
			Action:       RedactionMask,
		}
	}

	// Quoted literal patterns cannot fail to compile.
	redactor, _ := NewRedactor(rules, "")

	return redactor
}

// actionFor returns the action of the first rule matching field and path. A
// nil receiver or an unmatched field reports false.
func (r *Redactor) actionFor(path, field string) (RedactionAction, bool) {
	if r == nil {
		return "", false
	}

	for _, rule := range r.rules {
		if rule.fieldRegex == nil && rule.pathRegex == nil {
			continue
		}

		if rule.fieldRegex != nil && !rule.fieldRegex.MatchString(field) {
			continue
		}

		if rule.pathRegex != nil && !rule.pathRegex.MatchString(path) {
			continue
		}

		return rule.Action, true
	}

	return "", false
}

// redactValue rewrites value according to the first matching rule. The bool
// result reports drop: the caller must remove the field instead of storing
// the returned value.
func (r *Redactor) redactValue(path, field string, value any) (any, bool) {
	action, matched := r.actionFor(path, field)
	if !matched {
		return value, false
	}

	switch action {
	case RedactionDrop:
		return nil, true
	case RedactionHash:
		return hashValue(value), false
	default:
		return r.maskValue, false
	}
}

// hashString returns the sha256 digest of s.
func hashString(s string) [32]byte {
	return sha256.Sum256([]byte(s))
}

// hashValue renders the digest form used by RedactionHash. Non-string values
// are hashed through their fmt representation.
func hashValue(value any) string {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprintf("%v", value)
	}

	return fmt.Sprintf("sha256:%x", hashString(s))
}

// obfuscateStructFields walks decoded JSON and applies the redactor to every
// map entry. Nested map keys extend the dotted path; array elements keep the
// path of their container. The input is not modified.
func obfuscateStructFields(data any, path string, r *Redactor) any {
	switch typed := data.(type) {
	case map[string]any:
		result := make(map[string]any, len(typed))

		for key, value := range typed {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}

			action, matched := r.actionFor(childPath, key)
			if !matched {
				result[key] = obfuscateStructFields(value, childPath, r)
				continue
			}

			switch action {
			case RedactionDrop:
			case RedactionHash:
				result[key] = hashValue(value)
			default:
				result[key] = r.maskValue
			}
		}

		return result
	case []any:
		result := make([]any, len(typed))

		for i, item := range typed {
			result[i] = obfuscateStructFields(item, path, r)
		}

		return result
	default:
		return data
	}
}

// ObfuscateStruct round-trips valueStruct through JSON and rewrites it with
// the redactor's rules applied to every object field. Numbers decode as
// json.Number so untouched values re-marshal without float drift. A nil
// redactor returns the input unchanged.
func ObfuscateStruct(valueStruct any, r *Redactor) (any, error) {
	if r == nil {
		return valueStruct, nil
	}

	if valueStruct == nil {
		return nil, nil
	}

	jsonBytes, err := json.Marshal(valueStruct)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonBytes))
	decoder.UseNumber()

	var structData any
	if err := decoder.Decode(&structData); err != nil {
		return nil, err
	}

	return obfuscateStructFields(structData, "", r), nil
}
