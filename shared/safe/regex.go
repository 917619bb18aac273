package safe

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// ErrInvalidRegex is returned when a regex pattern fails to compile.
var ErrInvalidRegex = errors.New("invalid regular expression")

// maxPatternCacheSize bounds the number of cached compiled patterns.
// When the limit is reached the whole cache is dropped, so dynamic
// caller-supplied patterns cannot grow memory without bound.
const maxPatternCacheSize = 1024

// patternCache is a bounded cache of compiled regex patterns.
type patternCache struct {
	mu       sync.RWMutex
	patterns map[string]*regexp.Regexp
}

var compiled = &patternCache{patterns: make(map[string]*regexp.Regexp)}

func (c *patternCache) load(pattern string) (*regexp.Regexp, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	re, ok := c.patterns[pattern]

	return re, ok
}

func (c *patternCache) store(pattern string, re *regexp.Regexp) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.patterns) >= maxPatternCacheSize {
		c.patterns = make(map[string]*regexp.Regexp)
	}

	c.patterns[pattern] = re
}

func (c *patternCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.patterns = make(map[string]*regexp.Regexp)
}

func (c *patternCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.patterns)
}

// Compile compiles a regex pattern with an error return instead of a panic.
// Compiled patterns are cached process-wide.
//
// Use this for dynamic patterns such as caller-supplied filters. For static
// compile-time patterns, use regexp.MustCompile directly.
//
// Example:
//
//	re, err := safe.Compile(filter)
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//	names := re.FindAllString(input, -1)
func Compile(pattern string) (*regexp.Regexp, error) {
	if cached, ok := compiled.load(pattern); ok {
		return cached, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegex, err)
	}

	compiled.store(pattern, re)

	return re, nil
}

// MatchString compiles pattern and matches it against input in one call. An
// invalid pattern yields false and an error wrapping ErrInvalidRegex.
func MatchString(pattern, input string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(input), nil
}

// FindString compiles pattern and returns the first match in input, or the
// empty string when nothing matches.
func FindString(pattern, input string) (string, error) {
	re, err := Compile(pattern)
	if err != nil {
		return "", err
	}

	return re.FindString(input), nil
}

// ReplaceAllString compiles pattern and replaces every match in input with
// replacement.
func ReplaceAllString(pattern, input, replacement string) (string, error) {
	re, err := Compile(pattern)
	if err != nil {
		return "", err
	}

	return re.ReplaceAllString(input, replacement), nil
}

// ClearCache drops every cached compiled pattern. Useful for testing.
func ClearCache() {
	compiled.clear()
}
