//go:build unit

package safe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// None of the tests in this file run in parallel; they share the
// package-level pattern cache and reset it with ClearCache.

func TestCompileReturnsWorkingPattern(t *testing.T) {
	ClearCache()

	re, err := Compile(`^\d+\.\d{2}$`)

	require.NoError(t, err)
	require.NotNil(t, re)
	assert.True(t, re.MatchString("19.99"))
	assert.False(t, re.MatchString("free"))
}

func TestCompileEmptyPattern(t *testing.T) {
	ClearCache()

	re, err := Compile("")

	require.NoError(t, err)
	require.NotNil(t, re)
	assert.True(t, re.MatchString("anything"))
}

func TestCompileCachesByPattern(t *testing.T) {
	ClearCache()

	pattern := `^\d+$`

	first, err := Compile(pattern)
	require.NoError(t, err)

	second, err := Compile(pattern)
	require.NoError(t, err)
	assert.Same(t, first, second)

	ClearCache()

	third, err := Compile(pattern)
	require.NoError(t, err)
	assert.NotSame(t, first, third, "cleared cache should force recompilation")
}

func TestInvalidPatternRejectedEverywhere(t *testing.T) {
	ClearCache()

	const broken = `[broken(`

	calls := map[string]func() (any, error){
		"Compile": func() (any, error) {
			re, err := Compile(broken)
			return re, err
		},
		"MatchString": func() (any, error) {
			matched, err := MatchString(broken, "input")
			return matched, err
		},
		"FindString": func() (any, error) {
			match, err := FindString(broken, "input")
			return match, err
		},
		"ReplaceAllString": func() (any, error) {
			out, err := ReplaceAllString(broken, "input", "")
			return out, err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			result, err := call()

			assert.ErrorIs(t, err, ErrInvalidRegex)
			assert.Zero(t, result)
		})
	}
}

func TestMatchString(t *testing.T) {
	ClearCache()

	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"date matches", `^\d{4}-\d{2}-\d{2}$`, "2026-08-23", true},
		{"prose does not", `^\d{4}-\d{2}-\d{2}$`, "yesterday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, err := MatchString(tt.pattern, tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestFindStringReturnsFirstMatch(t *testing.T) {
	ClearCache()

	match, err := FindString(`\d+`, "order-1234-refund-88")

	require.NoError(t, err)
	assert.Equal(t, "1234", match)
}

func TestFindStringWithoutMatch(t *testing.T) {
	ClearCache()

	match, err := FindString(`[a-z]+`, "123456")

	require.NoError(t, err)
	assert.Empty(t, match)
}

func TestReplaceAllString(t *testing.T) {
	ClearCache()

	stripped, err := ReplaceAllString(`<[^>]+>`, "<i>fine</i> print", "")

	require.NoError(t, err)
	assert.Equal(t, "fine print", stripped)

	untouched, err := ReplaceAllString(`<[^>]+>`, "plain text", "")

	require.NoError(t, err)
	assert.Equal(t, "plain text", untouched)
}

// A store into a full cache drops every entry first, keeping memory bounded
// even when callers feed in unlimited distinct patterns.
func TestPatternCacheFlushesWhenFull(t *testing.T) {
	ClearCache()

	for i := range maxPatternCacheSize {
		_, err := Compile(fmt.Sprintf(`^order_%d$`, i))
		require.NoError(t, err)
	}

	require.Equal(t, maxPatternCacheSize, compiled.len())

	_, err := Compile(`^spill$`)
	require.NoError(t, err)
	require.Equal(t, 1, compiled.len(), "flush should leave only the newest entry")

	first, err := Compile(`^order_0$`)
	require.NoError(t, err)

	second, err := Compile(`^order_0$`)
	require.NoError(t, err)
	assert.Same(t, first, second, "flushed pattern should be cacheable again")
}
