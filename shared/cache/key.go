package cache

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Key identifies one memoized computation. The operation name and the
// canonical argument encoding live in separate fields, so an operation can
// never collide with another operation whose name happens to share a prefix
// with its arguments. Keys are comparable and usable as map keys.
type Key struct {
	op   string
	args string
}

// NewKey builds the Key for op invoked with args.
//
// Each argument is canonically JSON-encoded. encoding/json writes map keys
// in sorted order, so two maps with the same contents produce the same key
// regardless of insertion order. Values JSON cannot encode (channels, funcs)
// fall back to a fmt rendering that is stable for a given value.
func NewKey(op string, args ...any) Key {
	if len(args) == 0 {
		return Key{op: op}
	}

	encoded := make([]string, len(args))
	for i, arg := range args {
		encoded[i] = encodeArg(arg)
	}

	return Key{op: op, args: strings.Join(encoded, ",")}
}

// encodeArg renders one argument. JSON string escaping keeps the encoding
// self-delimiting, so joining encoded arguments with commas cannot conflate
// two argument lists.
func encodeArg(arg any) string {
	data, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%#v", arg)
	}

	return string(data)
}
