// Package kvutil provides shared utilities for the nested map[string]any
// state maps that flow between the docking registry, the editor layout, and
// the personalization store: type conversion, safe lookups, and deep copies.
package kvutil

import (
	"encoding/json"
	"fmt"
)

// Map safely extracts a nested map value.
// Returns nil (not an empty map) when the key is absent or has another type,
// so callers can distinguish "no state" from "empty state".
func Map(m map[string]any, key string) map[string]any {
	if val, ok := m[key].(map[string]any); ok {
		return val
	}
	return nil
}

// Bool safely extracts a bool value. Returns (value, true) when the key
// holds a bool, (false, false) otherwise.
func Bool(m map[string]any, key string) (bool, bool) {
	val, ok := m[key].(bool)
	return val, ok
}

// String safely extracts a string value from a map[string]any.
// Returns the value if it's a string, otherwise returns empty string.
func String(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// StringSlice extracts a list of strings. JSON round-trips turn string
// lists into []any, so both representations are accepted.
func StringSlice(m map[string]any, key string) []string {
	return Strings(m[key])
}

// Strings converts a stored value to a string list, accepting both the
// typed and the post-JSON []any representation.
func Strings(v any) []string {
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Clone deep-copies a state map by round-tripping it through JSON.
// Values that cannot be marshaled are dropped; the layout schema only
// carries maps, slices, strings, numbers, and bools.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}
