package store

import (
	"time"
)

// Row is a JSON-shaped record: values are strings, float64 numbers, bools,
// nil, []any, or map[string]any, the way encoding/json decodes them.
type Row map[string]any

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	cp := make(Row, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}

// Str returns the string at key, or "" when absent or not a string.
func (r Row) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// StrPtr returns the string at key, or nil when absent, null, or empty.
func (r Row) StrPtr(key string) *string {
	s, ok := r[key].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// Int returns the number at key truncated to int, or 0.
func (r Row) Int(key string) int {
	switch n := r[key].(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

// IntPtr returns the number at key, or nil when absent or null.
func (r Row) IntPtr(key string) *int {
	if r[key] == nil {
		return nil
	}
	n := r.Int(key)
	return &n
}

// Bool returns the bool at key, or false.
func (r Row) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Time parses the RFC 3339 timestamp at key. Zero time when absent or
// unparseable.
func (r Row) Time(key string) time.Time {
	s, ok := r[key].(string)
	if !ok {
		if t, isTime := r[key].(time.Time); isTime {
			return t
		}
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// StrList returns the string array at key. Nil when absent or null.
func (r Row) StrList(key string) []string {
	switch v := r[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// timeLayout is RFC 3339 with a fixed-width fraction, so stored timestamps
// order correctly as plain strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTime renders a timestamp the way every backend stores it.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
