package store

import (
	"fmt"
	"regexp"
	"sort"
)

var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ValidColumn reports whether name is a safe lowercase SQL identifier.
func ValidColumn(name string) bool {
	return identPattern.MatchString(name)
}

// matches reports whether the row satisfies every filter in q.
func matches(row Row, filters []Filter) bool {
	for _, f := range filters {
		if !valueEq(row[f.Column], f.Value) {
			return false
		}
	}
	return true
}

// valueEq compares a stored value with a filter value. Numbers compare
// across int/float64 since filters are built from typed Go values while
// stored rows come back from JSON.
func valueEq(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
		return false
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// less orders two stored values: numbers numerically, everything else by
// string form. RFC 3339 timestamps order correctly as strings.
func less(a, b any) bool {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af < bf
		}
	}
	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}

// Apply evaluates q against rows in memory: filter, stable sort, limit.
// Used by the local store and the sandbox server.
func Apply(rows []Row, q Query) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if matches(r, q.Filters) {
			out = append(out, r)
		}
	}
	if q.Order.Column != "" {
		col := q.Order.Column
		sort.SliceStable(out, func(i, j int) bool {
			if q.Order.Descending {
				return less(out[j][col], out[i][col])
			}
			return less(out[i][col], out[j][col])
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}
