package patient

import (
	"sort"
	"strings"
)

// FilterAll is the condition filter value that disables condition matching.
const FilterAll = "all"

// Filter projects the roster for the dashboard: a case-insensitive
// substring search over name and condition, AND-combined with an exact
// condition match. Pure; recomputed from the current mirror on every call.
func Filter(patients []Patient, search, condition string) []Patient {
	needle := strings.ToLower(search)
	out := make([]Patient, 0, len(patients))
	for _, p := range patients {
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		if condition != "" && condition != FilterAll {
			if p.Condition == nil || *p.Condition != condition {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p Patient, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	return p.Condition != nil && strings.Contains(strings.ToLower(*p.Condition), needle)
}

// Conditions returns the distinct non-empty conditions on the roster,
// sorted, for the filter dropdown.
func Conditions(patients []Patient) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range patients {
		if p.Condition == nil || *p.Condition == "" || seen[*p.Condition] {
			continue
		}
		seen[*p.Condition] = true
		out = append(out, *p.Condition)
	}
	sort.Strings(out)
	return out
}
