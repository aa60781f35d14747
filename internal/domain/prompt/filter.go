package prompt

import (
	"sort"
	"strings"
)

// FilterAll is the category value that disables category matching.
const FilterAll = "all"

// Filter projects the prompt library: case-insensitive substring search
// over name and description, AND-combined with an exact category match.
func Filter(prompts []Prompt, search, category string) []Prompt {
	needle := strings.ToLower(search)
	out := make([]Prompt, 0, len(prompts))
	for _, p := range prompts {
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		if category != "" && category != FilterAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p Prompt, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle)
}

// Categories returns the distinct non-empty categories in use, sorted.
func Categories(prompts []Prompt) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range prompts {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}
