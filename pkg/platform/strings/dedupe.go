// Package strings provides small string-slice utilities shared across modules.
package strings

import "strings"

// Dedupe removes duplicates and blank entries from a slice, trimming
// whitespace from each element. First occurrence wins; order is preserved.
// Used wherever user-facing lists (recommendations, document names) must not
// repeat themselves.
func Dedupe(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// ContainsFold reports whether list contains s under case-insensitive
// comparison, after trimming both sides.
func ContainsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}
