// Package strings holds small helpers for list-valued settings.
package strings

import (
	"slices"
	"strings"
)

// SplitList parses a comma-separated setting such as ALLOWED_ORIGINS into
// trimmed, unique, non-empty entries in first-seen order. Blank input is nil.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return DedupeAndTrim(strings.Split(raw, ","))
}

// DedupeAndTrim keeps case; see DedupeAndTrimLower for provider names.
func DedupeAndTrim(values []string) []string {
	return uniqueBy(values, strings.TrimSpace)
}

func DedupeAndTrimLower(values []string) []string {
	return uniqueBy(values, func(s string) string { return strings.ToLower(strings.TrimSpace(s)) })
}

func uniqueBy(values []string, key func(string) string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if k := key(v); k != "" && !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}
