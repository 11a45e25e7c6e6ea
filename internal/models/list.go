package models

import "strings"

// SplitList expands a comma-delimited field into trimmed items,
// dropping empties. A field that itself contains a comma (such as
// "machine learning, NLP") is indistinguishable from two items; the
// format reserves no escape for this.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
