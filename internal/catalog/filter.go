package catalog

import (
	"strings"

	"github.com/ocastel/tooldex/internal/models"
)

// Filters is the set of optional predicates a search applies. Absent
// (zero) fields impose no constraint; set fields are AND-ed together.
// All matching is case-insensitive substring containment.
type Filters struct {
	Category string
	Tags     []string
	Audience string
	Search   string
}

// Search evaluates f against the snapshot's full record list and
// returns the matching subset in store order. It always starts from
// the base set, never from a prior result, and cannot fail: the worst
// outcome is an empty slice.
func (s *Snapshot) Search(f Filters) []models.Tool {
	out := make([]models.Tool, 0, len(s.tools))
	for _, t := range s.tools {
		if matches(t, f) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t models.Tool, f Filters) bool {
	if f.Category != "" && !containsFold(t.Category, f.Category) {
		return false
	}
	if len(f.Tags) > 0 && !matchesAnyTag(t, f.Tags) {
		return false
	}
	if f.Audience != "" && !containsFold(t.Audience, f.Audience) {
		return false
	}
	if f.Search != "" && !matchesText(t, f.Search) {
		return false
	}
	return true
}

// matchesAnyTag reports whether at least one requested tag is a
// case-insensitive substring of at least one of the tool's split tags.
func matchesAnyTag(t models.Tool, requested []string) bool {
	toolTags := models.SplitList(t.Tags)
	for _, want := range requested {
		for _, have := range toolTags {
			if containsFold(have, want) {
				return true
			}
		}
	}
	return false
}

// matchesText ORs the free-text term across the searchable fields. The
// raw comma-delimited strings are searched, not the split items.
func matchesText(t models.Tool, term string) bool {
	return containsFold(t.Name, term) ||
		containsFold(t.Overview, term) ||
		containsFold(t.Description, term) ||
		containsFold(t.Features, term) ||
		containsFold(t.UseCases, term)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
