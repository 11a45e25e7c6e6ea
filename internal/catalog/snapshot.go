// Package catalog implements the in-memory tool catalog: an immutable
// snapshot of records with derived category and tag indexes, plus the
// filter, pagination, and stats operations that serve every backend.
package catalog

import (
	"sort"

	"github.com/ocastel/tooldex/internal/models"
	"github.com/ocastel/tooldex/internal/slug"
)

// Snapshot is one consistent view of the catalog: the full record list
// paired with the indexes built from exactly that list. Snapshots are
// never mutated after construction, so any number of readers may share
// one without locking.
type Snapshot struct {
	tools      []models.Tool
	slugs      map[string]int           // slug -> position in tools
	categories map[string][]models.Tool // label -> tools, store order
	tags       map[string][]models.Tool // trimmed tag -> tools, store order
}

// NewSnapshot builds a snapshot from tools. Both indexes are rebuilt in
// full; tools with an empty category are absent from the category
// index, and an empty tags field contributes no tag entries. Building
// twice from the same list yields identical indexes.
func NewSnapshot(tools []models.Tool) *Snapshot {
	s := &Snapshot{
		tools:      tools,
		slugs:      make(map[string]int, len(tools)),
		categories: make(map[string][]models.Tool),
		tags:       make(map[string][]models.Tool),
	}

	for i, t := range tools {
		sl := slug.Make(t.Name)
		if _, ok := s.slugs[sl]; !ok {
			s.slugs[sl] = i
		}

		if t.Category != "" {
			s.categories[t.Category] = append(s.categories[t.Category], t)
		}
		for _, tag := range models.SplitList(t.Tags) {
			s.tags[tag] = append(s.tags[tag], t)
		}
	}

	return s
}

// Tools returns the full record list in store order. Callers must not
// mutate the returned slice.
func (s *Snapshot) Tools() []models.Tool {
	return s.tools
}

// FindBySlug returns the tool whose derived slug equals sl. A miss is a
// normal outcome, reported through the second return value.
func (s *Snapshot) FindBySlug(sl string) (models.Tool, bool) {
	i, ok := s.slugs[sl]
	if !ok {
		return models.Tool{}, false
	}
	return s.tools[i], true
}

// ToolsByCategory returns the tools carrying exactly the given category
// label, in store order. An unknown label yields an empty list.
func (s *Snapshot) ToolsByCategory(label string) []models.Tool {
	tools := s.categories[label]
	if tools == nil {
		return []models.Tool{}
	}
	return tools
}

// ToolsByTag returns the tools whose split tag list contains exactly
// the given tag, in store order. An unknown tag yields an empty list.
func (s *Snapshot) ToolsByTag(tag string) []models.Tool {
	tools := s.tags[tag]
	if tools == nil {
		return []models.Tool{}
	}
	return tools
}

// Categories returns every category with its count and tools, sorted
// by descending count (ties by name for a stable order).
func (s *Snapshot) Categories() []models.Category {
	out := make([]models.Category, 0, len(s.categories))
	for name, tools := range s.categories {
		out = append(out, models.Category{
			Name:  name,
			Slug:  slug.Make(name),
			Count: len(tools),
			Tools: tools,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// PopularTags returns up to limit tags sorted by descending usage
// (ties by name). limit <= 0 means the default of 20.
func (s *Snapshot) PopularTags(limit int) []models.TagCount {
	if limit <= 0 {
		limit = 20
	}
	out := make([]models.TagCount, 0, len(s.tags))
	for tag, tools := range s.tags {
		out = append(out, models.TagCount{Tag: tag, Count: len(tools)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Stats derives the five summary counts from this snapshot. All values
// come from the same record list, so they are mutually consistent.
func (s *Snapshot) Stats() models.Stats {
	st := models.Stats{
		TotalTools:      len(s.tools),
		TotalCategories: len(s.categories),
		TotalTags:       len(s.tags),
	}
	for _, t := range s.tools {
		if t.Link != "" {
			st.ToolsWithLink++
		}
		if t.ImageURL != "" {
			st.ToolsWithImage++
		}
	}
	return st
}
