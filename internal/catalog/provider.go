package catalog

import "github.com/ocastel/tooldex/internal/models"

// Provider is the capability interface the presentation layers depend
// on. In-memory and persistent-backed stores are interchangeable
// behind it; the observable query semantics never change with the
// backend.
type Provider interface {
	Tools() []models.Tool
	FindBySlug(slug string) (models.Tool, bool)
	ToolsByCategory(label string) []models.Tool
	ToolsByTag(tag string) []models.Tool
	Categories() []models.Category
	PopularTags(limit int) []models.TagCount
	Search(f Filters) []models.Tool
	Stats() models.Stats
}

// Verify *Store satisfies Provider at compile time.
var _ Provider = (*Store)(nil)
