package catalog

import (
	"sync/atomic"

	"github.com/ocastel/tooldex/internal/models"
)

// Store owns the current catalog snapshot. Reads are lock-free;
// Replace installs a fully built snapshot atomically, so readers
// always see a record list and indexes derived from the same input.
// The store is single-writer: only the ingestion path calls Replace.
type Store struct {
	snap atomic.Pointer[Snapshot]
}

// NewStore creates a store holding a snapshot of tools.
func NewStore(tools []models.Tool) *Store {
	s := &Store{}
	s.snap.Store(NewSnapshot(tools))
	return s
}

// Replace builds a new snapshot from tools and swaps it in. In-flight
// reads keep the snapshot they started with.
func (s *Store) Replace(tools []models.Tool) {
	s.snap.Store(NewSnapshot(tools))
}

// Snapshot returns the current snapshot. Use it when several related
// reads must observe one consistent view.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

func (s *Store) Tools() []models.Tool { return s.Snapshot().Tools() }

func (s *Store) FindBySlug(slug string) (models.Tool, bool) { return s.Snapshot().FindBySlug(slug) }

func (s *Store) ToolsByCategory(label string) []models.Tool {
	return s.Snapshot().ToolsByCategory(label)
}

func (s *Store) ToolsByTag(tag string) []models.Tool { return s.Snapshot().ToolsByTag(tag) }

func (s *Store) Categories() []models.Category { return s.Snapshot().Categories() }

func (s *Store) PopularTags(limit int) []models.TagCount { return s.Snapshot().PopularTags(limit) }

func (s *Store) Search(f Filters) []models.Tool { return s.Snapshot().Search(f) }

func (s *Store) Stats() models.Stats { return s.Snapshot().Stats() }
