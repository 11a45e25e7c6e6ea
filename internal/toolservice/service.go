// Package toolservice coordinates catalog queries and refreshes for
// the API and MCP layers.
package toolservice

import (
	"context"
	"fmt"

	"github.com/ocastel/tooldex/internal/apperr"
	"github.com/ocastel/tooldex/internal/catalog"
	"github.com/ocastel/tooldex/internal/ingest"
	"github.com/ocastel/tooldex/internal/models"
	"github.com/ocastel/tooldex/internal/slug"
)

// RefreshFunc re-ingests the catalog source and swaps the snapshot,
// returning the ingestion report.
type RefreshFunc func(ctx context.Context) (ingest.Report, error)

// ToolDetail is the full representation of one tool, with the
// comma-delimited fields expanded into lists.
type ToolDetail struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Link        string   `json:"link,omitempty"`
	Overview    string   `json:"overview"`
	Description string   `json:"description"`
	Audience    []string `json:"audience"`
	Features    []string `json:"features"`
	UseCases    []string `json:"use_cases"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// Service serves catalog reads from a Provider and optionally supports
// source refresh.
type Service struct {
	store   catalog.Provider
	refresh RefreshFunc
}

// NewService creates a service over store. refresh may be nil for
// static catalogs.
func NewService(store catalog.Provider, refresh RefreshFunc) *Service {
	return &Service{store: store, refresh: refresh}
}

// ListTools filters the catalog and returns the requested page.
// Invalid pagination input surfaces as apperr.ErrInvalidPage.
func (s *Service) ListTools(_ context.Context, f catalog.Filters, page, pageSize int) (catalog.Page, error) {
	return catalog.Paginate(s.store.Search(f), page, pageSize)
}

// GetTool looks a tool up by slug. A miss is apperr.ErrNotFound.
func (s *Service) GetTool(_ context.Context, sl string) (*ToolDetail, error) {
	t, ok := s.store.FindBySlug(sl)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return newToolDetail(t), nil
}

// Categories returns every category sorted by descending tool count.
func (s *Service) Categories(_ context.Context) []models.Category {
	return s.store.Categories()
}

// CategoryTools returns the tools carrying exactly the given label.
func (s *Service) CategoryTools(_ context.Context, label string) []models.Tool {
	return s.store.ToolsByCategory(label)
}

// TagTools returns the tools tagged exactly with tag.
func (s *Service) TagTools(_ context.Context, tag string) []models.Tool {
	return s.store.ToolsByTag(tag)
}

// PopularTags returns up to limit tags by descending usage.
func (s *Service) PopularTags(_ context.Context, limit int) []models.TagCount {
	return s.store.PopularTags(limit)
}

// Stats returns the summary counts for the current snapshot.
func (s *Service) Stats(_ context.Context) models.Stats {
	return s.store.Stats()
}

// Refresh re-ingests the catalog source. A backend without a refresh
// path reports apperr.ErrRefreshUnsupported.
func (s *Service) Refresh(ctx context.Context) (ingest.Report, error) {
	if s.refresh == nil {
		return ingest.Report{}, fmt.Errorf("%w by this backend", apperr.ErrRefreshUnsupported)
	}
	return s.refresh(ctx)
}

func newToolDetail(t models.Tool) *ToolDetail {
	return &ToolDetail{
		Slug:        slug.Make(t.Name),
		Name:        t.Name,
		Category:    t.Category,
		Link:        t.Link,
		Overview:    t.Overview,
		Description: t.Description,
		Audience:    nonNilSlice(models.SplitList(t.Audience)),
		Features:    nonNilSlice(models.SplitList(t.Features)),
		UseCases:    nonNilSlice(models.SplitList(t.UseCases)),
		Tags:        nonNilSlice(models.SplitList(t.Tags)),
		ImageURL:    t.ImageURL,
	}
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
