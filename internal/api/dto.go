package api

import (
	"github.com/ocastel/tooldex/internal/catalog"
	"github.com/ocastel/tooldex/internal/toolservice"
)

// ToolDetail is the full tool response type (aliased from the domain layer).
type ToolDetail = toolservice.ToolDetail

// ToolListResponse is the paginated listing payload: items plus
// pagination metadata.
type ToolListResponse = catalog.Page

// CategoryItem is one entry in the categories listing. The full tool
// lists stay out of this payload; clients fetch them per category.
type CategoryItem struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}
