package catalog

import (
	"fmt"

	"github.com/ocastel/tooldex/internal/apperr"
	"github.com/ocastel/tooldex/internal/models"
)

// Page is one slice of an already-filtered result list plus its
// metadata. Page numbers are 1-based.
type Page struct {
	Items      []models.Tool `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

// Paginate slices tools into the requested page. It is a pure function
// of the input list; filtering must have happened already. A page
// beyond the last returns empty items with the same metadata, which is
// the "no results" contract, not an error. page < 1 or pageSize <= 0
// is a validation error.
func Paginate(tools []models.Tool, page, pageSize int) (Page, error) {
	if pageSize <= 0 {
		return Page{}, fmt.Errorf("%w: page size %d", apperr.ErrInvalidPage, pageSize)
	}
	if page < 1 {
		return Page{}, fmt.Errorf("%w: page %d", apperr.ErrInvalidPage, page)
	}

	total := len(tools)
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/pageSize + 1
	}

	// Clamp before computing offsets: page and pageSize are caller
	// input and can be large enough to overflow a multiplication.
	if page > totalPages {
		return Page{
			Items:      []models.Tool{},
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		}, nil
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total || end < start {
		end = total
	}

	items := tools[start:end]
	if items == nil {
		items = []models.Tool{}
	}

	return Page{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
