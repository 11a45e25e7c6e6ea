package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ocastel/tooldex/internal/apperr"
	"github.com/ocastel/tooldex/internal/catalog"
	"github.com/ocastel/tooldex/internal/toolservice"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// Handler holds API route handlers.
type Handler struct {
	svc *toolservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *toolservice.Service) *Handler {
	return &Handler{svc: svc}
}

// label extracts and decodes a URL parameter holding a free-text label
// (category names and tags can carry spaces and punctuation).
func label(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListTools handles GET /api/tools.
//
// Query parameters: category, tags (comma-separated), audience, search,
// page (default 1), limit (default 20). All filters are AND-ed; the
// response carries items plus pagination metadata.
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := defaultPage
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid page"))
			return
		}
		page = n
	}
	pageSize := defaultPageSize
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid limit"))
			return
		}
		pageSize = n
	}

	filters := catalog.Filters{
		Category: q.Get("category"),
		Audience: q.Get("audience"),
		Search:   q.Get("search"),
	}
	if raw := q.Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filters.Tags = append(filters.Tags, t)
			}
		}
	}

	result, err := h.svc.ListTools(r.Context(), filters, page, pageSize)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidPage) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		slog.Error("list tools failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetTool handles GET /api/tools/{slug}.
func (h *Handler) GetTool(w http.ResponseWriter, r *http.Request) {
	sl := label(r, "slug")
	tool, err := h.svc.GetTool(r.Context(), sl)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get tool failed", slog.String("slug", sl), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.svc.Categories(r.Context())
	items := make([]CategoryItem, len(cats))
	for i, c := range cats {
		items[i] = CategoryItem{Name: c.Name, Slug: c.Slug, Count: c.Count}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": items,
	})
}

// CategoryTools handles GET /api/categories/{category}/tools.
// The label must match exactly; an unknown label yields an empty list.
func (h *Handler) CategoryTools(w http.ResponseWriter, r *http.Request) {
	tools := h.svc.CategoryTools(r.Context(), label(r, "category"))
	writeJSON(w, http.StatusOK, map[string]any{
		"tools": tools,
		"total": len(tools),
	})
}

// ListTags handles GET /api/tags with an optional limit parameter.
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	writeJSON(w, http.StatusOK, map[string]any{
		"tags": h.svc.PopularTags(r.Context(), limit),
	})
}

// TagTools handles GET /api/tags/{tag}/tools.
func (h *Handler) TagTools(w http.ResponseWriter, r *http.Request) {
	tools := h.svc.TagTools(r.Context(), label(r, "tag"))
	writeJSON(w, http.StatusOK, map[string]any{
		"tools": tools,
		"total": len(tools),
	})
}

// Stats handles GET /api/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats(r.Context()))
}

// Refresh handles POST /api/refresh: re-ingest the catalog source and
// swap in the new snapshot, returning the ingestion report.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, apperr.ErrRefreshUnsupported) {
			writeJSON(w, http.StatusNotImplemented, errorBody(err.Error()))
			return
		}
		slog.Error("refresh failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("refresh failed"))
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
