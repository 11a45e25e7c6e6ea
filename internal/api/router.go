package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ocastel/tooldex/internal/toolservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *toolservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Catalog listing and lookup.
	r.Get("/tools", h.ListTools)
	r.Get("/tools/{slug}", h.GetTool)

	// Derived indexes.
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{category}/tools", h.CategoryTools)
	r.Get("/tags", h.ListTags)
	r.Get("/tags/{tag}/tools", h.TagTools)

	// Summary counts.
	r.Get("/stats", h.Stats)

	// Source re-ingestion (admin).
	r.Post("/refresh", h.Refresh)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
