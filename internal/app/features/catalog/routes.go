// internal/app/features/catalog/routes.go
package catalog

import "github.com/go-chi/chi/v5"

// Routes returns the public catalog subrouter (mounted under
// /api/catalog from bootstrap). Browsing requires no session.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeCatalog)
	return r
}
