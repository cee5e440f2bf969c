// internal/app/features/skills/routes.go
package skills

import "github.com/go-chi/chi/v5"

// Routes returns the public skills subrouter (mounted under /api/skills
// from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{code}", h.ServeView)
	return r
}
