// internal/app/features/learningobjects/routes.go
package learningobjects

import (
	"github.com/acervodigital/oedhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the learning object API under whatever base path the
// caller chooses (typically "/api/oeds" from bootstrap). Reads are
// public; writes require an admin or editor session.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin", "editor"))

		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleEdit)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
