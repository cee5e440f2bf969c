// internal/app/features/audiovisuals/routes.go
package audiovisuals

import (
	"github.com/acervodigital/oedhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the audiovisual API under whatever base path the caller
// chooses (typically "/api/audiovisuals" from bootstrap). Reads are
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
