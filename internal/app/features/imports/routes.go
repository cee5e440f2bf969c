// internal/app/features/imports/routes.go
package imports

import (
	"github.com/acervodigital/oedhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the import endpoints (typically under "/api/imports"
// from bootstrap). Imports rewrite the catalog, so every route requires
// an admin session.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Post("/oeds", h.HandleImportOEDs)
		pr.Post("/audiovisuals", h.HandleImportAudiovisuals)
		pr.Post("/bncc", h.HandleImportBNCC)
	})

	return r
}
