// internal/app/features/login/routes.go
package login

import "github.com/go-chi/chi/v5"

// Routes returns the session subrouter, mounted at the root from
// bootstrap so the paths are /login and /logout.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)
	return r
}
