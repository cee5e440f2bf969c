// internal/app/features/skills/handler.go
package skills

import (
	"context"
	"net/http"

	uierrors "github.com/acervodigital/oedhub/internal/app/features/errors"
	"github.com/acervodigital/oedhub/internal/app/system/timeouts"
	"github.com/acervodigital/oedhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Store is the read-only contract the skill endpoints use. The skill set
// is reference data; it is only ever written by the BNCC import.
type Store interface {
	ListAll(ctx context.Context) ([]models.CurriculumSkill, error)
	FindByCode(ctx context.Context, code string) (*models.CurriculumSkill, error)
}

type Handler struct {
	Store  Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(store Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Store: store, ErrLog: errLog, Log: logger}
}

// ServeList handles GET /api/skills.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	skills, err := h.Store.ListAll(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "skills: list", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, skills)
}

// ServeView handles GET /api/skills/{code}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		h.ErrLog.BadRequest(w, "code is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sk, err := h.Store.FindByCode(ctx, code)
	if err != nil {
		h.ErrLog.Internal(w, "skills: get", err)
		return
	}
	if sk == nil {
		h.ErrLog.NotFound(w, "curriculum skill not found")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, sk)
}
