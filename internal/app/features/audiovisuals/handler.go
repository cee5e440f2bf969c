// internal/app/features/audiovisuals/handler.go
package audiovisuals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/acervodigital/oedhub/internal/app/features/errors"
	"github.com/acervodigital/oedhub/internal/app/system/normalize"
	"github.com/acervodigital/oedhub/internal/app/system/timeouts"
	"github.com/acervodigital/oedhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Store is the persistence contract for the admin CRUD surface.
type Store interface {
	ListAll(ctx context.Context) ([]models.AudiovisualItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.AudiovisualItem, error)
	Insert(ctx context.Context, a models.AudiovisualItem) (models.AudiovisualItem, error)
	Update(ctx context.Context, id primitive.ObjectID, a models.AudiovisualItem) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Handler struct {
	Store  Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// statementPolicy mirrors the import pipeline: statement text is stored
// markup-free no matter which door it came in through.
var statementPolicy = bluemonday.StrictPolicy()

func NewHandler(store Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Store: store, ErrLog: errLog, Log: logger}
}

// ServeList handles GET /api/audiovisuals.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.ListAll(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "audiovisuals: list", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, items)
}

// ServeView handles GET /api/audiovisuals/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.NotFound(w, "audiovisual item not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, "audiovisuals: get", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, a)
}

// HandleCreate handles POST /api/audiovisuals.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var a models.AudiovisualItem
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		h.ErrLog.BadRequest(w, "invalid JSON body")
		return
	}
	if !a.HasIdentity() {
		h.ErrLog.BadRequest(w, "code or chapter name is required")
		return
	}
	applyDerived(&a)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Insert(ctx, a)
	if err != nil {
		h.ErrLog.Internal(w, "audiovisuals: create", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusCreated, created)
}

// HandleEdit handles PUT /api/audiovisuals/{id}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var a models.AudiovisualItem
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		h.ErrLog.BadRequest(w, "invalid JSON body")
		return
	}
	if !a.HasIdentity() {
		h.ErrLog.BadRequest(w, "code or chapter name is required")
		return
	}
	applyDerived(&a)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Store.GetByID(ctx, id); errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.NotFound(w, "audiovisual item not found")
		return
	} else if err != nil {
		h.ErrLog.Internal(w, "audiovisuals: get for edit", err)
		return
	}

	if err := h.Store.Update(ctx, id, a); err != nil {
		h.ErrLog.Internal(w, "audiovisuals: update", err)
		return
	}
	a.ID = id
	uierrors.WriteJSON(w, http.StatusOK, a)
}

// HandleDelete handles DELETE /api/audiovisuals/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.Internal(w, "audiovisuals: delete", err)
		return
	}
	if n == 0 {
		h.ErrLog.NotFound(w, "audiovisual item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.BadRequest(w, "invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}

func applyDerived(a *models.AudiovisualItem) {
	a.Component = normalize.Component(a.Component)
	a.Segment = normalize.Segment(a.Segment)
	a.Brand = normalize.Brand(a.Brand)
	a.StatementText = strings.TrimSpace(statementPolicy.Sanitize(a.StatementText))
}
