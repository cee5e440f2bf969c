// internal/app/features/learningobjects/handler.go
package learningobjects

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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Store is the persistence contract for the admin CRUD surface.
type Store interface {
	ListAll(ctx context.Context) ([]models.LearningObject, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.LearningObject, error)
	Insert(ctx context.Context, o models.LearningObject) (models.LearningObject, error)
	Update(ctx context.Context, id primitive.ObjectID, o models.LearningObject) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Handler struct {
	Store  Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(store Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Store: store, ErrLog: errLog, Log: logger}
}

// ServeList handles GET /api/oeds.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	objects, err := h.Store.ListAll(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "learning objects: list", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, objects)
}

// ServeView handles GET /api/oeds/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	o, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.NotFound(w, "learning object not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, "learning objects: get", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, o)
}

// HandleCreate handles POST /api/oeds.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var o models.LearningObject
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		h.ErrLog.BadRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(o.Title) == "" {
		h.ErrLog.BadRequest(w, "title is required")
		return
	}
	applyDerived(&o)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Insert(ctx, o)
	if err != nil {
		h.ErrLog.Internal(w, "learning objects: create", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusCreated, created)
}

// HandleEdit handles PUT /api/oeds/{id}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var o models.LearningObject
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		h.ErrLog.BadRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(o.Title) == "" {
		h.ErrLog.BadRequest(w, "title is required")
		return
	}
	applyDerived(&o)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Store.GetByID(ctx, id); errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.NotFound(w, "learning object not found")
		return
	} else if err != nil {
		h.ErrLog.Internal(w, "learning objects: get for edit", err)
		return
	}

	if err := h.Store.Update(ctx, id, o); err != nil {
		h.ErrLog.Internal(w, "learning objects: update", err)
		return
	}
	o.ID = id
	uierrors.WriteJSON(w, http.StatusOK, o)
}

// HandleDelete handles DELETE /api/oeds/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.Internal(w, "learning objects: delete", err)
		return
	}
	if n == 0 {
		h.ErrLog.NotFound(w, "learning object not found")
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

// applyDerived keeps the canonical fields consistent with manual edits:
// expanded component name, matching tag color and the single-element
// tag mirror.
func applyDerived(o *models.LearningObject) {
	o.Component = normalize.Component(o.Component)
	o.Segment = normalize.Segment(o.Segment)
	o.Brand = normalize.Brand(o.Brand)
	o.TagColor = models.TagColorFor(o.Component)
	if o.Component != "" {
		o.ComponentTags = []string{o.Component}
	} else {
		o.ComponentTags = nil
	}
}
