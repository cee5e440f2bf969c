// internal/app/features/catalog/handler.go
package catalog

import (
	"context"
	"net/http"

	uierrors "github.com/acervodigital/oedhub/internal/app/features/errors"
	"github.com/acervodigital/oedhub/internal/app/system/facets"
	"github.com/acervodigital/oedhub/internal/app/system/timeouts"
	"github.com/acervodigital/oedhub/internal/domain/models"
	"go.uber.org/zap"
)

// Store contracts the gallery reads through. The Mongo stores satisfy
// them; tests use the in-memory fakes in testutil.

type LearningObjectLister interface {
	ListAll(ctx context.Context) ([]models.LearningObject, error)
}

type AudiovisualLister interface {
	ListAll(ctx context.Context) ([]models.AudiovisualItem, error)
}

type Handler struct {
	Objects LearningObjectLister
	Items   AudiovisualLister
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(objects LearningObjectLister, items AudiovisualLister, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Objects: objects,
		Items:   items,
		ErrLog:  errLog,
		Log:     logger,
	}
}

// catalogEntry is one gallery result. Exactly one of the two record
// fields is set, matching Type.
type catalogEntry struct {
	Type            facets.ContentType      `json:"type"`
	LearningObject  *models.LearningObject  `json:"learningObject,omitempty"`
	AudiovisualItem *models.AudiovisualItem `json:"audiovisualItem,omitempty"`
}

type catalogResponse struct {
	ContentType  facets.ContentType  `json:"contentType"`
	Total        int                 `json:"total"`
	Results      []catalogEntry      `json:"results"`
	FacetOptions map[string][]string `json:"facetOptions"`
}

// facetParams maps query-string keys to facet names. Every facet is
// addressable directly by its name; repeating a key widens that facet's
// selection (OR within, AND across).
var facetParams = []string{
	facets.FacetGrade, facets.FacetComponent, facets.FacetCurriculumCode,
	facets.FacetSegment, facets.FacetCategory, facets.FacetBrand,
	facets.FacetObjectType, facets.FacetVideoCategory, facets.FacetSAMRLevel,
	facets.FacetVolume, facets.FacetExamBoard, facets.FacetChapter,
}

// ServeCatalog handles GET /api/catalog.
//
// Query parameters: type (all|oed|audiovisual, default all), q
// (free-text), and one key per facet. The full record set for the
// content type is bulk-fetched and filtered in memory; facet options are
// computed from the coarse partition only, never from the filtered set.
func (h *Handler) ServeCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ct := facets.ContentType(r.URL.Query().Get("type"))
	switch ct {
	case "", facets.TypeAll, facets.TypeLearning, facets.TypeAudiovisual:
	default:
		h.ErrLog.BadRequest(w, "unknown content type")
		return
	}
	if ct == "" {
		ct = facets.TypeAll
	}

	entries, err := h.loadEntries(ctx, ct)
	if err != nil {
		h.ErrLog.Internal(w, "catalog: load records", err)
		return
	}

	sel := facets.Selection{}
	for _, name := range facetParams {
		if vs, ok := r.URL.Query()[name]; ok {
			sel[name] = vs
		}
	}

	filtered := facets.Filter(entries, ct, r.URL.Query().Get("q"), sel)

	results := make([]catalogEntry, 0, len(filtered))
	for i := range filtered {
		results = append(results, catalogEntry{
			Type:            filtered[i].Type,
			LearningObject:  filtered[i].Object,
			AudiovisualItem: filtered[i].Item,
		})
	}

	uierrors.WriteJSON(w, http.StatusOK, catalogResponse{
		ContentType:  ct,
		Total:        len(results),
		Results:      results,
		FacetOptions: facets.Options(entries, ct),
	})
}

// loadEntries bulk-fetches the records the partition needs. The "all"
// partition merges both collections.
func (h *Handler) loadEntries(ctx context.Context, ct facets.ContentType) ([]facets.Entry, error) {
	var entries []facets.Entry

	if ct == facets.TypeAll || ct == facets.TypeLearning {
		objects, err := h.Objects.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, o := range objects {
			entries = append(entries, facets.FromLearningObject(o))
		}
	}

	if ct == facets.TypeAll || ct == facets.TypeAudiovisual {
		items, err := h.Items.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range items {
			entries = append(entries, facets.FromAudiovisual(a))
		}
	}

	return entries, nil
}
