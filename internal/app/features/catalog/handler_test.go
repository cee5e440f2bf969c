package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acervodigital/oedhub/internal/app/features/catalog"
	uierrors "github.com/acervodigital/oedhub/internal/app/features/errors"
	"github.com/acervodigital/oedhub/internal/testutil"
	"go.uber.org/zap"
)

type catalogResponse struct {
	ContentType string `json:"contentType"`
	Total       int    `json:"total"`
	Results     []struct {
		Type           string `json:"type"`
		LearningObject *struct {
			Title     string `json:"title"`
			Component string `json:"curricularComponent"`
		} `json:"learningObject"`
		AudiovisualItem *struct {
			ChapterName string `json:"chapterName"`
		} `json:"audiovisualItem"`
	} `json:"results"`
	FacetOptions map[string][]string `json:"facetOptions"`
}

func newTestHandler(t *testing.T) (*catalog.Handler, *testutil.LearningObjectCatalog, *testutil.AudiovisualCatalog) {
	t.Helper()
	objects := &testutil.LearningObjectCatalog{}
	items := &testutil.AudiovisualCatalog{}
	logger := zap.NewNop()
	h := catalog.NewHandler(objects, items, uierrors.NewErrorLogger(logger), logger)
	return h, objects, items
}

func seedCatalog(objects *testutil.LearningObjectCatalog, items *testutil.AudiovisualCatalog) {
	a := testutil.NewLearningObject("Frações no cotidiano", "Matemática", "5º Ano")
	b := testutil.NewLearningObject("Razão e proporção", "Matemática", "6º Ano")
	c := testutil.NewLearningObject("Cadeia alimentar", "Ciências", "5o ano")
	objects.Objects = append(objects.Objects, a, b, c)

	items.Items = append(items.Items,
		testutil.NewAudiovisualItem("AV1", "Termodinâmica", "Física"),
		testutil.NewAudiovisualItem("AV2", "Óptica", "Física"),
	)
}

func serveCatalog(t *testing.T, h *catalog.Handler, target string) catalogResponse {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	h.ServeCatalog(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: status %d, body %s", target, rec.Code, rec.Body.String())
	}
	var resp catalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	return resp
}

func TestServeCatalog_All(t *testing.T) {
	h, objects, items := newTestHandler(t)
	seedCatalog(objects, items)

	resp := serveCatalog(t, h, "/api/catalog")
	if resp.Total != 5 {
		t.Errorf("total = %d, want 5", resp.Total)
	}
	if resp.ContentType != "all" {
		t.Errorf("contentType = %q, want %q", resp.ContentType, "all")
	}
}

func TestServeCatalog_FacetConjunction(t *testing.T) {
	h, objects, items := newTestHandler(t)
	seedCatalog(objects, items)

	resp := serveCatalog(t, h, "/api/catalog?type=oed&component=Matem%C3%A1tica&grade=5%C2%BA+Ano")
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	if got := resp.Results[0].LearningObject.Title; got != "Frações no cotidiano" {
		t.Errorf("result = %q, want the single Matemática 5º Ano object", got)
	}
}

func TestServeCatalog_AbbreviationSelection(t *testing.T) {
	h, objects, items := newTestHandler(t)
	seedCatalog(objects, items)

	resp := serveCatalog(t, h, "/api/catalog?type=oed&component=MAT")
	if resp.Total != 2 {
		t.Errorf("total = %d, want 2 (MAT expands to Matemática)", resp.Total)
	}
}

func TestServeCatalog_FreeText(t *testing.T) {
	h, objects, items := newTestHandler(t)
	seedCatalog(objects, items)

	resp := serveCatalog(t, h, "/api/catalog?q=termo")
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	if got := resp.Results[0].AudiovisualItem.ChapterName; got != "Termodinâmica" {
		t.Errorf("result = %q", got)
	}
}

func TestServeCatalog_FacetOptionsFromPartitionOnly(t *testing.T) {
	h, objects, items := newTestHandler(t)
	seedCatalog(objects, items)

	// Narrowing to one component must not shrink the component options:
	// they come from the coarse partition, not the filtered set.
	resp := serveCatalog(t, h, "/api/catalog?type=oed&component=Ci%C3%AAncias")
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	if got := len(resp.FacetOptions["component"]); got != 2 {
		t.Errorf("component options = %v, want both components", resp.FacetOptions["component"])
	}
	if got := len(resp.FacetOptions["videoCategory"]); got != 0 {
		t.Errorf("videoCategory options leaked into the oed partition: %v", resp.FacetOptions["videoCategory"])
	}
}

func TestServeCatalog_UnknownType(t *testing.T) {
	h, objects, items := newTestHandler(t)
	seedCatalog(objects, items)

	req := httptest.NewRequest("GET", "/api/catalog?type=podcast", nil)
	rec := httptest.NewRecorder()
	h.ServeCatalog(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
