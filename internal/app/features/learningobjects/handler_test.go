package learningobjects_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/acervodigital/oedhub/internal/app/features/errors"
	"github.com/acervodigital/oedhub/internal/app/features/learningobjects"
	"github.com/acervodigital/oedhub/internal/domain/models"
	"github.com/acervodigital/oedhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*learningobjects.Handler, *testutil.LearningObjectCatalog) {
	t.Helper()
	store := &testutil.LearningObjectCatalog{}
	logger := zap.NewNop()
	return learningobjects.NewHandler(store, uierrors.NewErrorLogger(logger), logger), store
}

func TestServeList(t *testing.T) {
	h, store := newTestHandler(t)
	store.Objects = append(store.Objects,
		testutil.NewLearningObject("Frações", "Matemática", "5º Ano"),
		testutil.NewLearningObject("Cadeias", "Ciências", "6º Ano"),
	)

	req := httptest.NewRequest("GET", "/api/oeds", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []models.LearningObject
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestServeView_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/oeds/x", nil)
	req = testutil.WithChiURLParam(req, "id", primitive.NewObjectID().Hex())
	rec := httptest.NewRecorder()
	h.ServeView(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServeView_BadID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/oeds/nope", nil)
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec := httptest.NewRecorder()
	h.ServeView(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCreate_DerivesComponentFields(t *testing.T) {
	h, store := newTestHandler(t)

	body := `{"title":"Frações no cotidiano","curricularComponent":"MAT","gradeLevel":"5º Ano"}`
	req := httptest.NewRequest("POST", "/api/oeds", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(store.Objects) != 1 {
		t.Fatalf("store holds %d objects, want 1", len(store.Objects))
	}
	got := store.Objects[0]
	if got.Component != "Matemática" {
		t.Errorf("component = %q, want expanded name", got.Component)
	}
	if got.TagColor != models.TagColorFor("Matemática") {
		t.Errorf("tag color = %q", got.TagColor)
	}
	if len(got.ComponentTags) != 1 || got.ComponentTags[0] != "Matemática" {
		t.Errorf("component tags = %v, want single-element mirror", got.ComponentTags)
	}
}

func TestHandleCreate_NoTitle(t *testing.T) {
	h, store := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/oeds", strings.NewReader(`{"curricularComponent":"MAT"}`))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(store.Objects) != 0 {
		t.Errorf("store holds %d objects, want 0", len(store.Objects))
	}
}

func TestHandleDelete(t *testing.T) {
	h, store := newTestHandler(t)
	o := testutil.NewLearningObject("Frações", "Matemática", "5º Ano")
	store.Objects = append(store.Objects, o)

	req := httptest.NewRequest("DELETE", "/api/oeds/"+o.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", o.ID.Hex())
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if len(store.Objects) != 0 {
		t.Errorf("store holds %d objects after delete, want 0", len(store.Objects))
	}

	// Deleting again is a 404.
	rec = httptest.NewRecorder()
	h.HandleDelete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}
