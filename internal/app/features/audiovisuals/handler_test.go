package audiovisuals_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/acervodigital/oedhub/internal/app/features/audiovisuals"
	uierrors "github.com/acervodigital/oedhub/internal/app/features/errors"
	"github.com/acervodigital/oedhub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*audiovisuals.Handler, *testutil.AudiovisualCatalog) {
	t.Helper()
	store := &testutil.AudiovisualCatalog{}
	logger := zap.NewNop()
	return audiovisuals.NewHandler(store, uierrors.NewErrorLogger(logger), logger), store
}

func TestHandleCreate_SanitizesStatement(t *testing.T) {
	h, store := newTestHandler(t)

	body := `{"code":"AV1","chapterName":"Termodinâmica","statementText":"<p>Um gás <b>ideal</b> expande.</p>"}`
	req := httptest.NewRequest("POST", "/api/audiovisuals", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := store.Items[0].StatementText; got != "Um gás ideal expande." {
		t.Errorf("statement = %q, want markup stripped", got)
	}
}

func TestHandleCreate_NoIdentity(t *testing.T) {
	h, store := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/audiovisuals", strings.NewReader(`{"component":"Física"}`))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(store.Items) != 0 {
		t.Errorf("store holds %d items, want 0", len(store.Items))
	}
}

func TestHandleCreate_ChapterNameOnlyIsEnough(t *testing.T) {
	h, store := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/audiovisuals", strings.NewReader(`{"chapterName":"Óptica"}`))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(store.Items) != 1 {
		t.Errorf("store holds %d items, want 1", len(store.Items))
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("DELETE", "/api/audiovisuals/x", nil)
	req = testutil.WithChiURLParam(req, "id", "000000000000000000000001")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
