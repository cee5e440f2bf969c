package skills_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/acervodigital/oedhub/internal/app/features/errors"
	"github.com/acervodigital/oedhub/internal/app/features/skills"
	"github.com/acervodigital/oedhub/internal/domain/models"
	"github.com/acervodigital/oedhub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*skills.Handler, *testutil.SkillCatalog) {
	t.Helper()
	store := &testutil.SkillCatalog{}
	logger := zap.NewNop()
	return skills.NewHandler(store, uierrors.NewErrorLogger(logger), logger), store
}

func TestServeList(t *testing.T) {
	h, store := newTestHandler(t)
	store.Skills = append(store.Skills,
		testutil.NewCurriculumSkill("EF05MA01", "Matemática", "5º Ano"),
		testutil.NewCurriculumSkill("EF06CI02", "Ciências", "6º Ano"),
	)

	req := httptest.NewRequest("GET", "/api/skills", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []models.CurriculumSkill
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestServeView(t *testing.T) {
	h, store := newTestHandler(t)
	store.Skills = append(store.Skills, testutil.NewCurriculumSkill("EF05MA01", "Matemática", "5º Ano"))

	req := httptest.NewRequest("GET", "/api/skills/EF05MA01", nil)
	req = testutil.WithChiURLParam(req, "code", "EF05MA01")
	rec := httptest.NewRecorder()
	h.ServeView(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest("GET", "/api/skills/EF99XX99", nil)
	req = testutil.WithChiURLParam(req, "code", "EF99XX99")
	rec = httptest.NewRecorder()
	h.ServeView(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown code status = %d, want 404", rec.Code)
	}
}
