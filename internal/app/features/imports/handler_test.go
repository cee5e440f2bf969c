package imports_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/acervodigital/oedhub/internal/app/features/errors"
	"github.com/acervodigital/oedhub/internal/app/features/imports"
	"github.com/acervodigital/oedhub/internal/app/system/importer"
	"github.com/acervodigital/oedhub/internal/testutil"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*imports.Handler, *testutil.LearningObjectCatalog, *testutil.AudiovisualCatalog) {
	t.Helper()
	objects := &testutil.LearningObjectCatalog{}
	items := &testutil.AudiovisualCatalog{}
	skills := &testutil.SkillCatalog{}
	logger := zap.NewNop()
	runner := &importer.Runner{
		Objects:         objects,
		Items:           items,
		Skills:          skills,
		DefaultImageURL: "/static/img/oed-default.webp",
		Log:             logger,
	}
	h := imports.NewHandler(runner, "", uierrors.NewErrorLogger(logger), logger)
	return h, objects, items
}

func buildWorkbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func multipartWorkbook(t *testing.T, workbook *bytes.Buffer) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "planilha.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(workbook.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func TestHandleImportOEDs(t *testing.T) {
	h, objects, _ := newTestHandler(t)

	workbook := buildWorkbook(t,
		[]interface{}{"Título recurso", "Componente", "Ano", "Código"},
		[]interface{}{"Frações no cotidiano", "MAT", "5º Ano", "ODA101"},
		[]interface{}{"", "LP", "5º Ano", ""}, // titleless, must be isolated
		[]interface{}{"Leitura dramática", "LP", "5º Ano", "ODA102"},
	)
	body, contentType := multipartWorkbook(t, workbook)

	req := httptest.NewRequest("POST", "/api/imports/oeds", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.HandleImportOEDs(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var res importer.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("parse result: %v", err)
	}
	if res.Created != 2 || res.Failed != 1 {
		t.Errorf("created=%d failed=%d, want 2/1", res.Created, res.Failed)
	}
	if len(objects.Objects) != 2 {
		t.Errorf("store holds %d objects, want 2", len(objects.Objects))
	}
}

func TestHandleImportAudiovisuals(t *testing.T) {
	h, _, items := newTestHandler(t)

	workbook := buildWorkbook(t,
		[]interface{}{"Código", "Nome do capítulo", "Componente"},
		[]interface{}{"AV1", "Termodinâmica", "Física"},
	)
	body, contentType := multipartWorkbook(t, workbook)

	req := httptest.NewRequest("POST", "/api/imports/audiovisuals", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.HandleImportAudiovisuals(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(items.Items) != 1 {
		t.Errorf("store holds %d items, want 1", len(items.Items))
	}
}

func TestHandleImportOEDs_MissingFile(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/imports/oeds", nil)
	rec := httptest.NewRecorder()
	h.HandleImportOEDs(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleImportBNCC_NoSourceConfigured(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/imports/bncc", nil)
	rec := httptest.NewRecorder()
	h.HandleImportBNCC(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
