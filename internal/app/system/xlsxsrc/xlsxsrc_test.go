package xlsxsrc

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

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

func TestRead(t *testing.T) {
	buf := buildWorkbook(t,
		[]interface{}{"Título", "Componente", "Ano"},
		[]interface{}{"Fractions 101", "MAT", "5º Ano"},
		[]interface{}{"", "", ""},
		[]interface{}{"Cells", "CIE", "6º Ano"},
	)

	rows, err := Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank row dropped)", len(rows))
	}
	if rows[0]["Título"] != "Fractions 101" || rows[0]["Componente"] != "MAT" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1]["Ano"] != "6º Ano" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestRead_HeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, []interface{}{"Título", "Componente"})

	rows, err := Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestRead_RaggedRows(t *testing.T) {
	buf := buildWorkbook(t,
		[]interface{}{"Título", "Componente", "Ano"},
		[]interface{}{"Short row"},
	)

	rows, err := Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0]["Título"] != "Short row" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if _, ok := rows[0]["Ano"]; ok {
		t.Error("missing trailing cells should be absent, not empty strings")
	}
}

func TestLoad_SourceNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planilha.xlsx")

	buf := buildWorkbook(t, []interface{}{"Título"})
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	got, err := Locate(filepath.Join(dir, "nope.xlsx"), path)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if got != path {
		t.Errorf("Locate = %q, want %q", got, path)
	}
}
