package sqlitesrc

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func createLegacyDB(t *testing.T, schema string, inserts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	for _, ins := range inserts {
		if _, err := db.Exec(ins); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return path
}

func TestLoadSkills(t *testing.T) {
	path := createLegacyDB(t,
		`CREATE TABLE bncc_habilidades (
			"Codigo" TEXT,
			"Habilidade" TEXT,
			"Descricao" TEXT,
			"Componente" TEXT,
			"Ano" TEXT
		)`,
		`INSERT INTO bncc_habilidades VALUES ('EF05MA01', 'H1', 'Ler números', 'Matemática', '5º ano')`,
		`INSERT INTO bncc_habilidades VALUES ('', 'H2', 'Sem código', 'Matemática', '5º ano')`,
		`INSERT INTO bncc_habilidades VALUES ('EF06CI02', 'H3', NULL, 'Ciências', '6º ano')`,
	)

	rows, err := LoadSkills(path)
	if err != nil {
		t.Fatalf("LoadSkills failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (skip policy belongs to the importer)", len(rows))
	}
	if rows[0].Code != "EF05MA01" || rows[0].Description != "Ler números" || rows[0].Grade != "5º ano" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Code != "" {
		t.Errorf("row 1 code = %q, want empty", rows[1].Code)
	}
	if rows[2].Description != "" {
		t.Errorf("row 2 description = %q, want empty for NULL", rows[2].Description)
	}
}

func TestLoadSkills_ColumnSynonyms(t *testing.T) {
	// English column names resolve through the same substring synonyms.
	path := createLegacyDB(t,
		`CREATE TABLE skills ("code" TEXT, "skill" TEXT, "description" TEXT)`,
		`INSERT INTO skills VALUES ('EF01LP01', 'Reading', 'Decode words')`,
	)

	rows, err := LoadSkills(path)
	if err != nil {
		t.Fatalf("LoadSkills failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Code != "EF01LP01" || rows[0].Skill != "Reading" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestLoadSkills_NoCodeColumn(t *testing.T) {
	path := createLegacyDB(t, `CREATE TABLE bncc ("nome" TEXT)`)

	if _, err := LoadSkills(path); err == nil {
		t.Fatal("expected error for table without a code column")
	}
}

func TestLoadSkills_SourceNotFound(t *testing.T) {
	_, err := LoadSkills(filepath.Join(t.TempDir(), "missing.db"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestLocate(t *testing.T) {
	path := createLegacyDB(t, `CREATE TABLE bncc ("codigo" TEXT)`)

	got, err := Locate("/nonexistent/a.db", "", path)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if got != path {
		t.Errorf("Locate = %q, want %q", got, path)
	}

	if _, err := Locate("/nonexistent/a.db", "/nonexistent/b.db"); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("err = %v, want ErrSourceNotFound", err)
	}
}
