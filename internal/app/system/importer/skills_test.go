package importer_test

import (
	"context"
	"testing"

	"github.com/acervodigital/oedhub/internal/app/system/importer"
	"github.com/acervodigital/oedhub/internal/app/system/sqlitesrc"
	"github.com/acervodigital/oedhub/internal/testutil"
	"go.uber.org/zap"
)

func TestImportSkills_SeedsAndUpdates(t *testing.T) {
	skills := &testutil.SkillCatalog{}
	r := &importer.Runner{Skills: skills, Log: zap.NewNop()}
	ctx := context.Background()

	rows := []sqlitesrc.SkillRow{
		{Code: "EF05MA01", Skill: "Números", Description: "Sistema de numeração decimal", Component: "Matemática", Grade: "5º Ano"},
		{Code: "EF06CI02", Skill: "Matéria e energia", Component: "Ciências", Grade: "6º Ano"},
	}

	res, err := r.ImportSkills(ctx, rows)
	if err != nil {
		t.Fatalf("ImportSkills() error: %v", err)
	}
	if res.Created != 2 || res.Updated != 0 {
		t.Fatalf("created=%d updated=%d, want 2/0", res.Created, res.Updated)
	}

	rows[0].Description = "Sistema de numeração decimal (revisado)"
	res, err = r.ImportSkills(ctx, rows)
	if err != nil {
		t.Fatalf("ImportSkills() re-run error: %v", err)
	}
	if res.Created != 0 || res.Updated != 2 {
		t.Errorf("re-run: created=%d updated=%d, want 0/2", res.Created, res.Updated)
	}
	if len(skills.Skills) != 2 {
		t.Errorf("store holds %d skills after re-run, want 2", len(skills.Skills))
	}
	if skills.Skills[0].Description != "Sistema de numeração decimal (revisado)" {
		t.Errorf("description not replaced: %q", skills.Skills[0].Description)
	}
}

func TestImportSkills_RowsWithoutCodeSkippedSilently(t *testing.T) {
	skills := &testutil.SkillCatalog{}
	r := &importer.Runner{Skills: skills, Log: zap.NewNop()}

	rows := []sqlitesrc.SkillRow{
		{Code: "", Skill: "linha de cabeçalho perdida"},
		{Code: "EF05MA01", Skill: "Números"},
	}

	res, err := r.ImportSkills(context.Background(), rows)
	if err != nil {
		t.Fatalf("ImportSkills() error: %v", err)
	}
	if res.Skipped != 1 || res.Created != 1 {
		t.Errorf("skipped=%d created=%d, want 1/1", res.Skipped, res.Created)
	}
	if res.HasErrors() {
		t.Errorf("codeless rows must not produce error entries, got %+v", res.Errors)
	}
}

func TestImportSkills_EmptySource(t *testing.T) {
	r := &importer.Runner{Skills: &testutil.SkillCatalog{}, Log: zap.NewNop()}

	res, err := r.ImportSkills(context.Background(), nil)
	if err != nil {
		t.Fatalf("ImportSkills() error: %v", err)
	}
	if !res.HasErrors() {
		t.Fatal("empty source must produce a structured failure")
	}
}
