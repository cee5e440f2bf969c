// internal/app/system/importer/importer.go
package importer

import (
	"context"
	"fmt"

	"github.com/acervodigital/oedhub/internal/app/system/rowmap"
	"github.com/acervodigital/oedhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MaxReportedErrors caps the error list carried in a Result. The full
// failure count is retained in Failed; callers needing every message
// must consult the run logs.
const MaxReportedErrors = 10

// Store contracts the pipeline writes through. The Mongo stores satisfy
// them in production; tests use the in-memory fakes in testutil. Lookups
// return (nil, nil) when no record matches.

type LearningObjectCatalog interface {
	FindByExternalCode(ctx context.Context, code string) (*models.LearningObject, error)
	FindByTitle(ctx context.Context, title string) (*models.LearningObject, error)
	Insert(ctx context.Context, o models.LearningObject) (models.LearningObject, error)
	Update(ctx context.Context, id primitive.ObjectID, o models.LearningObject) error
}

type AudiovisualCatalog interface {
	FindByCode(ctx context.Context, code string) (*models.AudiovisualItem, error)
	FindByChapterName(ctx context.Context, name string) (*models.AudiovisualItem, error)
	Insert(ctx context.Context, a models.AudiovisualItem) (models.AudiovisualItem, error)
	Update(ctx context.Context, id primitive.ObjectID, a models.AudiovisualItem) error
}

type SkillCatalog interface {
	FindByCode(ctx context.Context, code string) (*models.CurriculumSkill, error)
	Insert(ctx context.Context, s models.CurriculumSkill) (models.CurriculumSkill, error)
	Update(ctx context.Context, id primitive.ObjectID, s models.CurriculumSkill) error
	ListCodes(ctx context.Context) (map[string]struct{}, error)
}

// RowError records one failed or skipped source row. Row is 1-based and
// counts data rows (the header is not a row).
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Result summarizes one import run.
type Result struct {
	RunID     string     `json:"runId"`
	TotalRows int        `json:"totalRows"`
	Imported  int        `json:"imported"`
	Created   int        `json:"created"`
	Updated   int        `json:"updated"`
	Skipped   int        `json:"skipped"`
	Failed    int        `json:"failed"`
	Errors    []RowError `json:"errors,omitempty"`
}

// HasErrors reports whether any row failed or was skipped with a reason.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

func (r *Result) addError(row int, reason string) {
	if len(r.Errors) < MaxReportedErrors {
		r.Errors = append(r.Errors, RowError{Row: row, Reason: reason})
	}
}

// Runner executes import batches. Rows are processed strictly
// sequentially: each row's upsert is a read-then-write against the shared
// store, and the run assumes a single writer (enforced operationally).
// Awaiting every store round-trip before the next row bounds memory and
// keeps write pressure flat.
type Runner struct {
	Objects LearningObjectCatalog
	Items   AudiovisualCatalog
	Skills  SkillCatalog

	// DefaultImageURL seeds the row mapper's stock-image fallback.
	DefaultImageURL string

	Log *zap.Logger
}

// ImportLearningObjects maps and upserts every row. A failing row is
// recorded and skipped; the batch always runs to completion. An empty
// batch is a structured failure result, not an error.
func (r *Runner) ImportLearningObjects(ctx context.Context, rows []rowmap.Row) (Result, error) {
	res := Result{RunID: uuid.NewString(), TotalRows: len(rows)}
	if len(rows) == 0 {
		res.addError(0, "source contains no rows")
		return res, nil
	}

	// Load the full skill code set once per run; per-row codes missing
	// from it are nulled by the mapper.
	codes, err := r.Skills.ListCodes(ctx)
	if err != nil {
		return res, fmt.Errorf("load curriculum skill codes: %w", err)
	}
	m := &rowmap.Mapper{DefaultImageURL: r.DefaultImageURL, SkillCodes: codes}

	for i, row := range rows {
		rowNum := i + 1

		obj, err := m.LearningObject(row)
		if err != nil {
			res.Skipped++
			res.Failed++
			res.addError(rowNum, err.Error())
			continue
		}

		created, err := r.upsertObject(ctx, obj)
		if err != nil {
			res.Failed++
			res.addError(rowNum, err.Error())
			continue
		}

		res.Imported++
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	r.logRun("learning object import", &res)
	return res, nil
}

// upsertObject reconciles one mapped record against the store: match by
// external code when the row carries one, else by exact title; full
// replace on match, insert otherwise.
func (r *Runner) upsertObject(ctx context.Context, obj models.LearningObject) (created bool, err error) {
	var existing *models.LearningObject
	if obj.HasExternalCode() {
		existing, err = r.Objects.FindByExternalCode(ctx, obj.ExternalCode)
	} else {
		existing, err = r.Objects.FindByTitle(ctx, obj.Title)
	}
	if err != nil {
		return false, err
	}

	if existing != nil {
		return false, r.Objects.Update(ctx, existing.ID, obj)
	}
	_, err = r.Objects.Insert(ctx, obj)
	return true, err
}

// ImportAudiovisuals is the AudiovisualItem variant of the batch loop.
func (r *Runner) ImportAudiovisuals(ctx context.Context, rows []rowmap.Row) (Result, error) {
	res := Result{RunID: uuid.NewString(), TotalRows: len(rows)}
	if len(rows) == 0 {
		res.addError(0, "source contains no rows")
		return res, nil
	}

	m := &rowmap.Mapper{DefaultImageURL: r.DefaultImageURL}

	for i, row := range rows {
		rowNum := i + 1

		item, err := m.Audiovisual(row)
		if err != nil {
			res.Skipped++
			res.Failed++
			res.addError(rowNum, err.Error())
			continue
		}

		created, err := r.upsertItem(ctx, item)
		if err != nil {
			res.Failed++
			res.addError(rowNum, err.Error())
			continue
		}

		res.Imported++
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	r.logRun("audiovisual import", &res)
	return res, nil
}

func (r *Runner) upsertItem(ctx context.Context, item models.AudiovisualItem) (created bool, err error) {
	var existing *models.AudiovisualItem
	if item.Code != "" {
		existing, err = r.Items.FindByCode(ctx, item.Code)
	} else {
		existing, err = r.Items.FindByChapterName(ctx, item.ChapterName)
	}
	if err != nil {
		return false, err
	}

	if existing != nil {
		return false, r.Items.Update(ctx, existing.ID, item)
	}
	_, err = r.Items.Insert(ctx, item)
	return true, err
}

func (r *Runner) logRun(name string, res *Result) {
	if r.Log == nil {
		return
	}
	r.Log.Info(name+" completed",
		zap.String("run_id", res.RunID),
		zap.Int("total_rows", res.TotalRows),
		zap.Int("imported", res.Imported),
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))
}
