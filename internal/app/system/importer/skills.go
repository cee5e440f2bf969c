// internal/app/system/importer/skills.go
package importer

import (
	"context"

	"github.com/acervodigital/oedhub/internal/app/system/sqlitesrc"
	"github.com/acervodigital/oedhub/internal/domain/models"
	"github.com/google/uuid"
)

// ImportSkills seeds the CurriculumSkill reference set from the legacy
// database rows. A row without a code is skipped outright and not
// counted as an error: code is the natural key and a BNCC entry without
// one carries no information.
func (r *Runner) ImportSkills(ctx context.Context, rows []sqlitesrc.SkillRow) (Result, error) {
	res := Result{RunID: uuid.NewString(), TotalRows: len(rows)}
	if len(rows) == 0 {
		res.addError(0, "source contains no rows")
		return res, nil
	}

	for i, row := range rows {
		rowNum := i + 1

		if row.Code == "" {
			res.Skipped++
			continue
		}

		skill := models.CurriculumSkill{
			Code:        row.Code,
			SkillLabel:  row.Skill,
			Description: row.Description,
			Component:   row.Component,
			GradeLevel:  row.Grade,
		}

		existing, err := r.Skills.FindByCode(ctx, skill.Code)
		if err != nil {
			res.Failed++
			res.addError(rowNum, err.Error())
			continue
		}

		if existing != nil {
			if err := r.Skills.Update(ctx, existing.ID, skill); err != nil {
				res.Failed++
				res.addError(rowNum, err.Error())
				continue
			}
			res.Updated++
		} else {
			if _, err := r.Skills.Insert(ctx, skill); err != nil {
				res.Failed++
				res.addError(rowNum, err.Error())
				continue
			}
			res.Created++
		}
		res.Imported++
	}

	r.logRun("curriculum skill import", &res)
	return res, nil
}
