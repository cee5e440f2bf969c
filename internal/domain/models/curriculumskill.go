// internal/domain/models/curriculumskill.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CurriculumSkill is a BNCC reference record ("habilidade"). The set is
// populated once from the legacy database and referenced read-only by the
// LearningObject import for curriculum-code validation.
type CurriculumSkill struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Code is the unique natural key, e.g. "EF05MA01".
	Code string `bson:"code" json:"code"`

	SkillLabel  string `bson:"skill_label,omitempty" json:"skillLabel,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Component   string `bson:"component,omitempty" json:"component,omitempty"`
	GradeLevel  string `bson:"grade_level,omitempty" json:"gradeLevel,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
