// internal/domain/models/learningobject.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LearningObject is the canonical unit of digital content in the catalog
// (an OED/ODA: a digital learning object aligned to the BNCC curriculum).
//
// Records are created and refreshed by the import pipeline. Reconciliation
// uses ExternalCode when the source row carries one, otherwise exact Title
// equality, so re-importing an unchanged spreadsheet updates in place.
type LearningObject struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// ExternalCode is the natural key from the source spreadsheet, when present.
	ExternalCode string `bson:"external_code,omitempty" json:"externalCode,omitempty"`

	Title   string `bson:"title" json:"title"`
	TitleCI string `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped

	Component     string   `bson:"component,omitempty" json:"curricularComponent,omitempty"`
	ComponentTags []string `bson:"component_tags,omitempty" json:"componentTags,omitempty"`
	TagColor      string   `bson:"tag_color,omitempty" json:"tagColor,omitempty"`

	GradeLevel string `bson:"grade_level,omitempty" json:"gradeLevel,omitempty"`
	Volume     string `bson:"volume,omitempty" json:"volume,omitempty"`
	Segment    string `bson:"segment,omitempty" json:"segment,omitempty"`
	Brand      string `bson:"brand,omitempty" json:"brand,omitempty"`
	ObjectType string `bson:"object_type,omitempty" json:"objectType,omitempty"`
	SAMRLevel  string `bson:"samr_level,omitempty" json:"samrLevel,omitempty"`
	Status     string `bson:"status,omitempty" json:"status,omitempty"`

	// CurriculumCode references a CurriculumSkill by its natural code.
	// The import pipeline nulls codes that do not resolve, so a stored
	// value always points at an existing skill.
	CurriculumCode string `bson:"curriculum_code,omitempty" json:"curriculumCode,omitempty"`

	ImageURL    string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	ResourceURL string `bson:"resource_url,omitempty" json:"resourceUrl,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// HasExternalCode reports whether this object carries a spreadsheet natural key.
func (o *LearningObject) HasExternalCode() bool {
	return o.ExternalCode != ""
}
