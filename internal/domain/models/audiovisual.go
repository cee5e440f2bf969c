// internal/domain/models/audiovisual.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AudiovisualItem is a video lecture or chapter recording. It shares the
// store with LearningObject but lives in its own collection because the
// two content types carry different descriptive fields.
//
// A row lacking both Code and ChapterName has no stable identity or
// display title and is rejected by the import pipeline.
type AudiovisualItem struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Code is the natural key from the source spreadsheet, when present.
	Code string `bson:"code,omitempty" json:"code,omitempty"`

	Brand       string `bson:"brand,omitempty" json:"brand,omitempty"`
	Segment     string `bson:"segment,omitempty" json:"segment,omitempty"`
	GradeModule string `bson:"grade_module,omitempty" json:"gradeModule,omitempty"`
	Volume      string `bson:"volume,omitempty" json:"volume,omitempty"`
	Component   string `bson:"component,omitempty" json:"component,omitempty"`

	ChapterNumber string `bson:"chapter_number,omitempty" json:"chapterNumber,omitempty"`
	ChapterName   string `bson:"chapter_name,omitempty" json:"chapterName,omitempty"`
	ChapterNameCI string `bson:"chapter_name_ci,omitempty" json:"-"`

	VideoCategory string `bson:"video_category,omitempty" json:"videoCategory,omitempty"`
	ExamBoard     string `bson:"exam_board,omitempty" json:"examBoard,omitempty"`
	StatementText string `bson:"statement_text,omitempty" json:"statementText,omitempty"`

	Link     string `bson:"link,omitempty" json:"link,omitempty"`
	ImageURL string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// HasIdentity reports whether the item can be stored at all.
func (a *AudiovisualItem) HasIdentity() bool {
	return a.Code != "" || a.ChapterName != ""
}
