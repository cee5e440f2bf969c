package testutil

import (
	"time"

	"github.com/acervodigital/oedhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixture constructors for catalogue records. They return fully-formed
// models ready to seed the in-memory catalogs (or a live collection in
// integration setups).

// NewLearningObject builds an active learning object with sensible
// defaults for the remaining fields.
func NewLearningObject(title, component, grade string) models.LearningObject {
	now := time.Now().UTC()
	return models.LearningObject{
		ID:            primitive.NewObjectID(),
		Title:         title,
		TitleCI:       text.Fold(title),
		Component:     component,
		ComponentTags: []string{component},
		TagColor:      models.TagColorFor(component),
		GradeLevel:    grade,
		Segment:       "Anos Iniciais",
		Brand:         "Sistema Positivo",
		ObjectType:    models.DefaultObjectType,
		Status:        models.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     &now,
	}
}

// NewAudiovisualItem builds an audiovisual record keyed by code.
func NewAudiovisualItem(code, chapterName, component string) models.AudiovisualItem {
	now := time.Now().UTC()
	return models.AudiovisualItem{
		ID:            primitive.NewObjectID(),
		Code:          code,
		ChapterName:   chapterName,
		ChapterNameCI: text.Fold(chapterName),
		Component:     component,
		Segment:       "Ensino Médio",
		VideoCategory: "Aula",
		CreatedAt:     now,
		UpdatedAt:     &now,
	}
}

// NewCurriculumSkill builds a BNCC skill record.
func NewCurriculumSkill(code, component, grade string) models.CurriculumSkill {
	return models.CurriculumSkill{
		ID:         primitive.NewObjectID(),
		Code:       code,
		SkillLabel: code,
		Component:  component,
		GradeLevel: grade,
		CreatedAt:  time.Now().UTC(),
	}
}
