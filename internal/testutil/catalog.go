package testutil

import (
	"context"
	"sync"

	"github.com/acervodigital/oedhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory catalog fakes. They satisfy the importer's store contracts
// and the feature handlers' lister interfaces, so pipeline and handler
// tests run without a Mongo instance. Lookups return (nil, nil) on miss,
// matching the Mongo stores.

// LearningObjectCatalog is an in-memory stand-in for the learning
// object store.
type LearningObjectCatalog struct {
	mu      sync.Mutex
	Objects []models.LearningObject

	// Err, when set, is returned by every method. Use it to exercise
	// store-failure paths.
	Err error
}

func (c *LearningObjectCatalog) FindByExternalCode(_ context.Context, code string) (*models.LearningObject, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	for i := range c.Objects {
		if c.Objects[i].ExternalCode == code {
			o := c.Objects[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (c *LearningObjectCatalog) FindByTitle(_ context.Context, title string) (*models.LearningObject, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	for i := range c.Objects {
		if c.Objects[i].Title == title {
			o := c.Objects[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (c *LearningObjectCatalog) Insert(_ context.Context, o models.LearningObject) (models.LearningObject, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return models.LearningObject{}, c.Err
	}
	o.ID = primitive.NewObjectID()
	c.Objects = append(c.Objects, o)
	return o, nil
}

func (c *LearningObjectCatalog) Update(_ context.Context, id primitive.ObjectID, o models.LearningObject) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	for i := range c.Objects {
		if c.Objects[i].ID == id {
			o.ID = id
			c.Objects[i] = o
			return nil
		}
	}
	return nil
}

func (c *LearningObjectCatalog) GetByID(_ context.Context, id primitive.ObjectID) (models.LearningObject, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return models.LearningObject{}, c.Err
	}
	for i := range c.Objects {
		if c.Objects[i].ID == id {
			return c.Objects[i], nil
		}
	}
	return models.LearningObject{}, mongo.ErrNoDocuments
}

func (c *LearningObjectCatalog) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return 0, c.Err
	}
	for i := range c.Objects {
		if c.Objects[i].ID == id {
			c.Objects = append(c.Objects[:i], c.Objects[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *LearningObjectCatalog) ListAll(_ context.Context) ([]models.LearningObject, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	out := make([]models.LearningObject, len(c.Objects))
	copy(out, c.Objects)
	return out, nil
}

// AudiovisualCatalog is an in-memory stand-in for the audiovisual store.
type AudiovisualCatalog struct {
	mu    sync.Mutex
	Items []models.AudiovisualItem
	Err   error
}

func (c *AudiovisualCatalog) FindByCode(_ context.Context, code string) (*models.AudiovisualItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	for i := range c.Items {
		if c.Items[i].Code == code {
			a := c.Items[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (c *AudiovisualCatalog) FindByChapterName(_ context.Context, name string) (*models.AudiovisualItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	for i := range c.Items {
		if c.Items[i].ChapterName == name {
			a := c.Items[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (c *AudiovisualCatalog) Insert(_ context.Context, a models.AudiovisualItem) (models.AudiovisualItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return models.AudiovisualItem{}, c.Err
	}
	a.ID = primitive.NewObjectID()
	c.Items = append(c.Items, a)
	return a, nil
}

func (c *AudiovisualCatalog) Update(_ context.Context, id primitive.ObjectID, a models.AudiovisualItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			a.ID = id
			c.Items[i] = a
			return nil
		}
	}
	return nil
}

func (c *AudiovisualCatalog) GetByID(_ context.Context, id primitive.ObjectID) (models.AudiovisualItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return models.AudiovisualItem{}, c.Err
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			return c.Items[i], nil
		}
	}
	return models.AudiovisualItem{}, mongo.ErrNoDocuments
}

func (c *AudiovisualCatalog) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return 0, c.Err
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *AudiovisualCatalog) ListAll(_ context.Context) ([]models.AudiovisualItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	out := make([]models.AudiovisualItem, len(c.Items))
	copy(out, c.Items)
	return out, nil
}

// SkillCatalog is an in-memory stand-in for the curriculum skill store.
type SkillCatalog struct {
	mu     sync.Mutex
	Skills []models.CurriculumSkill
	Err    error
}

func (c *SkillCatalog) FindByCode(_ context.Context, code string) (*models.CurriculumSkill, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	for i := range c.Skills {
		if c.Skills[i].Code == code {
			s := c.Skills[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (c *SkillCatalog) Insert(_ context.Context, s models.CurriculumSkill) (models.CurriculumSkill, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return models.CurriculumSkill{}, c.Err
	}
	s.ID = primitive.NewObjectID()
	c.Skills = append(c.Skills, s)
	return s, nil
}

func (c *SkillCatalog) Update(_ context.Context, id primitive.ObjectID, s models.CurriculumSkill) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			s.ID = id
			c.Skills[i] = s
			return nil
		}
	}
	return nil
}

func (c *SkillCatalog) ListCodes(_ context.Context) (map[string]struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	codes := make(map[string]struct{}, len(c.Skills))
	for i := range c.Skills {
		codes[c.Skills[i].Code] = struct{}{}
	}
	return codes, nil
}

func (c *SkillCatalog) ListAll(_ context.Context) ([]models.CurriculumSkill, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	out := make([]models.CurriculumSkill, len(c.Skills))
	copy(out, c.Skills)
	return out, nil
}
