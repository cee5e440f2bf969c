// internal/app/store/learningobjects/store.go
package learningobjectstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/acervodigital/oedhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateCode = errors.New("a learning object with this code already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("learning_objects")}
}

// Insert adds a new learning object, setting TitleCI and timestamps.
func (s *Store) Insert(ctx context.Context, o models.LearningObject) (models.LearningObject, error) {
	now := time.Now().UTC()

	o.ID = primitive.NewObjectID()
	o.TitleCI = text.Fold(o.Title)
	if o.Status == "" {
		o.Status = models.StatusActive
	}
	if o.ObjectType == "" {
		o.ObjectType = models.DefaultObjectType
	}
	o.CreatedAt = now
	o.UpdatedAt = &now

	if strings.TrimSpace(o.Title) == "" {
		return models.LearningObject{}, mongo.CommandError{Message: "title is required"}
	}

	_, err := s.c.InsertOne(ctx, o)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.LearningObject{}, ErrDuplicateCode
		}
		return models.LearningObject{}, err
	}
	return o, nil
}

// Update replaces every import-owned field and refreshes UpdatedAt.
// CreatedAt is preserved; repeated imports keep the record's history.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, o models.LearningObject) error {
	if strings.TrimSpace(o.Title) == "" {
		return mongo.CommandError{Message: "title is required"}
	}
	if o.Status == "" {
		o.Status = models.StatusActive
	}
	if o.ObjectType == "" {
		o.ObjectType = models.DefaultObjectType
	}

	now := time.Now().UTC()
	set := bson.M{
		"external_code":   o.ExternalCode,
		"title":           o.Title,
		"title_ci":        text.Fold(o.Title),
		"component":       o.Component,
		"component_tags":  o.ComponentTags,
		"tag_color":       o.TagColor,
		"grade_level":     o.GradeLevel,
		"volume":          o.Volume,
		"segment":         o.Segment,
		"brand":           o.Brand,
		"object_type":     o.ObjectType,
		"samr_level":      o.SAMRLevel,
		"status":          o.Status,
		"curriculum_code": o.CurriculumCode,
		"image_url":       o.ImageURL,
		"resource_url":    o.ResourceURL,
		"updated_at":      now,
	}

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

// FindByExternalCode returns the object carrying the vendor code, or
// (nil, nil) when none does.
func (s *Store) FindByExternalCode(ctx context.Context, code string) (*models.LearningObject, error) {
	var o models.LearningObject
	err := s.c.FindOne(ctx, bson.M{"external_code": code}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByTitle matches on the exact title. Used as the upsert key for
// rows that carry no external code.
func (s *Store) FindByTitle(ctx context.Context, title string) (*models.LearningObject, error) {
	var o models.LearningObject
	err := s.c.FindOne(ctx, bson.M{"title": title}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByID returns a learning object by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.LearningObject, error) {
	var o models.LearningObject
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return models.LearningObject{}, err
	}
	return o, nil
}

// Delete removes a learning object by ID. Returns the number of
// documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListAll returns every learning object, sorted by title for stable
// output. The gallery bulk-fetches the full set and filters in memory.
func (s *Store) ListAll(ctx context.Context) ([]models.LearningObject, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.LearningObject
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of learning objects matching the filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
