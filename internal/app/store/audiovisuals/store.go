// internal/app/store/audiovisuals/store.go
package audiovisualstore

import (
	"context"
	"errors"
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

var ErrDuplicateCode = errors.New("an audiovisual item with this code already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audiovisual_items")}
}

// Insert adds a new audiovisual item, setting ChapterNameCI and
// timestamps. Identity (code or chapter name) is the mapper's problem;
// the store only persists.
func (s *Store) Insert(ctx context.Context, a models.AudiovisualItem) (models.AudiovisualItem, error) {
	now := time.Now().UTC()

	a.ID = primitive.NewObjectID()
	a.ChapterNameCI = text.Fold(a.ChapterName)
	a.CreatedAt = now
	a.UpdatedAt = &now

	_, err := s.c.InsertOne(ctx, a)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.AudiovisualItem{}, ErrDuplicateCode
		}
		return models.AudiovisualItem{}, err
	}
	return a, nil
}

// Update replaces every import-owned field and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, a models.AudiovisualItem) error {
	now := time.Now().UTC()
	set := bson.M{
		"code":            a.Code,
		"brand":           a.Brand,
		"segment":         a.Segment,
		"grade_module":    a.GradeModule,
		"volume":          a.Volume,
		"component":       a.Component,
		"chapter_number":  a.ChapterNumber,
		"chapter_name":    a.ChapterName,
		"chapter_name_ci": text.Fold(a.ChapterName),
		"video_category":  a.VideoCategory,
		"exam_board":      a.ExamBoard,
		"statement_text":  a.StatementText,
		"link":            a.Link,
		"image_url":       a.ImageURL,
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

// FindByCode returns the item with the vendor code, or (nil, nil) when
// none matches.
func (s *Store) FindByCode(ctx context.Context, code string) (*models.AudiovisualItem, error) {
	var a models.AudiovisualItem
	err := s.c.FindOne(ctx, bson.M{"code": code}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByChapterName is the fallback upsert key for codeless rows.
func (s *Store) FindByChapterName(ctx context.Context, name string) (*models.AudiovisualItem, error) {
	var a models.AudiovisualItem
	err := s.c.FindOne(ctx, bson.M{"chapter_name": name}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID returns an audiovisual item by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.AudiovisualItem, error) {
	var a models.AudiovisualItem
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.AudiovisualItem{}, err
	}
	return a, nil
}

// Delete removes an item by ID. Returns the number of documents deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListAll returns every audiovisual item sorted by chapter name.
func (s *Store) ListAll(ctx context.Context) ([]models.AudiovisualItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "chapter_name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.AudiovisualItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of items matching the filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
