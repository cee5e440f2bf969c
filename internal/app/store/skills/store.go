// internal/app/store/skills/store.go
package skillstore

import (
	"context"
	"errors"
	"time"

	"github.com/acervodigital/oedhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateCode = errors.New("a curriculum skill with this code already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("curriculum_skills")}
}

// Insert adds a new curriculum skill. Code is the natural key and must
// be present.
func (s *Store) Insert(ctx context.Context, sk models.CurriculumSkill) (models.CurriculumSkill, error) {
	if sk.Code == "" {
		return models.CurriculumSkill{}, mongo.CommandError{Message: "code is required"}
	}

	sk.ID = primitive.NewObjectID()
	sk.CreatedAt = time.Now().UTC()

	_, err := s.c.InsertOne(ctx, sk)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.CurriculumSkill{}, ErrDuplicateCode
		}
		return models.CurriculumSkill{}, err
	}
	return sk, nil
}

// Update replaces the mutable fields of a skill record.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, sk models.CurriculumSkill) error {
	set := bson.M{
		"code":        sk.Code,
		"skill_label": sk.SkillLabel,
		"description": sk.Description,
		"component":   sk.Component,
		"grade_level": sk.GradeLevel,
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

// FindByCode returns the skill with the given BNCC code, or (nil, nil)
// when none matches.
func (s *Store) FindByCode(ctx context.Context, code string) (*models.CurriculumSkill, error) {
	var sk models.CurriculumSkill
	err := s.c.FindOne(ctx, bson.M{"code": code}).Decode(&sk)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sk, nil
}

// ListCodes returns the full set of stored skill codes. Import runs load
// it once to validate per-row BNCC references.
func (s *Store) ListCodes(ctx context.Context) (map[string]struct{}, error) {
	opts := options.Find().SetProjection(bson.M{"code": 1})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	codes := make(map[string]struct{})
	for cur.Next(ctx) {
		var doc struct {
			Code string `bson:"code"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		codes[doc.Code] = struct{}{}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

// ListAll returns every skill sorted by code.
func (s *Store) ListAll(ctx context.Context) ([]models.CurriculumSkill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CurriculumSkill
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
