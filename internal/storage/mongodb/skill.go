package mongodb

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
)

type SkillStore struct {
	coll *mongo.Collection
}

func (s *SkillStore) List(ctx context.Context, filter storage.SkillFilter) ([]models.Skill, error) {
	query := bson.M{}
	if filter.Category != "" {
		// Categories are stored lowercased, so an exact match on the
		// lowercased input is case-insensitive.
		query["category"] = strings.ToLower(filter.Category)
	}
	if filter.ProficiencyLevel != nil {
		query["proficiencyLevel"] = *filter.ProficiencyLevel
	}

	cur, err := s.coll.Find(ctx, activeFilter(query), newestFirst())
	if err != nil {
		return nil, classify(err)
	}
	skills := []models.Skill{}
	if err := cur.All(ctx, &skills); err != nil {
		return nil, classify(err)
	}
	return skills, nil
}

func (s *SkillStore) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	err := s.coll.FindOne(ctx, activeFilter(bson.M{
		"name": caseInsensitive(name),
	})).Decode(&skill)
	if err != nil {
		return nil, classify(err)
	}
	return &skill, nil
}

func (s *SkillStore) Insert(ctx context.Context, skill *models.Skill) error {
	res, err := s.coll.InsertOne(ctx, skill)
	if err != nil {
		return classify(err)
	}
	skill.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *SkillStore) Update(ctx context.Context, name string, fields map[string]interface{}) (*models.Skill, error) {
	var skill models.Skill
	err := s.coll.FindOneAndUpdate(ctx,
		activeFilter(bson.M{"name": caseInsensitive(name)}),
		bson.M{"$set": withUpdatedAt(fields)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&skill)
	if err != nil {
		return nil, classify(err)
	}
	return &skill, nil
}

func (s *SkillStore) SoftDelete(ctx context.Context, name string) error {
	return softDeleteByKey(ctx, s.coll, bson.M{"name": caseInsensitive(name)})
}

func (s *SkillStore) Count(ctx context.Context) (int64, int64, error) {
	return countCollection(ctx, s.coll)
}
