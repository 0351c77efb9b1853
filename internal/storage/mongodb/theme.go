package mongodb

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-backend/internal/models"
)

type ThemeStore struct {
	coll *mongo.Collection
}

func (s *ThemeStore) List(ctx context.Context) ([]models.Theme, error) {
	cur, err := s.coll.Find(ctx, activeFilter(nil), newestFirst())
	if err != nil {
		return nil, classify(err)
	}
	themes := []models.Theme{}
	if err := cur.All(ctx, &themes); err != nil {
		return nil, classify(err)
	}
	return themes, nil
}

func (s *ThemeStore) GetByName(ctx context.Context, name string) (*models.Theme, error) {
	var theme models.Theme
	err := s.coll.FindOne(ctx, activeFilter(bson.M{
		"themeName": caseInsensitive(name),
	})).Decode(&theme)
	if err != nil {
		return nil, classify(err)
	}
	return &theme, nil
}

func (s *ThemeStore) Insert(ctx context.Context, theme *models.Theme) error {
	res, err := s.coll.InsertOne(ctx, theme)
	if err != nil {
		return classify(err)
	}
	theme.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *ThemeStore) Update(ctx context.Context, name string, fields map[string]interface{}) (*models.Theme, error) {
	var theme models.Theme
	err := s.coll.FindOneAndUpdate(ctx,
		activeFilter(bson.M{"themeName": caseInsensitive(name)}),
		bson.M{"$set": withUpdatedAt(fields)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&theme)
	if err != nil {
		return nil, classify(err)
	}
	return &theme, nil
}

func (s *ThemeStore) SoftDelete(ctx context.Context, name string) error {
	return softDeleteByKey(ctx, s.coll, bson.M{"themeName": caseInsensitive(name)})
}

func (s *ThemeStore) Count(ctx context.Context) (int64, int64, error) {
	return countCollection(ctx, s.coll)
}

// caseInsensitive builds an unanchored case-insensitive regex match on a
// natural key. The parameter is quoted, so the lookup is a substring match,
// not a user-supplied pattern; when several records match, the first in
// query order wins.
func caseInsensitive(key string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(key), Options: "i"}
}

func withUpdatedAt(fields map[string]interface{}) bson.M {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	return set
}
