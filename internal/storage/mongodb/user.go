package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-backend/internal/models"
	"portfolio-backend/pkg/response"
)

type UserStore struct {
	coll *mongo.Collection
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.coll.Find(ctx, activeFilter(nil), newestFirst())
	if err != nil {
		return nil, classify(err)
	}
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, classify(err)
	}
	return users, nil
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, activeFilter(bson.M{
		"username": caseInsensitive(username),
	})).Decode(&user)
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// GetByID looks a user up by ObjectID hex without the isActive restriction:
// project ownership references resolve against soft-deleted users too.
func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, response.ErrInvalidID
	}
	var user models.User
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return classify(err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *UserStore) Update(ctx context.Context, username string, fields map[string]interface{}) (*models.User, error) {
	var user models.User
	err := s.coll.FindOneAndUpdate(ctx,
		activeFilter(bson.M{"username": caseInsensitive(username)}),
		bson.M{"$set": withUpdatedAt(fields)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (s *UserStore) SoftDelete(ctx context.Context, username string) error {
	return softDeleteByKey(ctx, s.coll, bson.M{"username": caseInsensitive(username)})
}

func (s *UserStore) Count(ctx context.Context) (int64, int64, error) {
	return countCollection(ctx, s.coll)
}
