package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type ProjectStore struct {
	coll *mongo.Collection
}

func (s *ProjectStore) List(ctx context.Context, filter storage.ProjectFilter) ([]models.Project, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.UserID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.UserID)
		if err != nil {
			return nil, response.ErrInvalidID
		}
		query["userId"] = oid
	}

	cur, err := s.coll.Find(ctx, activeFilter(query), newestFirst())
	if err != nil {
		return nil, classify(err)
	}
	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, classify(err)
	}
	return projects, nil
}

// GetByID matches by exact generated identifier, unlike the natural-key
// stores which match by substring.
func (s *ProjectStore) GetByID(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, response.ErrInvalidID
	}
	var project models.Project
	if err := s.coll.FindOne(ctx, activeFilter(bson.M{"_id": oid})).Decode(&project); err != nil {
		return nil, classify(err)
	}
	return &project, nil
}

func (s *ProjectStore) Insert(ctx context.Context, project *models.Project) error {
	res, err := s.coll.InsertOne(ctx, project)
	if err != nil {
		return classify(err)
	}
	project.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *ProjectStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, response.ErrInvalidID
	}
	var project models.Project
	err = s.coll.FindOneAndUpdate(ctx,
		activeFilter(bson.M{"_id": oid}),
		bson.M{"$set": withUpdatedAt(fields)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		return nil, classify(err)
	}
	return &project, nil
}

func (s *ProjectStore) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return response.ErrInvalidID
	}
	return softDeleteByKey(ctx, s.coll, bson.M{"_id": oid})
}

func (s *ProjectStore) Count(ctx context.Context) (int64, int64, error) {
	return countCollection(ctx, s.coll)
}
