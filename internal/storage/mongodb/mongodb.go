// Package mongodb implements the storage interfaces on top of the official
// MongoDB driver. One collection per entity; uniqueness is enforced by
// unique indexes that span soft-deleted records, so an inactive record still
// blocks reuse of its natural key.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

const connectTimeout = 10 * time.Second

// DB wraps the Mongo client and database handle.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the client connection and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &DB{client: client, db: client.Database(cfg.Database)}, nil
}

// Ping reports whether the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes backing natural-key uniqueness.
// Index names follow the <field>_1 convention the duplicate-key classifier
// relies on.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	for coll, fields := range map[string][]string{
		"themes": {"themeName"},
		"users":  {"username", "email"},
		"skills": {"name"},
	} {
		models := make([]mongo.IndexModel, 0, len(fields))
		for _, f := range fields {
			models = append(models, unique(f))
		}
		if _, err := d.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}

// Stores returns the bundle of entity stores backed by this database.
func (d *DB) Stores() *storage.Stores {
	return &storage.Stores{
		Themes:   &ThemeStore{coll: d.db.Collection("themes")},
		Users:    &UserStore{coll: d.db.Collection("users")},
		Projects: &ProjectStore{coll: d.db.Collection("projects")},
		Skills:   &SkillStore{coll: d.db.Collection("skills")},
		Health:   d,
	}
}

// activeFilter restricts a query to records not soft-deleted.
func activeFilter(extra bson.M) bson.M {
	filter := bson.M{"isActive": true}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

// newestFirst sorts by creation time, newest first.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// softDeleteByKey marks the active record matched by key inactive and
// refreshes updatedAt. Matching nothing (absent or already inactive) is
// reported as not found.
func softDeleteByKey(ctx context.Context, coll *mongo.Collection, key bson.M) error {
	res, err := coll.UpdateOne(ctx, activeFilter(key), bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return classify(err)
	}
	if res.MatchedCount == 0 {
		return response.ErrNotFound
	}
	return nil
}

func countCollection(ctx context.Context, coll *mongo.Collection) (total, active int64, err error) {
	total, err = coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, classify(err)
	}
	active, err = coll.CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		return 0, 0, classify(err)
	}
	return total, active, nil
}
