package tagRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sokohub/database"
	"sokohub/models"
	"sokohub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTagRepo implements TagRepository over the named collection.
type MongoTagRepo struct {
	coll *mongo.Collection
}

// NewMongoTagRepo creates a TagRepository over collection ("business_tags"
// or "post_tags").
func NewMongoTagRepo(collection string) TagRepository {
	repo := &MongoTagRepo{coll: database.Collection(collection)}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTagRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTagRepo) Create(t *models.Tag) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return utils.StoreErr(err, "failed to create tag")
	}
	return nil
}

func (r *MongoTagRepo) Update(t *models.Tag) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": t.ID}, t)
	if err != nil {
		return utils.StoreErr(err, "failed to update tag with id %s", t.ID)
	}
	if result.MatchedCount == 0 {
		return utils.StoreErr(nil, "tag with id %s not found", t.ID)
	}
	return nil
}

func (r *MongoTagRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return utils.StoreErr(err, "failed to delete tag with id %s", id)
	}
	return nil
}

// GetByID is one of the two dedicated not-found cases in the system.
func (r *MongoTagRepo) GetByID(id string) (*models.Tag, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var tag models.Tag
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tag); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundErr("tag with id %s not found", id)
		}
		return nil, utils.StoreErr(err, "failed to fetch tag with id %s", id)
	}
	return &tag, nil
}

func (r *MongoTagRepo) GetAll() ([]models.Tag, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, utils.StoreErr(err, "failed to retrieve tags")
	}
	defer cursor.Close(ctx)
	var tags []models.Tag
	for cursor.Next(ctx) {
		var t models.Tag
		if err := cursor.Decode(&t); err != nil {
			return nil, utils.StoreErr(err, "failed to decode tag")
		}
		tags = append(tags, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.StoreErr(err, "cursor error")
	}
	return tags, nil
}
