package postRepo

import (
	"context"
	"fmt"
	"time"

	"sokohub/database"
	"sokohub/models"
	"sokohub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPostRepo implements PostRepository using MongoDB.
type MongoPostRepo struct {
	coll *mongo.Collection
}

// NewMongoPostRepo creates a new PostRepository backed by MongoDB.
func NewMongoPostRepo() PostRepository {
	repo := &MongoPostRepo{coll: database.Collection("posts")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPostRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "isFeatured", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPostRepo) Create(p *models.Post) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return utils.StoreErr(err, "failed to create post")
	}
	return nil
}

// Update replaces the whole document; it is not a field merge.
func (r *MongoPostRepo) Update(p *models.Post) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": p.ID}, p)
	if err != nil {
		return utils.StoreErr(err, "failed to update post with id %s", p.ID)
	}
	if result.MatchedCount == 0 {
		return utils.StoreErr(nil, "post with id %s not found", p.ID)
	}
	return nil
}

func (r *MongoPostRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return utils.StoreErr(err, "failed to delete post with id %s", id)
	}
	return nil
}

func (r *MongoPostRepo) Exists(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, utils.StoreErr(err, "failed to check post with id %s", id)
	}
	return n > 0, nil
}

func (r *MongoPostRepo) GetAll() ([]models.Post, error) {
	return r.find(bson.M{})
}

func (r *MongoPostRepo) GetFeatured() ([]models.Post, error) {
	return r.find(bson.M{"isFeatured": true})
}

func (r *MongoPostRepo) SearchByTags(tags []string) ([]models.Post, error) {
	filter := bson.M{}
	if len(tags) > 0 {
		filter["tags"] = bson.M{"$in": tags}
	}
	return r.find(filter)
}

func (r *MongoPostRepo) find(filter bson.M) ([]models.Post, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, utils.StoreErr(err, "failed to retrieve posts")
	}
	defer cursor.Close(ctx)
	var posts []models.Post
	for cursor.Next(ctx) {
		var p models.Post
		if err := cursor.Decode(&p); err != nil {
			return nil, utils.StoreErr(err, "failed to decode post")
		}
		posts = append(posts, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.StoreErr(err, "cursor error")
	}
	return posts, nil
}
