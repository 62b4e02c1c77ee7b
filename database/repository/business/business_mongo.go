package businessRepo

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

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new BusinessRepository backed by MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	repo := &MongoBusinessRepo{coll: database.Collection("businesses")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for the fields the search pushes down.
func (r *MongoBusinessRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "cityLower", Value: 1}}},
		{Keys: bson.D{{Key: "isFeatured", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBusinessRepo) Create(b *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return utils.StoreErr(err, "failed to create business")
	}
	return nil
}

// Update replaces the whole document; it is not a field merge.
func (r *MongoBusinessRepo) Update(b *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": b.ID}, b)
	if err != nil {
		return utils.StoreErr(err, "failed to update business with id %s", b.ID)
	}
	if result.MatchedCount == 0 {
		return utils.StoreErr(nil, "business with id %s not found", b.ID)
	}
	return nil
}

func (r *MongoBusinessRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return utils.StoreErr(err, "failed to delete business with id %s", id)
	}
	return nil
}

func (r *MongoBusinessRepo) Exists(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, utils.StoreErr(err, "failed to check business with id %s", id)
	}
	return n > 0, nil
}

func (r *MongoBusinessRepo) GetAll() ([]models.Business, error) {
	return r.find(bson.M{})
}

func (r *MongoBusinessRepo) GetFeatured() ([]models.Business, error) {
	return r.find(bson.M{"isFeatured": true})
}

// Search applies the store-side constraints: an any-match $in on tags and an
// exact match on the lowered city. Name refinement happens at the service.
func (r *MongoBusinessRepo) Search(f SearchFilter) ([]models.Business, error) {
	filter := bson.M{}
	if len(f.Tags) > 0 {
		filter["tags"] = bson.M{"$in": f.Tags}
	}
	if f.City != "" {
		filter["cityLower"] = f.City
	}
	return r.find(filter)
}

func (r *MongoBusinessRepo) find(filter bson.M) ([]models.Business, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, utils.StoreErr(err, "failed to retrieve businesses")
	}
	defer cursor.Close(ctx)
	var businesses []models.Business
	for cursor.Next(ctx) {
		var b models.Business
		if err := cursor.Decode(&b); err != nil {
			return nil, utils.StoreErr(err, "failed to decode business")
		}
		businesses = append(businesses, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.StoreErr(err, "cursor error")
	}
	return businesses, nil
}
