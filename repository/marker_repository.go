package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MarkerRepository stores one-shot initialization markers in the meta
// collection. The fixed _id makes a second insert fail with a duplicate-key
// error, so concurrent first loads cannot both win the marker.
type MarkerRepository struct {
	collection *mongo.Collection
}

func NewMarkerRepository(db *mongo.Database) *MarkerRepository {
	return &MarkerRepository{
		collection: db.Collection("meta"),
	}
}

func (r *MarkerRepository) Claim(ctx context.Context, name string) (bool, error) {
	_, err := r.collection.InsertOne(ctx, bson.M{
		"_id":       name,
		"claimedAt": time.Now().UTC(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
