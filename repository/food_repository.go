package repository

import (
	"context"

	"github.com/marierupasinghe/FreshEats/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FoodRepository struct {
	collection *mongo.Collection
}

func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{
		collection: db.Collection("foodItems"),
	}
}

func (r *FoodRepository) FindAll(ctx context.Context) ([]models.FoodItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.FoodItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FoodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.FoodItem, error) {
	var item models.FoodItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *FoodRepository) CreateMany(ctx context.Context, items []models.FoodItem) error {
	docs := make([]interface{}, 0, len(items))
	for _, it := range items {
		docs = append(docs, it)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
