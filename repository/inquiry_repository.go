package repository

import (
	"context"
	"fmt"

	"github.com/marierupasinghe/FreshEats/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type InquiryRepository struct {
	collection *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{
		collection: db.Collection("inquiries"),
	}
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, inquiry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}
