package repository

import (
	"context"

	"github.com/marierupasinghe/FreshEats/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryRepo covers the catalog store operations used for categories:
// read-all plus the one-time seed write.
type CategoryRepo interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	CreateMany(ctx context.Context, categories []models.Category) error
}

// FoodRepo covers the catalog store operations used for food items.
type FoodRepo interface {
	FindAll(ctx context.Context) ([]models.FoodItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.FoodItem, error)
	CreateMany(ctx context.Context, items []models.FoodItem) error
}

// OrderRepo is append-only plus the confirmation-page read.
type OrderRepo interface {
	Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
}

// InquiryRepo is append-only.
type InquiryRepo interface {
	Create(ctx context.Context, inquiry *models.Inquiry) (primitive.ObjectID, error)
}

// MarkerRepo claims one-shot initialization markers. Claim returns true when
// the caller won the marker and false when it already existed.
type MarkerRepo interface {
	Claim(ctx context.Context, name string) (bool, error)
}

// UserRepo is the identity store.
type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
