package services

import (
	"context"

	"github.com/marierupasinghe/FreshEats/models"
	"github.com/marierupasinghe/FreshEats/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog defines the operations the catalog controllers depend on.
type Catalog interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListFoods(ctx context.Context, params FoodListParams) ([]models.FoodItem, error)
	GetFood(ctx context.Context, id primitive.ObjectID) (*models.FoodItem, error)
}

type CatalogService struct {
	categories repository.CategoryRepo
	foods      repository.FoodRepo
}

func NewCatalogService(categories repository.CategoryRepo, foods repository.FoodRepo) *CatalogService {
	return &CatalogService{
		categories: categories,
		foods:      foods,
	}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

// ListFoods fetches the full item list and derives the displayed subset from
// the three controls. The catalog is small enough that re-filtering the whole
// list per request is fine.
func (s *CatalogService) ListFoods(ctx context.Context, params FoodListParams) ([]models.FoodItem, error) {
	items, err := s.foods.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterFoods(items, params), nil
}

func (s *CatalogService) GetFood(ctx context.Context, id primitive.ObjectID) (*models.FoodItem, error) {
	return s.foods.FindByID(ctx, id)
}
