package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/marierupasinghe/FreshEats/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

type fakeMarkerRepo struct {
	claimed   bool
	claimErr  error
	claimName string
}

func (f *fakeMarkerRepo) Claim(ctx context.Context, name string) (bool, error) {
	f.claimName = name
	return f.claimed, f.claimErr
}

type fakeCategoryRepo struct {
	created [][]models.Category
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) CreateMany(ctx context.Context, categories []models.Category) error {
	f.created = append(f.created, categories)
	return nil
}

type fakeFoodRepo struct {
	created [][]models.FoodItem
}

func (f *fakeFoodRepo) FindAll(ctx context.Context) ([]models.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepo) CreateMany(ctx context.Context, items []models.FoodItem) error {
	f.created = append(f.created, items)
	return nil
}

func TestEnsureSeedsWhenMarkerClaimed(t *testing.T) {
	markers := &fakeMarkerRepo{claimed: true}
	categories := &fakeCategoryRepo{}
	foods := &fakeFoodRepo{}

	s := NewSeeder(markers, categories, foods)
	if err := s.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure returned error: %v", err)
	}

	if len(categories.created) != 1 || len(categories.created[0]) != 4 {
		t.Fatalf("expected one batch of 4 categories, got %+v", categories.created)
	}
	if len(foods.created) != 1 || len(foods.created[0]) != 20 {
		t.Fatalf("expected one batch of 20 food items, got %d batches", len(foods.created))
	}
}

func TestEnsureSkipsWhenAlreadySeeded(t *testing.T) {
	markers := &fakeMarkerRepo{claimed: false}
	categories := &fakeCategoryRepo{}
	foods := &fakeFoodRepo{}

	s := NewSeeder(markers, categories, foods)
	if err := s.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure returned error: %v", err)
	}

	if len(categories.created) != 0 || len(foods.created) != 0 {
		t.Fatal("expected no catalog writes when the marker was already claimed")
	}
}

func TestEnsurePropagatesMarkerError(t *testing.T) {
	markers := &fakeMarkerRepo{claimErr: errors.New("mongo down")}
	s := NewSeeder(markers, &fakeCategoryRepo{}, &fakeFoodRepo{})

	if err := s.Ensure(context.Background()); err == nil {
		t.Fatal("expected error when marker claim fails")
	}
}

func TestDatasetItemsReferenceSeededCategories(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range Categories() {
		names[c.Name] = true
	}

	for _, item := range FoodItems() {
		if !names[item.Category] {
			t.Fatalf("food item %q references unknown category %q", item.Name, item.Category)
		}
	}
}
