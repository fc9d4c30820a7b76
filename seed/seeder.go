package seed

import (
	"context"
	"fmt"

	"github.com/marierupasinghe/FreshEats/repository"
	"go.uber.org/zap"
)

const markerName = "catalog_seeded"

// Seeder performs the one-time population of the catalog store. The marker
// document is claimed before any catalog write, so two clients racing through
// a first load cannot both seed: the loser of the unique-key insert backs off.
type Seeder struct {
	markers    repository.MarkerRepo
	categories repository.CategoryRepo
	foods      repository.FoodRepo
}

func NewSeeder(markers repository.MarkerRepo, categories repository.CategoryRepo, foods repository.FoodRepo) *Seeder {
	return &Seeder{
		markers:    markers,
		categories: categories,
		foods:      foods,
	}
}

// Ensure seeds the reference dataset if nobody has claimed the marker yet.
func (s *Seeder) Ensure(ctx context.Context) error {
	claimed, err := s.markers.Claim(ctx, markerName)
	if err != nil {
		return fmt.Errorf("failed to claim seed marker: %w", err)
	}
	if !claimed {
		zap.L().Debug("Catalog already seeded, skipping")
		return nil
	}

	categories := Categories()
	if err := s.categories.CreateMany(ctx, categories); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	items := FoodItems()
	if err := s.foods.CreateMany(ctx, items); err != nil {
		return fmt.Errorf("failed to seed food items: %w", err)
	}

	zap.L().Info("Catalog seeded",
		zap.Int("categories", len(categories)),
		zap.Int("food_items", len(items)),
	)
	return nil
}
