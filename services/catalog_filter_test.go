package services

import (
	"testing"

	"github.com/marierupasinghe/FreshEats/models"
)

func menu() []models.FoodItem {
	return []models.FoodItem{
		{Name: "Grilled Chicken Quinoa Bowl", Description: "Lean protein with quinoa", Price: 12.99, Calories: 450, Category: "Post-Workout"},
		{Name: "Salmon Sweet Potato Power", Description: "Omega-3 rich salmon", Price: 15.99, Calories: 520, Category: "Post-Workout"},
		{Name: "Protein Power Smoothie Bowl", Description: "Plant-based protein blend", Price: 9.99, Calories: 380, Category: "Pre-Workout"},
	}
}

func TestFilterEmptyQueryAllCategoriesReturnsAllSorted(t *testing.T) {
	got := FilterFoods(menu(), FoodListParams{Category: AllCategories, Sort: SortByName})

	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	want := []string{"Grilled Chicken Quinoa Bowl", "Protein Power Smoothie Bowl", "Salmon Sweet Potato Power"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}

func TestFilterBySearchMatchesNameOrDescription(t *testing.T) {
	got := FilterFoods(menu(), FoodListParams{Search: "SALMON"})
	if len(got) != 1 || got[0].Name != "Salmon Sweet Potato Power" {
		t.Fatalf("expected only the salmon bowl, got %+v", got)
	}

	// Matches against the description too.
	got = FilterFoods(menu(), FoodListParams{Search: "plant-based"})
	if len(got) != 1 || got[0].Name != "Protein Power Smoothie Bowl" {
		t.Fatalf("expected only the smoothie bowl, got %+v", got)
	}
}

func TestFilterByCategory(t *testing.T) {
	got := FilterFoods(menu(), FoodListParams{Category: "Post-Workout", Sort: SortByName})
	if len(got) != 2 {
		t.Fatalf("expected 2 Post-Workout items, got %d", len(got))
	}
	for _, item := range got {
		if item.Category != "Post-Workout" {
			t.Fatalf("unexpected category %q", item.Category)
		}
	}
}

func TestFilterByCategoryWithNoMatchesReturnsEmpty(t *testing.T) {
	got := FilterFoods(menu(), FoodListParams{Category: "Heart Healthy"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}

func TestSortByPrice(t *testing.T) {
	got := FilterFoods(menu(), FoodListParams{Category: AllCategories, Sort: SortByPrice})

	want := []float64{9.99, 12.99, 15.99}
	for i, price := range want {
		if got[i].Price != price {
			t.Fatalf("position %d: expected price %v, got %v", i, price, got[i].Price)
		}
	}
}

func TestSortByCalories(t *testing.T) {
	got := FilterFoods(menu(), FoodListParams{Sort: SortByCalories})

	want := []int{380, 450, 520}
	for i, cal := range want {
		if got[i].Calories != cal {
			t.Fatalf("position %d: expected %d calories, got %d", i, cal, got[i].Calories)
		}
	}
}

func TestUnknownSortKeyFallsBackToName(t *testing.T) {
	got := FilterFoods(menu(), FoodListParams{Sort: "spiciness"})
	if got[0].Name != "Grilled Chicken Quinoa Bowl" {
		t.Fatalf("expected name ordering for unknown sort key, got %q first", got[0].Name)
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	items := []models.FoodItem{
		{Name: "B", Price: 9.99, Calories: 100},
		{Name: "A", Price: 9.99, Calories: 200},
	}
	got := FilterFoods(items, FoodListParams{Sort: SortByPrice})
	if got[0].Name != "B" || got[1].Name != "A" {
		t.Fatalf("expected input order preserved on price ties, got %q, %q", got[0].Name, got[1].Name)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := menu()
	FilterFoods(items, FoodListParams{Sort: SortByPrice})
	if items[0].Name != "Grilled Chicken Quinoa Bowl" {
		t.Fatal("input slice was reordered")
	}
}
