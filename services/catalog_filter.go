package services

import (
	"sort"
	"strings"

	"github.com/marierupasinghe/FreshEats/models"
)

// AllCategories is the sentinel meaning "no category filter".
const AllCategories = "All Categories"

// Sort keys accepted by the food listing.
const (
	SortByName     = "name"
	SortByPrice    = "price"
	SortByCalories = "calories"
)

// FoodListParams are the three listing controls.
type FoodListParams struct {
	Search   string
	Category string
	Sort     string
}

// FilterFoods keeps items whose name or description contains the search term
// case-insensitively, then filters by category unless the sentinel (or an
// empty value) is selected, then sorts ascending by the chosen key. The sort
// is stable so ties keep the input order. Unknown sort keys fall back to name.
func FilterFoods(items []models.FoodItem, params FoodListParams) []models.FoodItem {
	filtered := make([]models.FoodItem, 0, len(items))

	search := strings.ToLower(strings.TrimSpace(params.Search))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		if params.Category != "" && params.Category != AllCategories && item.Category != params.Category {
			continue
		}
		filtered = append(filtered, item)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		switch params.Sort {
		case SortByPrice:
			return filtered[i].Price < filtered[j].Price
		case SortByCalories:
			return filtered[i].Calories < filtered[j].Calories
		default:
			return filtered[i].Name < filtered[j].Name
		}
	})

	return filtered
}
