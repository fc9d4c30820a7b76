package controllers

import (
	"testing"

	"github.com/marierupasinghe/FreshEats/services"
)

func TestFoodListCacheKeySeparatesControlValues(t *testing.T) {
	// A search string mimicking the key structure must not alias a
	// different (search, category, sort) tuple.
	a := foodListCacheKey(services.FoodListParams{Search: "x:c:y:s:z"})
	b := foodListCacheKey(services.FoodListParams{Search: "x", Category: "y", Sort: "z"})
	if a == b {
		t.Fatalf("distinct control tuples mapped to the same key %q", a)
	}
}

func TestFoodListCacheKeyIsStable(t *testing.T) {
	params := services.FoodListParams{Search: "tuna", Category: "Heart Healthy", Sort: "price"}
	if foodListCacheKey(params) != foodListCacheKey(params) {
		t.Fatal("same controls must map to the same key")
	}
}
