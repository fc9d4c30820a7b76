package cart

import (
	"math"
	"testing"

	"github.com/marierupasinghe/FreshEats/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func food(name string, price float64) models.FoodItem {
	return models.FoodItem{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Price: price,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAddDistinctItems(t *testing.T) {
	c := New()
	items := []models.FoodItem{
		food("Grilled Chicken Quinoa Bowl", 12.99),
		food("Salmon Sweet Potato Power", 15.99),
		food("Berry Beet Pre-Workout Juice", 5.99),
	}

	var want float64
	for _, it := range items {
		c.Add(it)
		want += it.Price
	}

	if got := c.Count(); got != len(items) {
		t.Fatalf("expected count %d, got %d", len(items), got)
	}
	if got := c.Total(); !almostEqual(got, want) {
		t.Fatalf("expected total %v, got %v", want, got)
	}
}

func TestAddSameItemTwiceMergesLines(t *testing.T) {
	c := New()
	it := food("Turkey Avocado Wrap", 8.99)

	c.Add(it)
	c.Add(it)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
	if got := c.Count(); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}
}

func TestSetQuantity(t *testing.T) {
	c := New()
	it := food("Greek Yogurt Parfait", 6.99)
	c.Add(it)

	c.SetQuantity(it.ID, 5)
	if got := c.Count(); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
	if got := c.Total(); !almostEqual(got, 5*6.99) {
		t.Fatalf("expected total %v, got %v", 5*6.99, got)
	}
}

func TestSetQuantityNonPositiveRemovesLine(t *testing.T) {
	for _, q := range []int{0, -1, -100} {
		c := New()
		it := food("Tuna Poke Bowl", 13.99)
		c.Add(it)

		c.SetQuantity(it.ID, q)

		if got := len(c.Lines()); got != 0 {
			t.Fatalf("SetQuantity(%d): expected 0 lines, got %d", q, got)
		}
	}
}

func TestSetQuantityAbsentIDIsNoOp(t *testing.T) {
	c := New()
	c.Add(food("Chicken Salad", 10.99))

	c.SetQuantity(primitive.NewObjectID(), 3)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", lines[0].Quantity)
	}
}

func TestRemove(t *testing.T) {
	c := New()
	a := food("Oatmeal Banana Energy Bowl", 7.99)
	b := food("Lentil & Spinach Soup", 8.99)
	c.Add(a)
	c.Add(b)

	c.Remove(a.ID)

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Item.ID != b.ID {
		t.Fatalf("expected only %q to remain, got %+v", b.Name, lines)
	}

	// Removing an absent id changes nothing.
	c.Remove(primitive.NewObjectID())
	if got := len(c.Lines()); got != 1 {
		t.Fatalf("expected 1 line after no-op remove, got %d", got)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(food("Tofu Stir Fry", 9.99))
	c.Add(food("Shrimp Brown Rice Bowl", 14.49))

	c.Clear()

	if got := c.Count(); got != 0 {
		t.Fatalf("expected count 0 after clear, got %d", got)
	}
	if got := c.Total(); got != 0 {
		t.Fatalf("expected total 0 after clear, got %v", got)
	}
}

func TestEmptyCartAggregates(t *testing.T) {
	c := New()
	if got := c.Total(); got != 0 {
		t.Fatalf("expected total 0 for empty cart, got %v", got)
	}
	if got := c.Count(); got != 0 {
		t.Fatalf("expected count 0 for empty cart, got %d", got)
	}
}

func TestSubscribersNotifiedOnEveryMutation(t *testing.T) {
	c := New()
	var got []Summary
	unsubscribe := c.Subscribe(func(s Summary) {
		got = append(got, s)
	})

	it := food("Egg White Veggie Scramble", 8.49)
	c.Add(it)
	c.SetQuantity(it.ID, 3)
	c.Clear()

	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	if got[0].Count != 1 || got[1].Count != 3 || got[2].Count != 0 {
		t.Fatalf("unexpected counts in notifications: %+v", got)
	}
	if !almostEqual(got[1].Total, 3*8.49) {
		t.Fatalf("expected notified total %v, got %v", 3*8.49, got[1].Total)
	}

	// After unsubscribing, mutations no longer reach the subscriber.
	unsubscribe()
	c.Add(it)
	if len(got) != 3 {
		t.Fatalf("expected no notification after unsubscribe, got %d", len(got))
	}
}

func TestNoOpMutationsDoNotNotify(t *testing.T) {
	c := New()
	calls := 0
	c.Subscribe(func(Summary) { calls++ })

	c.SetQuantity(primitive.NewObjectID(), 2)
	c.Remove(primitive.NewObjectID())

	if calls != 0 {
		t.Fatalf("expected no notifications for no-op mutations, got %d", calls)
	}
}
