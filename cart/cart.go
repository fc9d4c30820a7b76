package cart

import (
	"sync"

	"github.com/marierupasinghe/FreshEats/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Line is one (food item, quantity) pairing in a cart. Quantity is always at
// least 1; a request that would take it below 1 removes the line instead.
type Line struct {
	Item     models.FoodItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// Summary carries the derived aggregates handed to subscribers.
type Summary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Cart holds the items a user intends to purchase during a session. It is
// explicitly owned state, injected into consumers; mutations notify every
// subscriber synchronously. Carts live for the process lifetime only.
type Cart struct {
	mu      sync.Mutex
	lines   []Line
	subs    map[int]func(Summary)
	nextSub int
}

func New() *Cart {
	return &Cart{subs: make(map[int]func(Summary))}
}

// Add puts one unit of item into the cart. An existing line for the same item
// id has its quantity incremented; item ids stay unique across lines.
func (c *Cart) Add(item models.FoodItem) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			c.notifyLocked()
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
	c.notifyLocked()
}

// SetQuantity sets the quantity of the line for itemID. A value of zero or
// below removes the line. Absent ids are a no-op and never create a line.
func (c *Cart) SetQuantity(itemID primitive.ObjectID, quantity int) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			if quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = quantity
			}
			c.notifyLocked()
			return
		}
	}
	c.mu.Unlock()
}

// Remove deletes the line for itemID if present.
func (c *Cart) Remove(itemID primitive.ObjectID) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.notifyLocked()
			return
		}
	}
	c.mu.Unlock()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.notifyLocked()
}

// Total returns the sum over lines of price times quantity.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

// Count returns the sum of quantities across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.countLocked()
}

// Lines returns a snapshot of the cart contents.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subscribe registers fn to be called with the cart summary after every
// mutation. The returned function removes the subscription; late callers are
// dropped rather than applied, so a view that navigated away can detach.
func (c *Cart) Subscribe(fn func(Summary)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Cart) totalLocked() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Item.Price * float64(l.Quantity)
	}
	return total
}

func (c *Cart) countLocked() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// notifyLocked snapshots the summary and subscriber list, releases the lock,
// and invokes the subscribers. Callers must hold c.mu; it is released here.
func (c *Cart) notifyLocked() {
	summary := Summary{Count: c.countLocked(), Total: c.totalLocked()}
	fns := make([]func(Summary), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(summary)
	}
}
