package cart

import "sync"

// Store owns the per-user carts for the process. It replaces ambient global
// cart state: every consumer receives the store (and through it the cart) by
// injection. Carts are never persisted; a restart starts everyone empty.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart for userID, creating an empty one on first use.
func (s *Store) Get(userID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = New()
		s.carts[userID] = c
	}
	return c
}
