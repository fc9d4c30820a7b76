package models

import "time"

// OrderCreatedEvent is published after an order document has been written.
type OrderCreatedEvent struct {
	Event     string    `json:"event"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}
