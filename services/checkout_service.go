package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/marierupasinghe/FreshEats/cart"
	apperrors "github.com/marierupasinghe/FreshEats/errors"
	"github.com/marierupasinghe/FreshEats/models"
	"github.com/marierupasinghe/FreshEats/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TaxRate is applied to the cart subtotal at checkout.
const TaxRate = 0.08

// Checkout defines the operations the order controller depends on.
type Checkout interface {
	PlaceOrder(ctx context.Context, userID string, details models.CustomerDetails, c *cart.Cart) (*models.Order, error)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
}

// EventPublisher publishes order lifecycle events. Publishing is best-effort:
// a failure is logged, never surfaced to the customer.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
}

type CheckoutService struct {
	orders repository.OrderRepo
	events EventPublisher
}

// NewCheckoutService wires the checkout orchestration. events may be nil when
// eventing is not configured.
func NewCheckoutService(orders repository.OrderRepo, events EventPublisher) *CheckoutService {
	return &CheckoutService{
		orders: orders,
		events: events,
	}
}

// PlaceOrder validates delivery details and the cart, computes the totals,
// and commits exactly one order document. Validation failures never reach the
// store. On a write failure the cart is left intact so the user can retry;
// the cart is cleared only after a successful write.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, details models.CustomerDetails, c *cart.Cart) (*models.Order, error) {
	if err := validateCustomerDetails(details); err != nil {
		return nil, err
	}

	lines := c.Lines()
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	// Totals come from the same snapshot as the items, so a concurrent cart
	// mutation cannot commit an order whose amounts disagree with its lines.
	var subtotal float64
	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		subtotal += l.Item.Price * float64(l.Quantity)
		items = append(items, models.OrderItem{
			ID:       l.Item.ID,
			Name:     l.Item.Name,
			Price:    l.Item.Price,
			Quantity: l.Quantity,
		})
	}
	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * TaxRate)
	total := roundCents(subtotal + tax)

	order := &models.Order{
		CustomerDetails: details,
		Items:           items,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
		UserID:          userID,
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	c.Clear()

	if s.events != nil {
		event := models.OrderCreatedEvent{
			Event:     "order.created",
			OrderID:   id.Hex(),
			UserID:    userID,
			Total:     total,
			Timestamp: order.CreatedAt,
		}
		if err := s.events.PublishOrderCreated(ctx, event); err != nil {
			zap.L().Warn("Failed to publish order created event",
				zap.String("order_id", id.Hex()),
				zap.Error(err),
			)
		}
	}

	return order, nil
}

func (s *CheckoutService) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func validateCustomerDetails(details models.CustomerDetails) error {
	required := []struct {
		field, value string
	}{
		{"fullName", details.FullName},
		{"phoneNumber", details.PhoneNumber},
		{"emailAddress", details.EmailAddress},
		{"deliveryAddress", details.DeliveryAddress},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.Validationf("%s is required", f.field)
		}
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
