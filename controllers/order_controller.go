package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marierupasinghe/FreshEats/cart"
	apperrors "github.com/marierupasinghe/FreshEats/errors"
	"github.com/marierupasinghe/FreshEats/middleware"
	"github.com/marierupasinghe/FreshEats/models"
	"github.com/marierupasinghe/FreshEats/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type OrderController struct {
	checkout services.Checkout
	store    *cart.Store
}

func NewOrderController(checkout services.Checkout, store *cart.Store) *OrderController {
	return &OrderController{
		checkout: checkout,
		store:    store,
	}
}

// PlaceOrder validates the delivery details against the current cart and
// commits exactly one order document. The order id in the response drives the
// confirmation view.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.Error(apperrors.ErrUnauthorized)
		return
	}

	var details models.CustomerDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.Error(apperrors.ErrBadRequest)
		return
	}

	order, err := oc.checkout.PlaceOrder(c.Request.Context(), userID, details, oc.store.Get(userID))
	if err != nil {
		var appErr *apperrors.Error
		if !errors.As(err, &appErr) {
			zap.L().Error("Failed to place order", zap.String("user_id", userID), zap.Error(err))
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_id": order.ID.Hex(),
		"order":    order,
	})
}

// GetOrder returns a single order for the confirmation view. Another user's
// order id reads as missing rather than forbidden.
func (oc *OrderController) GetOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.Error(apperrors.ErrUnauthorized)
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Error(apperrors.Validationf("invalid order id"))
		return
	}

	order, err := oc.checkout.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.Error(apperrors.ErrNotFound)
			return
		}
		zap.L().Error("Failed to get order", zap.String("id", id.Hex()), zap.Error(err))
		c.Error(err)
		return
	}

	if order.UserID != userID {
		c.Error(apperrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, order)
}
