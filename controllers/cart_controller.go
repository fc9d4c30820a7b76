package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marierupasinghe/FreshEats/cart"
	apperrors "github.com/marierupasinghe/FreshEats/errors"
	"github.com/marierupasinghe/FreshEats/middleware"
	"github.com/marierupasinghe/FreshEats/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type CartController struct {
	store   *cart.Store
	catalog services.Catalog
}

func NewCartController(store *cart.Store, catalog services.Catalog) *CartController {
	return &CartController{
		store:   store,
		catalog: catalog,
	}
}

type addItemRequest struct {
	FoodID string `json:"food_id" binding:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the current cart for the authenticated user.
func (cc *CartController) GetCart(c *gin.Context) {
	userCart, ok := cc.userCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartResponse(userCart))
}

// AddItem puts one unit of a food item into the cart; re-adding an item
// increments its line instead of duplicating it.
func (cc *CartController) AddItem(c *gin.Context) {
	userCart, ok := cc.userCart(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.ErrBadRequest)
		return
	}

	foodID, err := primitive.ObjectIDFromHex(req.FoodID)
	if err != nil {
		c.Error(apperrors.Validationf("invalid food id"))
		return
	}

	item, err := cc.catalog.GetFood(c.Request.Context(), foodID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.Error(apperrors.ErrNotFound)
			return
		}
		zap.L().Error("Failed to load food for cart", zap.String("id", foodID.Hex()), zap.Error(err))
		c.Error(err)
		return
	}

	userCart.Add(*item)
	c.JSON(http.StatusOK, cartResponse(userCart))
}

// SetQuantity sets a line's quantity; zero or below removes the line.
func (cc *CartController) SetQuantity(c *gin.Context) {
	userCart, ok := cc.userCart(c)
	if !ok {
		return
	}

	foodID, err := primitive.ObjectIDFromHex(c.Param("food_id"))
	if err != nil {
		c.Error(apperrors.Validationf("invalid food id"))
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.ErrBadRequest)
		return
	}

	userCart.SetQuantity(foodID, req.Quantity)
	c.JSON(http.StatusOK, cartResponse(userCart))
}

// RemoveItem deletes a line from the cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userCart, ok := cc.userCart(c)
	if !ok {
		return
	}

	foodID, err := primitive.ObjectIDFromHex(c.Param("food_id"))
	if err != nil {
		c.Error(apperrors.Validationf("invalid food id"))
		return
	}

	userCart.Remove(foodID)
	c.JSON(http.StatusOK, cartResponse(userCart))
}

// ClearCart removes all items from the cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	userCart, ok := cc.userCart(c)
	if !ok {
		return
	}

	userCart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

func (cc *CartController) userCart(c *gin.Context) (*cart.Cart, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.Error(apperrors.ErrUnauthorized)
		return nil, false
	}
	return cc.store.Get(userID), true
}

func cartResponse(c *cart.Cart) gin.H {
	lines := c.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	return gin.H{
		"items": lines,
		"count": c.Count(),
		"total": c.Total(),
	}
}
