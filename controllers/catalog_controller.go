package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/marierupasinghe/FreshEats/errors"
	"github.com/marierupasinghe/FreshEats/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type CatalogController struct {
	service services.Catalog
	cache   *CacheManager
}

// NewCatalogController wires the catalog endpoints. cache may be nil when
// Redis is not configured.
func NewCatalogController(service services.Catalog, cache *CacheManager) *CatalogController {
	return &CatalogController{
		service: service,
		cache:   cache,
	}
}

// GetCategories returns the full category list.
func (cc *CatalogController) GetCategories(c *gin.Context) {
	categories, err := cc.service.ListCategories(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list categories", zap.Error(err))
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetFoods returns the food listing derived from the three filter controls.
func (cc *CatalogController) GetFoods(c *gin.Context) {
	params := services.FoodListParams{
		Search:   c.Query("search"),
		Category: c.DefaultQuery("category", services.AllCategories),
		Sort:     c.DefaultQuery("sort", services.SortByName),
	}

	ctx := c.Request.Context()

	if cc.cache != nil {
		if items, ok := cc.cache.GetFoodList(ctx, params); ok {
			c.JSON(http.StatusOK, gin.H{"foods": items, "count": len(items)})
			return
		}
	}

	items, err := cc.service.ListFoods(ctx, params)
	if err != nil {
		zap.L().Error("Failed to list foods", zap.Error(err))
		c.Error(err)
		return
	}

	if cc.cache != nil {
		cc.cache.SetFoodListAsync(params, items)
	}

	c.JSON(http.StatusOK, gin.H{"foods": items, "count": len(items)})
}

// GetFoodByID returns a single food item.
func (cc *CatalogController) GetFoodByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Error(apperrors.Validationf("invalid food id"))
		return
	}

	item, err := cc.service.GetFood(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.Error(apperrors.ErrNotFound)
			return
		}
		zap.L().Error("Failed to get food", zap.String("id", id.Hex()), zap.Error(err))
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, item)
}
