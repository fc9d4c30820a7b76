package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/marierupasinghe/FreshEats/controllers"
	"github.com/marierupasinghe/FreshEats/middleware"
	"github.com/marierupasinghe/FreshEats/services"
)

// RegisterRoutes registers all application routes, passing in the controllers.
func RegisterRoutes(
	r *gin.Engine,
	catalogController *controllers.CatalogController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
	inquiryController *controllers.InquiryController,
	authController *controllers.AuthController,
	tokens *services.TokenService,
	authLimiter *middleware.RateLimiter,
) {
	// Public catalog routes
	r.GET("/categories", catalogController.GetCategories)
	foods := r.Group("/foods")
	{
		foods.GET("", catalogController.GetFoods)
		foods.GET("/:id", catalogController.GetFoodByID)
	}

	// Auth routes, rate limited per IP
	auth := r.Group("/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", middleware.AuthMiddleware(tokens), authController.Me)
	}

	// Protected cart routes (require authentication)
	cart := r.Group("/cart")
	cart.Use(middleware.AuthMiddleware(tokens))
	{
		cart.GET("", cartController.GetCart)
		cart.POST("/items", cartController.AddItem)
		cart.PUT("/items/:food_id", cartController.SetQuantity)
		cart.DELETE("/items/:food_id", cartController.RemoveItem)
		cart.DELETE("", cartController.ClearCart)
	}

	// Checkout and confirmation
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware(tokens))
	{
		orders.POST("", orderController.PlaceOrder)
		orders.GET("/:id", orderController.GetOrder)
	}

	// Contact form; user id attached when a session is present
	r.POST("/inquiries", middleware.OptionalAuth(tokens), inquiryController.SubmitInquiry)
}
