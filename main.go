package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/marierupasinghe/FreshEats/cart"
	"github.com/marierupasinghe/FreshEats/controllers"
	"github.com/marierupasinghe/FreshEats/database"
	apperrors "github.com/marierupasinghe/FreshEats/errors"
	"github.com/marierupasinghe/FreshEats/kafka"
	"github.com/marierupasinghe/FreshEats/logger"
	"github.com/marierupasinghe/FreshEats/middleware"
	"github.com/marierupasinghe/FreshEats/repository"
	"github.com/marierupasinghe/FreshEats/routes"
	"github.com/marierupasinghe/FreshEats/seed"
	"github.com/marierupasinghe/FreshEats/services"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	// --- 1. External collaborators ---

	if err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	identityDB, err := database.ConnectPostgres(
		cfg.PostgresHost, cfg.PostgresPort,
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB,
	)
	if err != nil {
		zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient := database.NewRedisClient(cfg.RedisURL)

	// --- 2. Dependency injection (wiring the layers together) ---

	categoryRepo := repository.NewCategoryRepository(database.DB)
	foodRepo := repository.NewFoodRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)
	inquiryRepo := repository.NewInquiryRepository(database.DB)
	markerRepo := repository.NewMarkerRepository(database.DB)
	userRepo := repository.NewUserRepository(identityDB)

	// Seed the catalog once; the marker claim makes concurrent first
	// starts safe.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	seeder := seed.NewSeeder(markerRepo, categoryRepo, foodRepo)
	if err := seeder.Ensure(seedCtx); err != nil {
		cancelSeed()
		zap.L().Fatal("Failed to seed catalog", zap.Error(err))
	}
	cancelSeed()

	var producer *kafka.Producer
	var events services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		events = producer
		zap.L().Info("Order event publishing enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	catalogService := services.NewCatalogService(categoryRepo, foodRepo)
	checkoutService := services.NewCheckoutService(orderRepo, events)
	inquiryService := services.NewInquiryService(inquiryRepo)
	tokenService := services.NewTokenService(cfg.JWTSecret)

	cartStore := cart.NewStore()

	catalogController := controllers.NewCatalogController(catalogService, controllers.NewCacheManager(redisClient))
	cartController := controllers.NewCartController(cartStore, catalogService)
	orderController := controllers.NewOrderController(checkoutService, cartStore)
	inquiryController := controllers.NewInquiryController(inquiryService)
	authController := controllers.NewAuthController(userRepo, tokenService)

	// --- 3. HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(apperrors.ErrorMiddleware())

	// Request timeout: a client that navigates away cancels the request
	// context, which cancels any in-flight store reads.
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- 4. Route registration ---

	authLimiter := middleware.NewRateLimiter(cfg.AuthRatePerMinute, cfg.AuthRateBurst)
	routes.RegisterRoutes(r, catalogController, cartController, orderController, inquiryController, authController, tokenService, authLimiter)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// --- 5. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("FreshEats backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down FreshEats backend...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if producer != nil {
		producer.Close()
	}
	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}
	if err := database.CloseMongo(); err != nil {
		zap.L().Error("Failed to disconnect MongoDB", zap.Error(err))
	}

	zap.L().Info("FreshEats backend stopped gracefully")
}
