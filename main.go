package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-restaurant-orders/controllers"
	"go-restaurant-orders/database"
	"go-restaurant-orders/logger"
	"go-restaurant-orders/middleware"
	"go-restaurant-orders/repository"
	"go-restaurant-orders/routes"
	"go-restaurant-orders/services"
	"go-restaurant-orders/storage"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	zapLogger, err := logger.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	assetStore, err := storage.NewCloudinaryStore()
	if err != nil {
		zapLogger.Fatal("configuring asset store", zap.Error(err))
	}

	menuItemRepo := repository.NewMenuItemRepository(
		database.OpenCollection(database.Client, "menuitems"),
		database.OpenCollection(database.Client, "categories"),
	)
	categoryRepo := repository.NewCategoryRepository(database.OpenCollection(database.Client, "categories"))
	orderRepo := repository.NewOrderRepository(
		database.OpenCollection(database.Client, "orders"),
		database.OpenCollection(database.Client, "users"),
		database.OpenCollection(database.Client, "menuitems"),
	)
	userRepo := repository.NewUserRepository(database.OpenCollection(database.Client, "users"))
	reviewRepo := repository.NewReviewRepository(database.OpenCollection(database.Client, "reviews"))

	catalogService := services.NewCatalogService(menuItemRepo, categoryRepo, assetStore, zapLogger)
	orderService := services.NewOrderService(orderRepo, zapLogger)

	hub := controllers.NewHub(zapLogger)

	menuItemController := controllers.NewMenuItemController(catalogService)
	orderController := controllers.NewOrderController(orderService, hub)
	categoryController := controllers.NewCategoryController(categoryRepo)
	reviewController := controllers.NewReviewController(reviewRepo)
	userController := controllers.NewUserController(userRepo)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.AuthRoutes(router, userController)
	routes.MenuItemRoutes(router, menuItemController)
	routes.CategoryRoutes(router, categoryController)
	routes.OrderRoutes(router, orderController)
	routes.ReviewRoutes(router, reviewController)
	router.GET("/ws", hub.HandleWebSocket())

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		zapLogger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("shutdown error", zap.Error(err))
	}
	if err := database.Client.Disconnect(ctx); err != nil {
		zapLogger.Error("disconnecting mongo", zap.Error(err))
	}
}
