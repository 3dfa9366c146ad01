package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-bff/clients"
	"storefront-bff/config"
	"storefront-bff/controllers"
	"storefront-bff/database"
	"storefront-bff/logger"
	"storefront-bff/routes"
	"storefront-bff/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	// Load environment configuration
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	// Initialize Redis-backed session storage
	redisClient := database.NewRedisClient(cfg.RedisURL)
	sessions := database.NewSessionRepository(redisClient, cfg.SessionTTL)

	// Upstream storefront API client
	api := clients.NewAPIClient(cfg.APIBaseURL, cfg.MediaBaseURL, cfg.UpstreamTimeout)

	// Stores: auth before cart, cart behavior depends on auth state
	authService := services.NewAuthService(api, sessions)
	cartService := services.NewCartService(api, sessions)
	productService := services.NewProductService(api)
	reviewService := services.NewReviewService(api)
	orderService := services.NewOrderService(api)
	adminService := services.NewAdminService(api)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	ctrl := routes.Controllers{
		Auth:    controllers.NewAuthController(authService, cartService),
		Cart:    controllers.NewCartController(cartService),
		Product: controllers.NewProductController(productService, reviewService),
		Review:  controllers.NewReviewController(reviewService),
		Order:   controllers.NewOrderController(orderService),
		Admin:   controllers.NewAdminController(adminService),
	}
	routes.RegisterRoutes(router, ctrl, sessions, authService, cfg.SessionTTL)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Storefront BFF is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	log.Println("Server shutdown complete.")
}
