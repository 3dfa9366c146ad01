package routes

import (
	"net/http"
	"time"

	"storefront-bff/controllers"
	"storefront-bff/middleware"
	"storefront-bff/services"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth    *controllers.AuthController
	Cart    *controllers.CartController
	Product *controllers.ProductController
	Review  *controllers.ReviewController
	Order   *controllers.OrderController
	Admin   *controllers.AdminController
}

// RegisterRoutes wires the storefront surface. Every /storefront route runs
// through the session resolver so handlers always see a resolved auth state.
func RegisterRoutes(r *gin.Engine, ctrl Controllers, sessions services.SessionStore, auth *services.AuthService, sessionTTL time.Duration) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	store := r.Group("/storefront")
	store.Use(middleware.SessionResolver(sessions, auth, sessionTTL))
	{
		store.GET("/auth/check", ctrl.Auth.Check)
		store.POST("/auth/login", middleware.LoginRateLimit(), ctrl.Auth.Login)
		store.POST("/auth/logout", ctrl.Auth.Logout)

		store.GET("/products", ctrl.Product.List)
		store.GET("/products/popular", ctrl.Product.Popular)
		store.GET("/products/:id", ctrl.Product.Detail)
		store.GET("/products/:id/reviews", ctrl.Product.Reviews)

		// the cart read is deliberately not auth-gated: an unauthenticated
		// session gets an empty cart, never an error
		store.GET("/cart", ctrl.Cart.GetCart)
		store.POST("/cart", ctrl.Cart.AddItem)
		store.PUT("/cart/:itemId", ctrl.Cart.UpdateQuantity)
		store.DELETE("/cart/:itemId", ctrl.Cart.RemoveItem)

		protected := store.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.POST("/checkout", ctrl.Cart.Checkout)
			protected.GET("/orders", ctrl.Order.List)
			protected.GET("/reviews/my", ctrl.Review.Mine)
			protected.POST("/reviews", ctrl.Review.Create)
			protected.PUT("/reviews/:id", ctrl.Review.Update)
			protected.DELETE("/reviews/:id", ctrl.Review.Delete)
		}

		admin := store.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/stats", ctrl.Admin.Stats)
		}
	}
}
