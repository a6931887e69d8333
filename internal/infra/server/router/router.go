// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/grocery-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/grocery-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	budgetController   *controller.BudgetController
	itemController     *controller.ItemController
	purchaseController *controller.PurchaseController
	forecastController *controller.ForecastController
	scanController     *controller.ScanController
	loginRateLimiter   *middleware.RateLimiter
	scanRateLimiter    *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	budgetController *controller.BudgetController,
	itemController *controller.ItemController,
	purchaseController *controller.PurchaseController,
	forecastController *controller.ForecastController,
	scanController *controller.ScanController,
	loginRateLimiter *middleware.RateLimiter,
	scanRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		budgetController:   budgetController,
		itemController:     itemController,
		purchaseController: purchaseController,
		forecastController: forecastController,
		scanController:     scanController,
		loginRateLimiter:   loginRateLimiter,
		scanRateLimiter:    scanRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.POST("", r.budgetController.Create)
				budgets.GET("", r.budgetController.List)
				budgets.GET("/:id/summary", r.budgetController.Summary)
			}
		}

		// Catalog item routes (require authentication)
		if r.itemController != nil && r.authMiddleware != nil {
			items := v1.Group("/items")
			items.Use(r.authMiddleware.Authenticate())
			{
				items.POST("", r.itemController.Create)
				items.GET("", r.itemController.List)
				items.GET("/search", r.itemController.Search)
				items.GET("/:id/price-history", r.itemController.PriceHistory)
			}
		}

		// Purchase routes (require authentication)
		if r.purchaseController != nil && r.authMiddleware != nil {
			purchases := v1.Group("/purchases")
			purchases.Use(r.authMiddleware.Authenticate())
			{
				purchases.POST("", r.purchaseController.Record)
				purchases.GET("", r.purchaseController.List)
			}
		}

		// Forecast routes (require authentication)
		if r.forecastController != nil && r.authMiddleware != nil {
			forecastGroup := v1.Group("/forecast")
			forecastGroup.Use(r.authMiddleware.Authenticate())
			{
				forecastGroup.GET("/upcoming", r.forecastController.Upcoming)
			}
		}

		// Scan routes (require authentication, rate limited against the
		// external lookup service)
		if r.scanController != nil && r.authMiddleware != nil {
			scanGroup := v1.Group("/scan")
			scanGroup.Use(r.authMiddleware.Authenticate())
			{
				if r.scanRateLimiter != nil {
					scanGroup.GET("/:barcode", r.scanRateLimiter.Middleware(), r.scanController.Scan)
				} else {
					scanGroup.GET("/:barcode", r.scanController.Scan)
				}
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
