// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/storefront/internal/config"
	"github.com/javajoker/storefront/internal/handlers"
	"github.com/javajoker/storefront/internal/i18n"
	"github.com/javajoker/storefront/internal/middleware"
	"github.com/javajoker/storefront/internal/services"
	"github.com/javajoker/storefront/internal/utils"
)

const Version = "1.0.0"

// Initialize builds the engine over the given services. Background work
// started here stops when ctx is cancelled.
func Initialize(ctx context.Context, cfg *config.Config, inventoryService *services.InventoryService, orderService *services.OrderService) *gin.Engine {
	productHandler := handlers.NewProductHandler(inventoryService, cfg.Shipping.VolumetricFactor)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	utils.SetJWTIssuer(cfg.JWT.Issuer)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		go limiter.Run(ctx)
		r.Use(limiter.Middleware())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   Version,
			"languages": i18n.GetSupportedLanguages(),
		})
	})

	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/stock", productHandler.GetStock)
			products.GET("/:id/shipping-quote", productHandler.QuoteShipping)

			// Catalog changes are reserved for operators
			protected := products.Group("")
			protected.Use(middleware.AuthRequired(), middleware.OperatorRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
				protected.PATCH("/:id/stock", productHandler.AdjustStock)
				protected.POST("/:id/discount", productHandler.ApplyDiscount)
				protected.POST("/:id/download-link", productHandler.RegenerateDownloadLink)
			}
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("/value", productHandler.GetInventoryValue)
		}

		// Customers only see and change their own orders
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("", orderHandler.CreateOrder)
			orders.POST("/:id/items", orderHandler.AddItem)
			orders.DELETE("/:id/items/:product_id", orderHandler.RemoveItem)
			orders.POST("/:id/finalize", orderHandler.FinalizeOrder)
			orders.PUT("/:id/status", middleware.OperatorRequired(), orderHandler.UpdateStatus)
		}
	}

	return r
}
