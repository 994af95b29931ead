package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/readytocook/billing-api/internal/config"
	"github.com/readytocook/billing-api/internal/presentation/http/handler"
	"github.com/readytocook/billing-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Billing  *handler.BillingHandler
	Catalog  *handler.CatalogHandler
	Customer *handler.CustomerHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerBillingRoutes(v1, h)
		registerCatalogRoutes(v1, h)
		registerCustomerRoutes(v1, h)
	}

	return router
}

func registerBillingRoutes(v1 *gin.RouterGroup, h *Handlers) {
	bill := v1.Group("/bill")
	{
		bill.GET("", h.Billing.GetCurrent)
		bill.POST("/items", h.Billing.AddItem)
		bill.DELETE("/items", h.Billing.ClearItems)
		bill.POST("/finalize", h.Billing.Finalize)
	}

	// Documents are a pure projection of bill data; regeneration never
	// touches the ledger or the journal
	v1.POST("/documents", h.Billing.RenderDocument)
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	catalog := v1.Group("/catalog")
	{
		catalog.GET("", h.Catalog.Get)
		catalog.POST("/categories", h.Catalog.AddCategory)
		catalog.DELETE("/categories/:name", h.Catalog.RemoveCategory)
		catalog.POST("/categories/:name/items", h.Catalog.AddItem)
		catalog.DELETE("/categories/:name/items/:item", h.Catalog.RemoveItem)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:code", h.Customer.Get)
	}
}
