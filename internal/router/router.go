// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hackeed/hackeed-backend/internal/config"
	"github.com/hackeed/hackeed-backend/internal/handlers"
	"github.com/hackeed/hackeed-backend/internal/middleware"
	"github.com/hackeed/hackeed-backend/internal/payments"
	"github.com/hackeed/hackeed-backend/internal/services"
	"github.com/hackeed/hackeed-backend/internal/storage"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize repositories
	catalogRepo := storage.NewCatalogRepository(db)
	eventRepo := storage.NewEventRepository(db)
	orderRepo := storage.NewOrderRepository(db)

	// Initialize services
	stripeClient := payments.NewStripeClient(cfg)
	catalogService := services.NewCatalogService(catalogRepo)
	checkoutService := services.NewCheckoutService(catalogRepo, stripeClient)
	webhookService := services.NewWebhookService(stripeClient, catalogRepo, eventRepo, orderRepo)
	verificationService := services.NewVerificationService(stripeClient, orderRepo)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)
	verificationHandler := handlers.NewVerificationHandler(verificationService)
	debugHandler := handlers.NewDebugHandler(catalogRepo, cfg)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		api.GET("/products", productHandler.GetProducts)
		api.POST("/checkout", middleware.CheckoutRateLimit(), checkoutHandler.CreateSession)
		api.POST("/webhook", webhookHandler.HandleStripeWebhook)
		api.GET("/verify", verificationHandler.VerifySession)

		debug := api.Group("/debug")
		{
			debug.GET("/products", debugHandler.GetProducts)
		}
	}

	return r
}
