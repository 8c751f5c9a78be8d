package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/api/handlers"
	"github.com/mapcraft/storefront-api/internal/api/middleware"
	"github.com/mapcraft/storefront-api/internal/config"
	"github.com/mapcraft/storefront-api/internal/mailer"
	"github.com/mapcraft/storefront-api/internal/payment"
	"github.com/mapcraft/storefront-api/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	paymentClient := payment.NewClient(cfg.Stripe, logger)
	dispatcher := mailer.NewMailer(cfg.SMTP, logger)

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Storefront routes
	router.POST("/payment-intents", handlers.HandleCreatePaymentIntent(paymentClient, logger))
	router.POST("/orders", handlers.HandleCreateOrder(cfg, repos, paymentClient, dispatcher, logger))
	router.GET("/orders/:id", handlers.HandleGetOrder(repos, dispatcher, logger))
	router.GET("/prices", handlers.HandleGetPrice(repos, logger))

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AdminAuthMiddleware(cfg, logger))
	{
		adminRoutes.GET("/orders", handlers.HandleListOrders(repos, logger))
		adminRoutes.PATCH("/orders/:id", handlers.HandleUpdateOrder(repos, dispatcher, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
