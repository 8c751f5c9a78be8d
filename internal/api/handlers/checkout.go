package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/config"
	"github.com/mapcraft/storefront-api/internal/repository"
	"github.com/mapcraft/storefront-api/internal/service"
	"github.com/mapcraft/storefront-api/pkg/errors"
)

// HandleCreateOrder handles POST /orders
func HandleCreateOrder(
	cfg *config.Config,
	repos *repository.Repositories,
	verifier service.PaymentVerifier,
	dispatcher service.NotificationDispatcher,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		pricing := service.NewPricingService(repos.PriceEntry, logger)

		fixtures := service.NewNoopFixtures()
		if !cfg.IsProduction() && cfg.Checkout.AutoCreateProducts {
			fixtures = service.NewAutoCreateFixtures(repos.Product, logger)
		}

		checkoutService := service.NewCheckoutService(
			repos,
			verifier,
			dispatcher,
			pricing,
			fixtures,
			cfg.Checkout.ShippingFee,
			logger,
		)

		confirmation, err := checkoutService.FinalizeCheckout(c.Request.Context(), &req)
		if err != nil {
			switch err.(type) {
			case *errors.ErrValidation:
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "validation failed",
					"details": err.Error(),
				})
			case *errors.ErrPaymentRejected:
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "payment not verified",
					"details": err.Error(),
				})
			default:
				logger.Error("Failed to finalize checkout", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "failed to create order",
				})
			}
			return
		}

		c.JSON(http.StatusCreated, confirmation)
	}
}
