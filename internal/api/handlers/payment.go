package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v81"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/payment"
)

// CreatePaymentIntentRequest represents the payment intent payload
type CreatePaymentIntentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CreatePaymentIntentResponse carries the client secret the storefront needs
// to complete the charge
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// HandleCreatePaymentIntent handles POST /payment-intents
func HandleCreatePaymentIntent(client *payment.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid amount",
				"message": "amount must be a positive number",
			})
			return
		}

		clientSecret, err := client.CreateIntent(c.Request.Context(), req.Amount)
		if err != nil {
			logger.Error("Failed to create payment intent", zap.Error(err))

			body := gin.H{
				"error":   "payment gateway error",
				"message": "could not create payment intent",
			}
			if stripeErr, ok := err.(*stripe.Error); ok {
				body["type"] = string(stripeErr.Type)
			}
			c.JSON(http.StatusInternalServerError, body)
			return
		}

		c.JSON(http.StatusOK, CreatePaymentIntentResponse{ClientSecret: clientSecret})
	}
}
