package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/internal/repository"
	"github.com/mapcraft/storefront-api/internal/service"
)

// HandleGetPrice handles GET /prices. The cart UI uses it to quote the
// authoritative unit price before checkout.
func HandleGetPrice(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("frameSize")
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "frameSize is required"})
			return
		}

		size, ok := domain.ParseFrameSize(token)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized frame size: " + token})
			return
		}

		category := c.Query("category")

		pricing := service.NewPricingService(repos.PriceEntry, logger)
		price := pricing.ResolvePrice(c.Request.Context(), size, category)

		c.JSON(http.StatusOK, gin.H{
			"frame_size": string(size),
			"category":   category,
			"unit_price": price,
		})
	}
}
