package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mapcraft/storefront-api/internal/config"
)

// AdminAuthMiddleware authenticates admin routes against the configured
// bcrypt API key hash
func AdminAuthMiddleware(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Admin.APIKeyHash == "" {
			logger.Error("Admin API key hash not configured, rejecting request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		apiKey := strings.TrimPrefix(authHeader, "Bearer ")
		if apiKey == "" || apiKey == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.Admin.APIKeyHash), []byte(apiKey)); err != nil {
			logger.Warn("Invalid admin API key", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}

		c.Next()
	}
}
