package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mapcraft/storefront-api/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(hash string) *gin.Engine {
	cfg := &config.Config{Admin: config.AdminConfig{APIKeyHash: hash}}

	router := gin.New()
	router.Use(AdminAuthMiddleware(cfg, zap.NewNop()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAdminAuthMiddleware(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-admin-key"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name   string
		hash   string
		header string
		want   int
	}{
		{"valid key", string(hash), "Bearer secret-admin-key", http.StatusOK},
		{"wrong key", string(hash), "Bearer wrong-key", http.StatusUnauthorized},
		{"missing header", string(hash), "", http.StatusUnauthorized},
		{"no bearer prefix", string(hash), "secret-admin-key", http.StatusUnauthorized},
		{"unconfigured hash", "", "Bearer secret-admin-key", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(tt.hash)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
