package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleCreatePaymentIntent_InvalidAmount(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing amount", `{}`},
		{"zero amount", `{"amount": 0}`},
		{"negative amount", `{"amount": -5}`},
		{"malformed json", `{"amount":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			// The client is never reached when binding rejects the payload.
			router.POST("/payment-intents", HandleCreatePaymentIntent(nil, zap.NewNop()))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/payment-intents", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "invalid amount")
		})
	}
}

func TestHandleGetPrice_Validation(t *testing.T) {
	router := gin.New()
	router.GET("/prices", HandleGetPrice(&repository.Repositories{}, zap.NewNop()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prices", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prices?frameSize=11x11", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unrecognized frame size")
}

func TestHandleGetOrder_InvalidID(t *testing.T) {
	router := gin.New()
	router.GET("/orders/:id", HandleGetOrder(&repository.Repositories{}, nil, zap.NewNop()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid order ID")
}
