package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/internal/repository"
	"github.com/mapcraft/storefront-api/internal/service"
	"github.com/mapcraft/storefront-api/pkg/errors"
)

// OrderResponse represents the order response
type OrderResponse struct {
	ID              string                 `json:"id"`
	CustomerName    string                 `json:"customer_name"`
	CustomerEmail   string                 `json:"customer_email"`
	ShippingAddress map[string]interface{} `json:"shipping_address"`
	Total           float64                `json:"total"`
	Status          domain.OrderStatus     `json:"status"`
	PaymentStatus   domain.PaymentStatus   `json:"payment_status"`
	PaymentRef      string                 `json:"payment_ref"`
	Items           []OrderItemResponse    `json:"items"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

type OrderItemResponse struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	FrameSize     string  `json:"frame_size"`
	FrameType     string  `json:"frame_type"`
	EngravingText *string `json:"engraving_text,omitempty"`
}

// UpdateOrderRequest represents a status transition request
type UpdateOrderRequest struct {
	Status        *domain.OrderStatus   `json:"status,omitempty"`
	PaymentStatus *domain.PaymentStatus `json:"paymentStatus,omitempty"`
}

func buildOrderResponse(order *domain.Order, items []*domain.OrderItem) OrderResponse {
	itemResponses := make([]OrderItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = OrderItemResponse{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			FrameSize:     string(item.FrameSize),
			FrameType:     item.FrameType,
			EngravingText: item.EngravingText,
		}
	}

	return OrderResponse{
		ID:              order.ID.String(),
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		ShippingAddress: order.ShippingAddress,
		Total:           order.Total,
		Status:          order.Status,
		PaymentStatus:   order.PaymentStatus,
		PaymentRef:      order.PaymentRef,
		Items:           itemResponses,
		CreatedAt:       order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       order.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// HandleGetOrder handles GET /orders/:id
func HandleGetOrder(repos *repository.Repositories, dispatcher service.NotificationDispatcher, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		orderService := service.NewOrderService(repos, dispatcher, logger)
		order, items, err := orderService.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("Failed to get order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, buildOrderResponse(order, items))
	}
}

// HandleUpdateOrder handles PATCH /admin/orders/:id
func HandleUpdateOrder(repos *repository.Repositories, dispatcher service.NotificationDispatcher, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if req.Status == nil && req.PaymentStatus == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}

		orderService := service.NewOrderService(repos, dispatcher, logger)
		order, err := orderService.UpdateStatus(c.Request.Context(), orderID, req.Status, req.PaymentStatus)
		if err != nil {
			switch err.(type) {
			case *errors.ErrNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case *errors.ErrValidation, *errors.ErrInvalidStateTransition:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to update order", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":             order.ID.String(),
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
		})
	}
}

// HandleListOrders handles GET /admin/orders
func HandleListOrders(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit < 1 || limit > 200 {
			limit = 50
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		orders, err := repos.Order.List(c.Request.Context(), limit, offset)
		if err != nil {
			logger.Error("Failed to list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		responses := make([]OrderResponse, len(orders))
		for i, order := range orders {
			responses[i] = buildOrderResponse(order, nil)
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": responses,
			"limit":  limit,
			"offset": offset,
		})
	}
}
