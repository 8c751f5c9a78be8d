package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/internal/repository"
	"github.com/mapcraft/storefront-api/pkg/errors"
)

type orderService struct {
	repos      *repository.Repositories
	dispatcher NotificationDispatcher
	logger     *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repos *repository.Repositories, dispatcher NotificationDispatcher, logger *zap.Logger) *orderService {
	return &orderService{
		repos:      repos,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// GetOrder loads an order with its surviving items
func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, []*domain.OrderItem, error) {
	order, err := s.repos.Order.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.repos.OrderItem.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	return order, items, nil
}

// UpdateStatus transitions the order's fulfillment and payment statuses.
// Moving to a shipped or delivered state triggers a best-effort shipping
// notification.
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, newStatus *domain.OrderStatus, newPaymentStatus *domain.PaymentStatus) (*domain.Order, error) {
	order, err := s.repos.Order.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	status := order.Status
	if newStatus != nil {
		if !newStatus.IsValid() {
			return nil, &errors.ErrValidation{Field: "status", Message: "unknown status: " + string(*newStatus)}
		}
		if !order.Status.CanTransitionTo(*newStatus) {
			return nil, &errors.ErrInvalidStateTransition{From: order.Status, To: *newStatus}
		}
		status = *newStatus
	}

	paymentStatus := order.PaymentStatus
	if newPaymentStatus != nil {
		if !newPaymentStatus.IsValid() {
			return nil, &errors.ErrValidation{Field: "paymentStatus", Message: "unknown payment status: " + string(*newPaymentStatus)}
		}
		if !order.PaymentStatus.CanTransitionTo(*newPaymentStatus) {
			return nil, &errors.ErrInvalidStateTransition{From: order.PaymentStatus, To: *newPaymentStatus}
		}
		paymentStatus = *newPaymentStatus
	}

	if err := s.repos.Order.UpdateStatus(ctx, orderID, status, paymentStatus); err != nil {
		return nil, err
	}

	order.Status = status
	order.PaymentStatus = paymentStatus

	if newStatus != nil && (status == domain.OrderStatusShipped || status == domain.OrderStatusDelivered) {
		if result := s.dispatcher.SendShippingUpdate(order); !result.Success {
			s.logger.Warn("Shipping update mail failed",
				zap.String("order_id", order.ID.String()),
				zap.Error(result.Err),
			)
		}
	}

	return order, nil
}
