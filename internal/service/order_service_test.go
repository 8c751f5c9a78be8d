package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/internal/mailer"
	"github.com/mapcraft/storefront-api/internal/repository"
	apperrors "github.com/mapcraft/storefront-api/pkg/errors"
)

func newOrderFixture(order *domain.Order) (*orderService, *MockOrderRepository, *MockDispatcher) {
	orders := &MockOrderRepository{ExistingOrder: order}
	dispatcher := &MockDispatcher{ShippingResult: mailer.Result{Success: true}}

	repos := &repository.Repositories{
		Order:     orders,
		OrderItem: &MockOrderItemRepository{},
	}

	return NewOrderService(repos, dispatcher, zap.NewNop()), orders, dispatcher
}

func TestUpdateStatus_ShipTriggersNotification(t *testing.T) {
	order := &domain.Order{
		ID:            uuid.New(),
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Status:        domain.OrderStatusProcessing,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	svc, orders, dispatcher := newOrderFixture(order)

	shipped := domain.OrderStatusShipped
	updated, err := svc.UpdateStatus(context.Background(), order.ID, &shipped, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, updated.Status)
	require.NotNil(t, orders.UpdatedStatus)
	assert.Equal(t, domain.OrderStatusShipped, *orders.UpdatedStatus)
	require.NotNil(t, dispatcher.ShippedOrder)
	assert.Equal(t, order.ID, dispatcher.ShippedOrder.ID)
}

func TestUpdateStatus_NotificationFailureIsNonFatal(t *testing.T) {
	order := &domain.Order{
		ID:            uuid.New(),
		Status:        domain.OrderStatusProcessing,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	svc, _, dispatcher := newOrderFixture(order)
	dispatcher.ShippingResult = mailer.Result{Success: false, Err: errors.New("smtp down")}

	shipped := domain.OrderStatusShipped
	_, err := svc.UpdateStatus(context.Background(), order.ID, &shipped, nil)

	require.NoError(t, err)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	order := &domain.Order{
		ID:            uuid.New(),
		Status:        domain.OrderStatusDelivered,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	svc, orders, _ := newOrderFixture(order)

	cancelled := domain.OrderStatusCancelled
	_, err := svc.UpdateStatus(context.Background(), order.ID, &cancelled, nil)

	var transitionErr *apperrors.ErrInvalidStateTransition
	require.True(t, errors.As(err, &transitionErr))
	assert.Nil(t, orders.UpdatedStatus)
}

func TestUpdateStatus_PaymentRefund(t *testing.T) {
	order := &domain.Order{
		ID:            uuid.New(),
		Status:        domain.OrderStatusProcessing,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	svc, orders, dispatcher := newOrderFixture(order)

	refunded := domain.PaymentStatusRefunded
	updated, err := svc.UpdateStatus(context.Background(), order.ID, nil, &refunded)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, updated.PaymentStatus)
	require.NotNil(t, orders.UpdatedPay)
	// No shipping mail for a pure payment-status change.
	assert.Nil(t, dispatcher.ShippedOrder)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc, _, _ := newOrderFixture(nil)

	shipped := domain.OrderStatusShipped
	_, err := svc.UpdateStatus(context.Background(), uuid.New(), &shipped, nil)

	var notFound *apperrors.ErrNotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestGetOrder_ReturnsItems(t *testing.T) {
	order := &domain.Order{ID: uuid.New(), Total: 67.99}
	svc, _, _ := newOrderFixture(order)

	loaded, items, err := svc.GetOrder(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, 67.99, loaded.Total)
	assert.Empty(t, items)
}
