package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/internal/mailer"
	"github.com/mapcraft/storefront-api/internal/payment"
	"github.com/mapcraft/storefront-api/pkg/errors"
)

// MockOrderRepository implements repository.OrderRepository for testing
type MockOrderRepository struct {
	CreatedOrder  *domain.Order
	CreateErr     error
	AlreadyExists bool
	ExistingOrder *domain.Order
	UpdateErr     error
	UpdatedStatus *domain.OrderStatus
	UpdatedPay    *domain.PaymentStatus
}

func (m *MockOrderRepository) Create(_ context.Context, order *domain.Order) (bool, error) {
	if m.CreateErr != nil {
		return false, m.CreateErr
	}
	if m.AlreadyExists {
		*order = *m.ExistingOrder
		return true, nil
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	m.CreatedOrder = order
	return false, nil
}

func (m *MockOrderRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	if m.ExistingOrder != nil && m.ExistingOrder.ID == id {
		order := *m.ExistingOrder
		return &order, nil
	}
	if m.CreatedOrder != nil && m.CreatedOrder.ID == id {
		order := *m.CreatedOrder
		return &order, nil
	}
	return nil, &errors.ErrNotFound{Resource: "order", ID: id.String()}
}

func (m *MockOrderRepository) GetByPaymentRef(_ context.Context, paymentRef string) (*domain.Order, error) {
	if m.ExistingOrder != nil && m.ExistingOrder.PaymentRef == paymentRef {
		return m.ExistingOrder, nil
	}
	return nil, &errors.ErrNotFound{Resource: "order", ID: paymentRef}
}

func (m *MockOrderRepository) UpdateStatus(_ context.Context, _ uuid.UUID, status domain.OrderStatus, paymentStatus domain.PaymentStatus) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.UpdatedStatus = &status
	m.UpdatedPay = &paymentStatus
	return nil
}

func (m *MockOrderRepository) List(_ context.Context, _, _ int) ([]*domain.Order, error) {
	return nil, nil
}

// MockOrderItemRepository implements repository.OrderItemRepository for
// testing. FailOnCall makes the nth Create call (1-based) fail.
type MockOrderItemRepository struct {
	Created    []*domain.OrderItem
	FailOnCall int
	FailErr    error
	calls      int
}

func (m *MockOrderItemRepository) Create(_ context.Context, item *domain.OrderItem) error {
	m.calls++
	if m.FailOnCall != 0 && m.calls == m.FailOnCall {
		return m.FailErr
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.Created = append(m.Created, item)
	return nil
}

func (m *MockOrderItemRepository) GetByOrderID(_ context.Context, orderID uuid.UUID) ([]*domain.OrderItem, error) {
	var items []*domain.OrderItem
	for _, item := range m.Created {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items, nil
}

// MockPriceEntryRepository implements repository.PriceEntryRepository for
// testing. Entries are keyed by category then frame size; Err overrides
// every lookup, simulating an unreachable store.
type MockPriceEntryRepository struct {
	Entries map[string]map[domain.FrameSize]float64
	Err     error
}

func (m *MockPriceEntryRepository) GetByCategoryAndSize(_ context.Context, category string, size domain.FrameSize) (*domain.PriceEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if prices, ok := m.Entries[category]; ok {
		if price, ok := prices[size]; ok {
			return &domain.PriceEntry{
				ID:        uuid.New(),
				Category:  category,
				FrameSize: size,
				UnitPrice: price,
			}, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "price entry", ID: category + "/" + string(size)}
}

func (m *MockPriceEntryRepository) Upsert(_ context.Context, _ *domain.PriceEntry) error {
	return nil
}

// MockProductRepository implements repository.ProductRepository for testing
type MockProductRepository struct {
	Products map[string]*domain.Product
	Created  []*domain.Product
}

func (m *MockProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if product, ok := m.Products[id]; ok {
		return product, nil
	}
	return nil, &errors.ErrNotFound{Resource: "product", ID: id}
}

func (m *MockProductRepository) Create(_ context.Context, product *domain.Product) error {
	m.Created = append(m.Created, product)
	return nil
}

// MockVerifier implements PaymentVerifier for testing
type MockVerifier struct {
	Result payment.VerifyResult
	Err    error
}

func (m *MockVerifier) Verify(_ context.Context, _ string) (payment.VerifyResult, error) {
	return m.Result, m.Err
}

// MockDispatcher implements NotificationDispatcher for testing
type MockDispatcher struct {
	ConfirmationResult mailer.Result
	ShippingResult     mailer.Result
	ConfirmedOrder     *domain.Order
	ConfirmedItems     []*domain.OrderItem
	ShippedOrder       *domain.Order
}

func (m *MockDispatcher) SendOrderConfirmation(order *domain.Order, items []*domain.OrderItem) mailer.Result {
	m.ConfirmedOrder = order
	m.ConfirmedItems = items
	return m.ConfirmationResult
}

func (m *MockDispatcher) SendShippingUpdate(order *domain.Order) mailer.Result {
	m.ShippedOrder = order
	return m.ShippingResult
}
