package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mapcraft/storefront-api/internal/domain"
)

// OrderRepository persists order headers
type OrderRepository interface {
	// Create writes the order header. A duplicate payment reference returns
	// the previously created order and alreadyExists=true instead of an error.
	Create(ctx context.Context, order *domain.Order) (alreadyExists bool, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, paymentStatus domain.PaymentStatus) error
	List(ctx context.Context, limit, offset int) ([]*domain.Order, error)
}

// OrderItemRepository persists individual order lines
type OrderItemRepository interface {
	Create(ctx context.Context, item *domain.OrderItem) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]*domain.OrderItem, error)
}

// PriceEntryRepository reads and writes the persisted price table
type PriceEntryRepository interface {
	GetByCategoryAndSize(ctx context.Context, category string, size domain.FrameSize) (*domain.PriceEntry, error)
	Upsert(ctx context.Context, entry *domain.PriceEntry) error
}

// ProductRepository reads catalog products; creation exists only for the
// non-production fixture strategy
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Order      OrderRepository
	OrderItem  OrderItemRepository
	PriceEntry PriceEntryRepository
	Product    ProductRepository
}
