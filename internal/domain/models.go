package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is the root persisted record for a checkout
type Order struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerEmail   string
	ShippingAddress map[string]interface{} // JSONB
	Total           float64
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	PaymentRef      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is a single line of an order, immutable once written
type OrderItem struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	ProductID     string
	Name          string
	Quantity      int
	UnitPrice     float64
	FrameSize     FrameSize
	FrameType     string
	EngravingText *string
	CreatedAt     time.Time
}

// PriceEntry is the authoritative persisted price for a
// (category, frame size) pair
type PriceEntry struct {
	ID        uuid.UUID
	Category  string
	FrameSize FrameSize
	UnitPrice float64
	UpdatedAt time.Time
}

// Product is a minimal catalog record; the checkout pipeline only reads it,
// and only the test fixture strategy ever creates one
type Product struct {
	ID        string
	Name      string
	Category  string
	CreatedAt time.Time
}
