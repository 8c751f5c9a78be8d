package domain

// OrderStatus represents the fulfillment status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return newStatus == OrderStatusProcessing ||
			newStatus == OrderStatusCancelled
	case OrderStatusProcessing:
		return newStatus == OrderStatusShipped ||
			newStatus == OrderStatusCancelled
	case OrderStatusShipped:
		return newStatus == OrderStatusDelivered
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	default:
		return false
	}
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending,
		PaymentStatusPaid,
		PaymentStatusFailed,
		PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a payment status transition is valid
func (s PaymentStatus) CanTransitionTo(newStatus PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return newStatus == PaymentStatusPaid || newStatus == PaymentStatusFailed
	case PaymentStatusPaid:
		return newStatus == PaymentStatusRefunded
	case PaymentStatusFailed, PaymentStatusRefunded:
		return false
	default:
		return false
	}
}

// FrameSize is a canonical physical product dimension token
type FrameSize string

const (
	FrameSize8x8   FrameSize = "SIZE_8X8"
	FrameSize10x10 FrameSize = "SIZE_10X10"
	FrameSize12x12 FrameSize = "SIZE_12X12"
	FrameSize16x16 FrameSize = "SIZE_16X16"
	FrameSize20x20 FrameSize = "SIZE_20X20"
)

// frameSizeTokens maps every accepted client-facing size token to its
// canonical frame size. Unrecognized tokens are rejected, never guessed.
var frameSizeTokens = map[string]FrameSize{
	"8x8":        FrameSize8x8,
	"SIZE_8X8":   FrameSize8x8,
	"10x10":      FrameSize10x10,
	"SIZE_10X10": FrameSize10x10,
	"12x12":      FrameSize12x12,
	"SIZE_12X12": FrameSize12x12,
	"16x16":      FrameSize16x16,
	"SIZE_16X16": FrameSize16x16,
	"20x20":      FrameSize20x20,
	"SIZE_20X20": FrameSize20x20,
}

// ParseFrameSize resolves a client-facing size token to a canonical frame
// size. The boolean is false for tokens not in the mapping table.
func ParseFrameSize(token string) (FrameSize, bool) {
	size, ok := frameSizeTokens[token]
	return size, ok
}

// IsValid checks if the frame size is a canonical value
func (f FrameSize) IsValid() bool {
	switch f {
	case FrameSize8x8, FrameSize10x10, FrameSize12x12, FrameSize16x16, FrameSize20x20:
		return true
	default:
		return false
	}
}
