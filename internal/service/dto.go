package service

// CheckoutRequest represents the checkout submission payload
type CheckoutRequest struct {
	Items           []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingInfo    ShippingInfo      `json:"shippingInfo" binding:"required"`
	PaymentIntentID string            `json:"paymentIntentId" binding:"required"`
}

type CartItemRequest struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId" binding:"required"`
	Name          string    `json:"name" binding:"required"`
	Price         float64   `json:"price" binding:"required,gt=0"`
	Quantity      int       `json:"quantity" binding:"required,gt=0"`
	FrameSize     string    `json:"frameSize" binding:"required"`
	FrameType     string    `json:"frameType" binding:"required"`
	EngravingText *string   `json:"engravingText,omitempty"`
	Location      *Location `json:"location,omitempty"`
}

// Location pins a map product to a place, either by address or by coordinates
type Location struct {
	Address   *string  `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type ShippingInfo struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// OrderConfirmation is the successful checkout response
type OrderConfirmation struct {
	OrderID string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
