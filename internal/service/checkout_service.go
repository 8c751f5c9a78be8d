package service

import (
	"context"
	"math"
	"net/mail"

	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/internal/mailer"
	"github.com/mapcraft/storefront-api/internal/payment"
	"github.com/mapcraft/storefront-api/internal/repository"
	"github.com/mapcraft/storefront-api/pkg/errors"
)

// PaymentVerifier confirms that a payment intent reached a terminal
// succeeded state
type PaymentVerifier interface {
	Verify(ctx context.Context, paymentRef string) (payment.VerifyResult, error)
}

// NotificationDispatcher sends customer-facing mail; it returns a result
// rather than an error so callers can log without unwinding
type NotificationDispatcher interface {
	SendOrderConfirmation(order *domain.Order, items []*domain.OrderItem) mailer.Result
	SendShippingUpdate(order *domain.Order) mailer.Result
}

type checkoutService struct {
	repos       *repository.Repositories
	verifier    PaymentVerifier
	dispatcher  NotificationDispatcher
	pricing     PriceResolver
	fixtures    TestFixtureStrategy
	shippingFee float64
	logger      *zap.Logger
}

// NewCheckoutService creates the checkout pipeline entry point
func NewCheckoutService(
	repos *repository.Repositories,
	verifier PaymentVerifier,
	dispatcher NotificationDispatcher,
	pricing PriceResolver,
	fixtures TestFixtureStrategy,
	shippingFee float64,
	logger *zap.Logger,
) *checkoutService {
	return &checkoutService{
		repos:       repos,
		verifier:    verifier,
		dispatcher:  dispatcher,
		pricing:     pricing,
		fixtures:    fixtures,
		shippingFee: shippingFee,
		logger:      logger,
	}
}

// FinalizeCheckout runs the sequential pipeline: validate, verify payment,
// compute totals, persist header, persist items best-effort per item, notify
// best-effort. Once the header is written the checkout succeeds regardless
// of later step failures.
func (s *checkoutService) FinalizeCheckout(ctx context.Context, req *CheckoutRequest) (*OrderConfirmation, error) {
	// Step 1: validate. Terminal on failure, no side effects yet.
	sizes, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	// Step 2: verify payment. Gateway errors and non-succeeded states both
	// reject the checkout before anything is persisted; the payment client
	// logs which of the two happened.
	result, err := s.verifier.Verify(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, &errors.ErrPaymentRejected{PaymentRef: req.PaymentIntentID}
	}
	if !result.Succeeded {
		s.logger.Warn("Rejecting checkout, payment not succeeded",
			zap.String("payment_ref", req.PaymentIntentID),
			zap.String("gateway_status", result.RawStatus),
		)
		return nil, &errors.ErrPaymentRejected{PaymentRef: req.PaymentIntentID, Status: result.RawStatus}
	}

	// Step 3: compute totals. Fixed here, never recomputed from whatever
	// items survive persistence.
	total := s.computeTotal(req.Items)

	// Step 4: persist the order header. Fatal on failure; the customer was
	// charged, so a duplicate payment ref maps back to the already created
	// order instead of erroring.
	order := &domain.Order{
		CustomerName:  req.ShippingInfo.FullName,
		CustomerEmail: req.ShippingInfo.Email,
		ShippingAddress: map[string]interface{}{
			"full_name":   req.ShippingInfo.FullName,
			"phone":       req.ShippingInfo.Phone,
			"address":     req.ShippingInfo.Address,
			"city":        req.ShippingInfo.City,
			"postal_code": req.ShippingInfo.PostalCode,
			"country":     req.ShippingInfo.Country,
		},
		Total:         total,
		Status:        domain.OrderStatusProcessing,
		PaymentStatus: domain.PaymentStatusPaid,
		PaymentRef:    req.PaymentIntentID,
	}

	alreadyExists, err := s.repos.Order.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	if alreadyExists {
		s.logger.Info("Checkout already processed for payment ref, returning existing order",
			zap.String("payment_ref", req.PaymentIntentID),
			zap.String("order_id", order.ID.String()),
		)
		return &OrderConfirmation{
			OrderID: order.ID.String(),
			Status:  "success",
			Message: "Order already placed",
		}, nil
	}

	// Step 5: persist items, best effort per item.
	persisted := s.persistItems(ctx, order, req.Items, sizes)

	// Step 6: notify, best effort.
	if mailResult := s.dispatcher.SendOrderConfirmation(order, persisted); !mailResult.Success {
		s.logger.Warn("Order confirmation mail failed",
			zap.String("order_id", order.ID.String()),
			zap.Error(mailResult.Err),
		)
	}

	return &OrderConfirmation{
		OrderID: order.ID.String(),
		Status:  "success",
		Message: "Order placed successfully",
	}, nil
}

// validate structurally checks the cart snapshot and shipping contact and
// resolves every client size token through the explicit mapping table
func (s *checkoutService) validate(req *CheckoutRequest) ([]domain.FrameSize, error) {
	if len(req.Items) == 0 {
		return nil, &errors.ErrValidation{Field: "items", Message: "cart is empty"}
	}
	if req.PaymentIntentID == "" {
		return nil, &errors.ErrValidation{Field: "paymentIntentId", Message: "payment reference is required"}
	}

	sizes := make([]domain.FrameSize, len(req.Items))
	for i, item := range req.Items {
		if item.ProductID == "" {
			return nil, &errors.ErrValidation{Field: "items.productId", Message: "product reference is required"}
		}
		if item.Name == "" {
			return nil, &errors.ErrValidation{Field: "items.name", Message: "name is required"}
		}
		if item.Quantity <= 0 {
			return nil, &errors.ErrValidation{Field: "items.quantity", Message: "quantity must be positive"}
		}
		if item.Price < 0 {
			return nil, &errors.ErrValidation{Field: "items.price", Message: "price must not be negative"}
		}
		if item.FrameType == "" {
			return nil, &errors.ErrValidation{Field: "items.frameType", Message: "frame type is required"}
		}

		size, ok := domain.ParseFrameSize(item.FrameSize)
		if !ok {
			return nil, &errors.ErrValidation{Field: "items.frameSize", Message: "unrecognized frame size: " + item.FrameSize}
		}
		sizes[i] = size

		if err := validateLocation(item.Location); err != nil {
			return nil, err
		}
	}

	info := req.ShippingInfo
	if info.FullName == "" || info.Phone == "" || info.Address == "" ||
		info.City == "" || info.PostalCode == "" || info.Country == "" {
		return nil, &errors.ErrValidation{Field: "shippingInfo", Message: "all shipping contact fields are required"}
	}
	if _, err := mail.ParseAddress(info.Email); err != nil {
		return nil, &errors.ErrValidation{Field: "shippingInfo.email", Message: "invalid email address"}
	}

	return sizes, nil
}

func validateLocation(loc *Location) error {
	if loc == nil {
		return nil
	}
	if loc.Address != nil && *loc.Address != "" {
		return nil
	}
	if loc.Latitude == nil || loc.Longitude == nil {
		return &errors.ErrValidation{Field: "items.location", Message: "location needs an address or both coordinates"}
	}
	if *loc.Latitude < -90 || *loc.Latitude > 90 || *loc.Longitude < -180 || *loc.Longitude > 180 {
		return &errors.ErrValidation{Field: "items.location", Message: "coordinates out of range"}
	}
	return nil
}

func (s *checkoutService) computeTotal(items []CartItemRequest) float64 {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return roundToCents(subtotal + s.shippingFee)
}

// persistItems writes one row per cart line. A single item failure is logged
// and skipped; the order header and its total stand as written.
func (s *checkoutService) persistItems(ctx context.Context, order *domain.Order, items []CartItemRequest, sizes []domain.FrameSize) []*domain.OrderItem {
	persisted := make([]*domain.OrderItem, 0, len(items))

	for i, cartItem := range items {
		if err := s.fixtures.EnsureProduct(ctx, cartItem.ProductID, cartItem.Name); err != nil {
			s.logger.Warn("Fixture strategy failed for product",
				zap.String("product_id", cartItem.ProductID),
				zap.Error(err),
			)
		}

		unitPrice := cartItem.Price
		if unitPrice == 0 {
			// Line arrived without a resolved price; attach the
			// authoritative one.
			unitPrice = s.pricing.ResolvePrice(ctx, sizes[i], categoryForProduct(cartItem))
		}

		item := &domain.OrderItem{
			OrderID:       order.ID,
			ProductID:     cartItem.ProductID,
			Name:          cartItem.Name,
			Quantity:      cartItem.Quantity,
			UnitPrice:     unitPrice,
			FrameSize:     sizes[i],
			FrameType:     cartItem.FrameType,
			EngravingText: cartItem.EngravingText,
		}

		if err := s.repos.OrderItem.Create(ctx, item); err != nil {
			s.logger.Error("Failed to persist order item, skipping",
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", cartItem.ProductID),
				zap.Int("line", i),
				zap.Error(err),
			)
			continue
		}

		persisted = append(persisted, item)
	}

	if len(persisted) < len(items) {
		// Reconciliation signal: the charged total still covers all lines.
		s.logger.Warn("Order items partially persisted",
			zap.String("order_id", order.ID.String()),
			zap.Int("requested", len(items)),
			zap.Int("persisted", len(persisted)),
		)
	}

	return persisted
}

func categoryForProduct(item CartItemRequest) string {
	// Cart lines do not carry a category; resolution falls back to the
	// default category cascade.
	return ""
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
