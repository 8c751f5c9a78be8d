package payment

import (
	"context"
	"math"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/config"
)

const gatewayTimeout = 15 * time.Second

// VerifyResult reports the gateway's view of a payment intent
type VerifyResult struct {
	Succeeded bool
	RawStatus string
}

type Client struct {
	currency string
	logger   *zap.Logger
}

// NewClient creates a Stripe-backed payment client
func NewClient(cfg config.StripeConfig, logger *zap.Logger) *Client {
	stripe.Key = cfg.SecretKey

	return &Client{
		currency: cfg.Currency,
		logger:   logger,
	}
}

// CreateIntent creates a payment intent for the given amount in major
// currency units and returns its client secret
func (c *Client) CreateIntent(ctx context.Context, amount float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(c.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		c.logger.Error("Failed to create payment intent",
			zap.Float64("amount", amount),
			zap.Error(err),
		)
		return "", err
	}

	return intent.ClientSecret, nil
}

// Verify fetches the current state of a payment intent. A gateway error is
// returned as-is; callers decide whether it is fatal. The log line keeps the
// gateway-rejected vs gateway-unreachable distinction that the caller drops.
func (c *Client) Verify(ctx context.Context, paymentRef string) (VerifyResult, error) {
	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(paymentRef, params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			c.logger.Warn("Payment gateway rejected verification",
				zap.String("payment_ref", paymentRef),
				zap.String("stripe_error_type", string(stripeErr.Type)),
				zap.String("stripe_error_code", string(stripeErr.Code)),
			)
		} else {
			c.logger.Warn("Payment gateway unreachable",
				zap.String("payment_ref", paymentRef),
				zap.Error(err),
			)
		}
		return VerifyResult{}, err
	}

	return VerifyResult{
		Succeeded: intent.Status == stripe.PaymentIntentStatusSucceeded,
		RawStatus: string(intent.Status),
	}, nil
}
