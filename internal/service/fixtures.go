package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/internal/repository"
	"github.com/mapcraft/storefront-api/pkg/errors"
)

// TestFixtureStrategy prepares catalog state before an order item write.
// Production wiring always gets the no-op strategy; the auto-create variant
// exists so ad-hoc development carts stay self-consistent.
type TestFixtureStrategy interface {
	EnsureProduct(ctx context.Context, productID, name string) error
}

type noopFixtures struct{}

// NewNoopFixtures returns the production fixture strategy, which does nothing
func NewNoopFixtures() TestFixtureStrategy {
	return noopFixtures{}
}

func (noopFixtures) EnsureProduct(ctx context.Context, productID, name string) error {
	return nil
}

type autoCreateFixtures struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewAutoCreateFixtures returns a strategy that creates missing product rows
// before an item write
func NewAutoCreateFixtures(products repository.ProductRepository, logger *zap.Logger) TestFixtureStrategy {
	return &autoCreateFixtures{
		products: products,
		logger:   logger,
	}
}

func (f *autoCreateFixtures) EnsureProduct(ctx context.Context, productID, name string) error {
	_, err := f.products.GetByID(ctx, productID)
	if err == nil {
		return nil
	}
	if _, ok := err.(*errors.ErrNotFound); !ok {
		return err
	}

	f.logger.Info("Auto-creating missing product for order item",
		zap.String("product_id", productID),
		zap.String("name", name),
	)

	return f.products.Create(ctx, &domain.Product{
		ID:   productID,
		Name: name,
	})
}
