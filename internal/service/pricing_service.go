package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/internal/repository"
	"github.com/mapcraft/storefront-api/pkg/errors"
)

// DefaultCategory is assumed when a price lookup names no category
const DefaultCategory = "City Maps"

// KeyHolderCategory selects the key-holder static fallback table
const KeyHolderCategory = "Key Holders"

// Static fallback prices, used when the price table has no entry or the
// store is unreachable. Catalog administration keeps the persisted table
// authoritative; these only stop a checkout from failing on a price read.
var defaultFallbackPrices = map[domain.FrameSize]float64{
	domain.FrameSize8x8:   34.99,
	domain.FrameSize10x10: 39.99,
	domain.FrameSize12x12: 49.99,
	domain.FrameSize16x16: 69.99,
	domain.FrameSize20x20: 89.99,
}

var keyHolderFallbackPrices = map[domain.FrameSize]float64{
	domain.FrameSize8x8:   24.99,
	domain.FrameSize10x10: 29.99,
	domain.FrameSize12x12: 34.99,
}

// PriceResolver resolves the authoritative unit price for a frame size and
// category pair
type PriceResolver interface {
	ResolvePrice(ctx context.Context, size domain.FrameSize, category string) float64
}

type pricingService struct {
	prices repository.PriceEntryRepository
	logger *zap.Logger
}

// NewPricingService creates a new pricing service
func NewPricingService(prices repository.PriceEntryRepository, logger *zap.Logger) *pricingService {
	return &pricingService{
		prices: prices,
		logger: logger,
	}
}

// ResolvePrice cascades: persisted (category, size) entry, persisted
// default-category entry, static fallback table. It never returns an error;
// a store failure degrades to the static table so a price read alone cannot
// take checkout down.
func (s *pricingService) ResolvePrice(ctx context.Context, size domain.FrameSize, category string) float64 {
	if category == "" {
		category = DefaultCategory
	}

	entry, err := s.prices.GetByCategoryAndSize(ctx, category, size)
	if err == nil {
		return entry.UnitPrice
	}
	if !isNotFound(err) {
		s.logger.Warn("Price store unavailable, using static fallback",
			zap.String("category", category),
			zap.String("frame_size", string(size)),
			zap.Error(err),
		)
		return s.staticFallback(size, category)
	}

	if category != DefaultCategory {
		entry, err = s.prices.GetByCategoryAndSize(ctx, DefaultCategory, size)
		if err == nil {
			return entry.UnitPrice
		}
		if !isNotFound(err) {
			s.logger.Warn("Price store unavailable, using static fallback",
				zap.String("category", category),
				zap.String("frame_size", string(size)),
				zap.Error(err),
			)
			return s.staticFallback(size, category)
		}
	}

	return s.staticFallback(size, category)
}

func (s *pricingService) staticFallback(size domain.FrameSize, category string) float64 {
	table := defaultFallbackPrices
	if category == KeyHolderCategory {
		table = keyHolderFallbackPrices
	}

	price, ok := table[size]
	if !ok {
		// Degenerate case: nothing anywhere priced this size. Resolving to
		// zero keeps the contract but must be treated as an alert.
		s.logger.Error("No price found for frame size, resolving to zero",
			zap.String("category", category),
			zap.String("frame_size", string(size)),
		)
		return 0
	}

	return price
}

func isNotFound(err error) bool {
	_, ok := err.(*errors.ErrNotFound)
	return ok
}
