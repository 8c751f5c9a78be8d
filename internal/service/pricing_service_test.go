package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
)

func TestResolvePrice_CategoryEntryWins(t *testing.T) {
	mock := &MockPriceEntryRepository{
		Entries: map[string]map[domain.FrameSize]float64{
			"Star Maps":     {domain.FrameSize12x12: 59.99},
			DefaultCategory: {domain.FrameSize12x12: 44.99},
		},
	}
	svc := NewPricingService(mock, zap.NewNop())

	price := svc.ResolvePrice(context.Background(), domain.FrameSize12x12, "Star Maps")

	// The explicit entry wins over both the default-category entry and the
	// static fallback table.
	assert.Equal(t, 59.99, price)
}

func TestResolvePrice_FallsBackToDefaultCategory(t *testing.T) {
	mock := &MockPriceEntryRepository{
		Entries: map[string]map[domain.FrameSize]float64{
			DefaultCategory: {domain.FrameSize16x16: 64.99},
		},
	}
	svc := NewPricingService(mock, zap.NewNop())

	price := svc.ResolvePrice(context.Background(), domain.FrameSize16x16, "Star Maps")

	assert.Equal(t, 64.99, price)
}

func TestResolvePrice_EmptyCategoryUsesDefault(t *testing.T) {
	mock := &MockPriceEntryRepository{
		Entries: map[string]map[domain.FrameSize]float64{
			DefaultCategory: {domain.FrameSize10x10: 42.50},
		},
	}
	svc := NewPricingService(mock, zap.NewNop())

	price := svc.ResolvePrice(context.Background(), domain.FrameSize10x10, "")

	assert.Equal(t, 42.50, price)
}

func TestResolvePrice_StaticFallbackOnStoreFailure(t *testing.T) {
	mock := &MockPriceEntryRepository{
		Err: errors.New("connection refused"),
	}
	svc := NewPricingService(mock, zap.NewNop())

	price := svc.ResolvePrice(context.Background(), domain.FrameSize12x12, "City Maps")

	// An unreachable store degrades to the static table, never an error.
	assert.Equal(t, defaultFallbackPrices[domain.FrameSize12x12], price)
}

func TestResolvePrice_StaticFallbackWhenNoEntries(t *testing.T) {
	mock := &MockPriceEntryRepository{Entries: map[string]map[domain.FrameSize]float64{}}
	svc := NewPricingService(mock, zap.NewNop())

	price := svc.ResolvePrice(context.Background(), domain.FrameSize20x20, "Star Maps")

	assert.Equal(t, defaultFallbackPrices[domain.FrameSize20x20], price)
}

func TestResolvePrice_KeyHolderAliasTable(t *testing.T) {
	mock := &MockPriceEntryRepository{Entries: map[string]map[domain.FrameSize]float64{}}
	svc := NewPricingService(mock, zap.NewNop())

	price := svc.ResolvePrice(context.Background(), domain.FrameSize10x10, KeyHolderCategory)

	assert.Equal(t, keyHolderFallbackPrices[domain.FrameSize10x10], price)
}

func TestResolvePrice_UnknownSizeResolvesToZero(t *testing.T) {
	mock := &MockPriceEntryRepository{Entries: map[string]map[domain.FrameSize]float64{}}
	svc := NewPricingService(mock, zap.NewNop())

	price := svc.ResolvePrice(context.Background(), domain.FrameSize20x20, KeyHolderCategory)

	// 20x20 key holders exist nowhere, not even in the static table.
	assert.Equal(t, 0.0, price)
}
