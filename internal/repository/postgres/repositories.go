package postgres

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/repository"
)

// NewRepositories wires all postgres-backed repositories
func NewRepositories(db *sql.DB, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Order:      NewOrderRepository(db, logger),
		OrderItem:  NewOrderItemRepository(db, logger),
		PriceEntry: NewPriceEntryRepository(db, logger),
		Product:    NewProductRepository(db, logger),
	}
}
