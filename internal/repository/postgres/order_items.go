package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
)

type orderItemRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOrderItemRepository creates a new order item repository
func NewOrderItemRepository(db *sql.DB, logger *zap.Logger) *orderItemRepository {
	return &orderItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderItemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, name, quantity, unit_price, frame_size, frame_type, engraving_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.OrderID,
		item.ProductID,
		item.Name,
		item.Quantity,
		item.UnitPrice,
		item.FrameSize,
		item.FrameType,
		item.EngravingText,
		item.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create order item",
			zap.String("order_id", item.OrderID.String()),
			zap.String("product_id", item.ProductID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (r *orderItemRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]*domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, name, quantity, unit_price, frame_size, frame_type, engraving_text, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		r.logger.Error("Failed to get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []*domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var engraving sql.NullString

		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.Quantity,
			&item.UnitPrice,
			&item.FrameSize,
			&item.FrameType,
			&engraving,
			&item.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan order item row", zap.Error(err))
			return nil, err
		}

		if engraving.Valid {
			item.EngravingText = &engraving.String
		}

		items = append(items, &item)
	}

	return items, rows.Err()
}
