package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/pkg/errors"
)

// Postgres class 23 code for a unique constraint violation
const uniqueViolationCode = "23505"

type orderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) (bool, error) {
	query := `
		INSERT INTO orders (id, customer_name, customer_email, shipping_address, total, status, payment_status, payment_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}

	addressJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return false, err
	}

	_, err = r.db.ExecContext(ctx, query,
		order.ID,
		order.CustomerName,
		order.CustomerEmail,
		addressJSON,
		order.Total,
		order.Status,
		order.PaymentStatus,
		order.PaymentRef,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		// A duplicate payment reference means this checkout was already
		// processed; hand back the existing order instead of failing.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolationCode {
			existing, getErr := r.GetByPaymentRef(ctx, order.PaymentRef)
			if getErr != nil {
				r.logger.Error("Failed to load order after duplicate payment ref",
					zap.String("payment_ref", order.PaymentRef),
					zap.Error(getErr),
				)
				return false, getErr
			}
			*order = *existing
			return true, nil
		}
		r.logger.Error("Failed to create order", zap.Error(err))
		return false, err
	}

	return false, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `
		SELECT id, customer_name, customer_email, shipping_address, total, status, payment_status, payment_ref, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	return r.scanOrder(r.db.QueryRowContext(ctx, query, id), "order", id.String())
}

func (r *orderRepository) GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Order, error) {
	query := `
		SELECT id, customer_name, customer_email, shipping_address, total, status, payment_status, payment_ref, created_at, updated_at
		FROM orders
		WHERE payment_ref = $1
	`

	return r.scanOrder(r.db.QueryRowContext(ctx, query, paymentRef), "order", paymentRef)
}

func (r *orderRepository) scanOrder(row *sql.Row, resource, id string) (*domain.Order, error) {
	var order domain.Order
	var addressJSON []byte

	err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerEmail,
		&addressJSON,
		&order.Total,
		&order.Status,
		&order.PaymentStatus,
		&order.PaymentRef,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: resource, ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get order", zap.Error(err))
		return nil, err
	}

	if len(addressJSON) > 0 {
		if err := json.Unmarshal(addressJSON, &order.ShippingAddress); err != nil {
			r.logger.Error("Failed to decode shipping address", zap.Error(err))
			return nil, err
		}
	}

	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, paymentStatus domain.PaymentStatus) error {
	query := `
		UPDATE orders
		SET status = $2, payment_status = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, status, paymentStatus, time.Now())
	if err != nil {
		r.logger.Error("Failed to update order status", zap.Error(err))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}

	return nil
}

func (r *orderRepository) List(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	query := `
		SELECT id, customer_name, customer_email, shipping_address, total, status, payment_status, payment_ref, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("Failed to list orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		var addressJSON []byte

		err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.CustomerEmail,
			&addressJSON,
			&order.Total,
			&order.Status,
			&order.PaymentStatus,
			&order.PaymentRef,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan order row", zap.Error(err))
			return nil, err
		}

		if len(addressJSON) > 0 {
			if err := json.Unmarshal(addressJSON, &order.ShippingAddress); err != nil {
				continue
			}
		}

		orders = append(orders, &order)
	}

	return orders, rows.Err()
}
