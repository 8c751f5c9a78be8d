package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/pkg/errors"
)

type priceEntryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPriceEntryRepository creates a new price entry repository
func NewPriceEntryRepository(db *sql.DB, logger *zap.Logger) *priceEntryRepository {
	return &priceEntryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *priceEntryRepository) GetByCategoryAndSize(ctx context.Context, category string, size domain.FrameSize) (*domain.PriceEntry, error) {
	query := `
		SELECT id, category, frame_size, unit_price, updated_at
		FROM price_entries
		WHERE category = $1 AND frame_size = $2
	`

	var entry domain.PriceEntry

	err := r.db.QueryRowContext(ctx, query, category, size).Scan(
		&entry.ID,
		&entry.Category,
		&entry.FrameSize,
		&entry.UnitPrice,
		&entry.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "price entry", ID: category + "/" + string(size)}
	}
	if err != nil {
		r.logger.Error("Failed to get price entry",
			zap.String("category", category),
			zap.String("frame_size", string(size)),
			zap.Error(err),
		)
		return nil, err
	}

	return &entry, nil
}

func (r *priceEntryRepository) Upsert(ctx context.Context, entry *domain.PriceEntry) error {
	query := `
		INSERT INTO price_entries (id, category, frame_size, unit_price, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (category, frame_size)
		DO UPDATE SET unit_price = EXCLUDED.unit_price, updated_at = EXCLUDED.updated_at
	`

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Category,
		entry.FrameSize,
		entry.UnitPrice,
		entry.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to upsert price entry", zap.Error(err))
		return err
	}

	return nil
}
