package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"paygate/internal/domain"
	"paygate/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgres(ctx context.Context, logger *slog.Logger, url string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("pg.NewPostgres: failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg.NewPostgres: failed to ping: %w", err)
	}

	p := &Postgres{pool: pool, logger: logger}

	if err := p.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg.NewPostgres: failed to init schema: %w", err)
	}

	return p, nil
}

func (p *Postgres) initSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS promotions (
    code            TEXT PRIMARY KEY,
    discount_type   TEXT NOT NULL CHECK (discount_type IN ('percent', 'amount')),
    discount_value  DOUBLE PRECISION NOT NULL CHECK (discount_value >= 0),
    min_order_value DOUBLE PRECISION NOT NULL DEFAULT 0,
    max_discount    DOUBLE PRECISION,
    expires_at      TIMESTAMPTZ,
    is_active       BOOLEAN NOT NULL DEFAULT TRUE,
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}

// GetActiveByCode returns the active promotion for a code. Inactive and
// missing records are indistinguishable to the caller on purpose.
func (p *Postgres) GetActiveByCode(ctx context.Context, code string) (domain.Promotion, error) {
	row := p.pool.QueryRow(ctx, `
SELECT code, discount_type, discount_value, min_order_value, max_discount, expires_at, is_active
FROM promotions
WHERE code = $1 AND is_active = TRUE`, code)

	var promo domain.Promotion
	err := row.Scan(
		&promo.Code,
		&promo.DiscountType,
		&promo.DiscountValue,
		&promo.MinOrderValue,
		&promo.MaxDiscount,
		&promo.ExpiresAt,
		&promo.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Promotion{}, e.ErrNotFound
		}
		p.logger.Error("failed to query promotion", slog.String("code", code), slog.String("error", err.Error()))
		return domain.Promotion{}, e.Wrap("pg.GetActiveByCode", err)
	}

	return promo, nil
}

func (p *Postgres) UpsertPromotion(ctx context.Context, promo domain.Promotion) error {
	_, err := p.pool.Exec(ctx, `
INSERT INTO promotions (code, discount_type, discount_value, min_order_value, max_discount, expires_at, is_active, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (code) DO UPDATE SET
    discount_type   = EXCLUDED.discount_type,
    discount_value  = EXCLUDED.discount_value,
    min_order_value = EXCLUDED.min_order_value,
    max_discount    = EXCLUDED.max_discount,
    expires_at      = EXCLUDED.expires_at,
    is_active       = EXCLUDED.is_active,
    updated_at      = now()`,
		promo.Code,
		promo.DiscountType,
		promo.DiscountValue,
		promo.MinOrderValue,
		promo.MaxDiscount,
		promo.ExpiresAt,
		promo.IsActive,
	)
	if err != nil {
		p.logger.Error("failed to upsert promotion", slog.String("code", promo.Code), slog.String("error", err.Error()))
		return e.Wrap("pg.UpsertPromotion", err)
	}

	return nil
}

func (p *Postgres) DeactivatePromotion(ctx context.Context, code string) error {
	tag, err := p.pool.Exec(ctx, `
UPDATE promotions SET is_active = FALSE, updated_at = now() WHERE code = $1`, code)
	if err != nil {
		p.logger.Error("failed to deactivate promotion", slog.String("code", code), slog.String("error", err.Error()))
		return e.Wrap("pg.DeactivatePromotion", err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrNotFound
	}

	return nil
}

func (p *Postgres) CloseConnection() {
	p.pool.Close()
}
