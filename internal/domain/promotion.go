package domain

import "time"

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountAmount  DiscountType = "amount"
)

// Promotion is a persisted discount rule keyed by a human-entered code.
// Mutation is owned by an external administrative process; this service
// only ever reads snapshots of it.
type Promotion struct {
	Code          string       `json:"code" validate:"required"`
	DiscountType  DiscountType `json:"discount_type" validate:"required,oneof=percent amount"`
	DiscountValue float64      `json:"discount_value" validate:"min=0"`
	MinOrderValue float64      `json:"min_order_value" validate:"min=0"`
	MaxDiscount   *float64     `json:"max_discount,omitempty"` // only meaningful for percent promotions
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`   // nil = never expires
	IsActive      bool         `json:"is_active"`
}

// DiscountResult is what a successful validation returns: the computed
// discount plus the promotion snapshot it was computed from.
type DiscountResult struct {
	Discount float64   `json:"discount"`
	Promo    Promotion `json:"promo"`
}

const (
	PromotionUpserted    = "promotion.upserted"
	PromotionDeactivated = "promotion.deactivated"
)

// PromotionEvent is the admin-topic message shape. Upserts carry the full
// record, deactivations only need the code.
type PromotionEvent struct {
	Type string `json:"type" validate:"required,oneof=promotion.upserted promotion.deactivated"`
	Code string `json:"code" validate:"required"`
	// validated separately, only for upserts; deactivations carry a zero value
	Promotion Promotion `json:"promotion" validate:"-"`
}
