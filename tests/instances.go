package tests

import (
	"encoding/json"
	"log"
	"time"

	"paygate/internal/domain"
)

var (
	MaxDiscount = 100000.0

	PromoPercent = domain.Promotion{
		Code:          "SUMMER50",
		DiscountType:  domain.DiscountPercent,
		DiscountValue: 50,
		MinOrderValue: 0,
		MaxDiscount:   &MaxDiscount,
		IsActive:      true,
	}

	PromoAmount = domain.Promotion{
		Code:          "FLAT20K",
		DiscountType:  domain.DiscountAmount,
		DiscountValue: 20000,
		MinOrderValue: 50000,
		IsActive:      true,
	}

	GatewayResponseInstance = domain.GatewayResponse{
		PartnerCode: "PARTNERTEST",
		OrderID:     "PARTNERTEST-1700000000000000000-1",
		RequestID:   "PARTNERTEST-1700000000000000000-1",
		Amount:      1817,
		ResultCode:  0,
		Message:     "Success",
		PayURL:      "https://gateway.example.com/pay/abc",
	}

	PromoPercentString string

	EventKafka = `{"type":"promotion.upserted","code":"SUMMER50","promotion":{"code":"SUMMER50","discount_type":"percent","discount_value":50,"min_order_value":0,"max_discount":100000,"is_active":true}}`
)

// ExpiredAt returns a pointer to a moment offset from now, for building
// expiry fixtures relative to the test run.
func ExpiredAt(offset time.Duration) *time.Time {
	t := time.Now().Add(offset)
	return &t
}

func init() {
	promoJSON, err := json.Marshal(PromoPercent)
	if err != nil {
		log.Fatalf("failed to marshal PromoPercent: %s", err)
	}
	PromoPercentString = string(promoJSON)
}
