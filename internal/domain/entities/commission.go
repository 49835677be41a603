package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionRecord is the platform fee taken from a completed order.
//
// Storage model (DynamoDB):
//   - PK: order_id (one record per order, written once)
//   - GSI1 (professional_id-index): professional_id
//
// RateApplied is the percentage in effect when the order completed; later
// changes to the platform rate never rewrite it.
type CommissionRecord struct {
	OrderID          string          `json:"order_id"`
	ProfessionalID   string          `json:"professional_id"`
	OrderTotal       decimal.Decimal `json:"order_total"`
	RateApplied      decimal.Decimal `json:"rate_applied"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	NetEarnings      decimal.Decimal `json:"net_earnings"`
	CompletedAt      time.Time       `json:"completed_at"`
}
