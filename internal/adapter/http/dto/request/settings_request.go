package request

import "github.com/shopspring/decimal"

type CommissionRateRequest struct {
	Rate *decimal.Decimal `json:"rate" binding:"required"`
}
