package response

import (
	"time"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CommissionResponse struct {
	OrderID          string    `json:"order_id"`
	ProfessionalID   string    `json:"professional_id"`
	OrderTotal       float64   `json:"order_total"`
	RateApplied      float64   `json:"rate_applied"`
	CommissionAmount float64   `json:"commission_amount"`
	NetEarnings      float64   `json:"net_earnings"`
	CompletedAt      time.Time `json:"completed_at"`
}

func FromCommission(r entities.CommissionRecord) CommissionResponse {
	return CommissionResponse{
		OrderID:          r.OrderID,
		ProfessionalID:   r.ProfessionalID,
		OrderTotal:       amount(r.OrderTotal),
		RateApplied:      r.RateApplied.InexactFloat64(),
		CommissionAmount: amount(r.CommissionAmount),
		NetEarnings:      amount(r.NetEarnings),
		CompletedAt:      r.CompletedAt,
	}
}

type EarningsReportResponse struct {
	ProfessionalID          string               `json:"professional_id,omitempty"`
	TotalOrders             int                  `json:"total_orders"`
	TotalOrderValue         float64              `json:"total_order_value"`
	TotalCommission         float64              `json:"total_commission"`
	TotalEarnings           float64              `json:"total_earnings"`
	AverageRate             float64              `json:"average_rate"`
	AverageEarningsPerOrder float64              `json:"average_earnings_per_order"`
	Records                 []CommissionResponse `json:"records,omitempty"`
}

func FromEarningsReport(professionalID string, r billing.EarningsReport) EarningsReportResponse {
	return EarningsReportResponse{
		ProfessionalID:          professionalID,
		TotalOrders:             r.TotalOrders,
		TotalOrderValue:         amount(r.TotalOrderValue),
		TotalCommission:         amount(r.TotalCommission),
		TotalEarnings:           amount(r.TotalEarnings),
		AverageRate:             amount(r.AverageRate),
		AverageEarningsPerOrder: amount(r.AverageEarningsPerOrder),
	}
}

// WithRecords attaches the per order breakdown to the report.
func (r EarningsReportResponse) WithRecords(records []entities.CommissionRecord) EarningsReportResponse {
	r.Records = make([]CommissionResponse, 0, len(records))
	for _, rec := range records {
		r.Records = append(r.Records, FromCommission(rec))
	}
	return r
}

type CommissionRateResponse struct {
	Rate float64 `json:"rate"`
}

func FromRate(rate decimal.Decimal) CommissionRateResponse {
	return CommissionRateResponse{Rate: rate.InexactFloat64()}
}
