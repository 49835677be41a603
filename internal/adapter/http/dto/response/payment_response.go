package response

import (
	"time"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"
)

type PaymentResponse struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	Amount            float64   `json:"amount"`
	Method            string    `json:"method"`
	Status            string    `json:"status"`
	RecordedBy        string    `json:"recorded_by"`
	Timestamp         time.Time `json:"timestamp"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Amount:            amount(p.Amount),
		Method:            string(p.Method),
		Status:            string(p.Status),
		RecordedBy:        string(p.RecordedBy),
		Timestamp:         p.Timestamp,
		ProviderPaymentID: p.ProviderPaymentID,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

type PaymentSummaryResponse struct {
	OrderID           string  `json:"order_id"`
	TotalPrice        float64 `json:"total_price"`
	TotalPaidAmount   float64 `json:"total_paid_amount"`
	RemainingAmount   float64 `json:"remaining_amount"`
	PaymentPercentage float64 `json:"payment_percentage"`
	PaymentStatus     string  `json:"payment_status"`
}

func FromPaymentSummary(orderID string, s billing.PaymentSummary) PaymentSummaryResponse {
	return PaymentSummaryResponse{
		OrderID:           orderID,
		TotalPrice:        amount(s.TotalPrice),
		TotalPaidAmount:   amount(s.TotalPaidAmount),
		RemainingAmount:   amount(s.RemainingAmount),
		PaymentPercentage: amount(s.PaymentPercentage),
		PaymentStatus:     string(s.PaymentStatus),
	}
}
