package response

import (
	"time"

	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase"
)

type WithdrawalResponse struct {
	ID             string     `json:"id"`
	ProfessionalID string     `json:"professional_id"`
	Amount         float64    `json:"amount"`
	Status         string     `json:"status"`
	PayoutMethod   string     `json:"payout_method"`
	ReferenceID    *string    `json:"reference_id,omitempty"`
	RequestDate    time.Time  `json:"request_date"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

func FromWithdrawal(w entities.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:             w.ID,
		ProfessionalID: w.ProfessionalID,
		Amount:         amount(w.Amount),
		Status:         string(w.Status),
		PayoutMethod:   w.PayoutMethod,
		ReferenceID:    w.ReferenceID,
		RequestDate:    w.RequestDate,
		ProcessedAt:    w.ProcessedAt,
		Notes:          w.Notes,
	}
}

func FromWithdrawals(withdrawals []entities.Withdrawal) []WithdrawalResponse {
	out := make([]WithdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		out = append(out, FromWithdrawal(w))
	}
	return out
}

type BalanceResponse struct {
	ProfessionalID string  `json:"professional_id,omitempty"`
	TotalEarnings  float64 `json:"total_earnings"`
	Reserved       float64 `json:"reserved"`
	Available      float64 `json:"available"`
}

func FromBalance(professionalID string, b usecase.Balance) BalanceResponse {
	return BalanceResponse{
		ProfessionalID: professionalID,
		TotalEarnings:  amount(b.TotalEarnings),
		Reserved:       amount(b.Reserved),
		Available:      amount(b.Available),
	}
}
