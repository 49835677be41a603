package request

import (
	"marketplace_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

type WithdrawalRequest struct {
	ProfessionalID string          `json:"professional_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	PayoutMethod   string          `json:"payout_method" binding:"required"`
	Notes          *string         `json:"notes"`
}

func (r WithdrawalRequest) ToInput() usecase.RequestWithdrawalInput {
	return usecase.RequestWithdrawalInput{
		ProfessionalID: r.ProfessionalID,
		Amount:         r.Amount,
		PayoutMethod:   r.PayoutMethod,
		Notes:          r.Notes,
	}
}

// WithdrawalActionRequest is the optional body of the administrative
// withdrawal routes. ReferenceID is required by settle.
type WithdrawalActionRequest struct {
	ReferenceID string  `json:"reference_id"`
	Notes       *string `json:"notes"`
}
