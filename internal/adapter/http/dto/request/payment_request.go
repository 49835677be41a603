package request

import (
	"strings"

	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method" binding:"required"`
	RecordedBy string          `json:"recorded_by" binding:"required"`
	PayerEmail string          `json:"payer_email"`
}

func (r RecordPaymentRequest) ToInput() usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		Amount:     r.Amount,
		Method:     entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.Method))),
		RecordedBy: entities.PartyRole(strings.ToLower(strings.TrimSpace(r.RecordedBy))),
		PayerEmail: r.PayerEmail,
	}
}
