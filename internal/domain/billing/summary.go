package billing

import (
	"marketplace_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentSummary is the derived view of how much of an order's price is paid.
type PaymentSummary struct {
	TotalPrice        decimal.Decimal
	TotalPaidAmount   decimal.Decimal
	RemainingAmount   decimal.Decimal
	PaymentPercentage decimal.Decimal
	PaymentStatus     entities.SettlementStatus
}

// PaidAmount sums the completed entries of a ledger.
func PaidAmount(payments []entities.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == entities.PaymentStatusCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// Summarize derives the payment summary of a ledger against the current price.
func Summarize(totalPrice decimal.Decimal, payments []entities.Payment) PaymentSummary {
	return SummarizePaid(totalPrice, PaidAmount(payments))
}

// SummarizePaid derives the payment summary from an already aggregated amount.
func SummarizePaid(totalPrice, paid decimal.Decimal) PaymentSummary {
	remaining := totalPrice.Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	pct := decimal.Zero
	if totalPrice.IsPositive() {
		pct = decimal.Min(Percentage(paid, totalPrice), hundred)
	}

	return PaymentSummary{
		TotalPrice:        totalPrice,
		TotalPaidAmount:   paid,
		RemainingAmount:   remaining,
		PaymentPercentage: pct,
		PaymentStatus:     SettlementOf(totalPrice, paid),
	}
}

// SettlementOf classifies paid against totalPrice.
func SettlementOf(totalPrice, paid decimal.Decimal) entities.SettlementStatus {
	switch {
	case paid.Sign() <= 0:
		return entities.SettlementUnpaid
	case paid.LessThan(totalPrice):
		return entities.SettlementPartial
	default:
		return entities.SettlementPaid
	}
}
