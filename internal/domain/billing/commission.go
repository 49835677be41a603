package billing

import (
	"time"

	"marketplace_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CommissionBreakdown splits an order total into platform fee and net earnings.
type CommissionBreakdown struct {
	OrderTotal       decimal.Decimal
	RateApplied      decimal.Decimal
	CommissionAmount decimal.Decimal
	NetEarnings      decimal.Decimal
}

// ValidateRate checks that rate is a percentage in [0, 100].
func ValidateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return ErrInvalidRate
	}
	return nil
}

// ComputeCommission applies rate (a percentage) to orderTotal. The commission is
// rounded to cents and the net is derived from it, so both always add up to
// the total.
func ComputeCommission(orderTotal, rate decimal.Decimal) (CommissionBreakdown, error) {
	if err := ValidateRate(rate); err != nil {
		return CommissionBreakdown{}, err
	}
	commission := Round2(orderTotal.Mul(rate).Div(hundred))
	return CommissionBreakdown{
		OrderTotal:       orderTotal,
		RateApplied:      rate,
		CommissionAmount: commission,
		NetEarnings:      orderTotal.Sub(commission),
	}, nil
}

// NewCommissionRecord freezes the commission of a completed order at rate.
func NewCommissionRecord(o entities.Order, rate decimal.Decimal) (entities.CommissionRecord, error) {
	if o.Status != entities.OrderStatusCompleted {
		return entities.CommissionRecord{}, ErrOrderNotCompleted
	}
	b, err := ComputeCommission(o.TotalPrice, rate)
	if err != nil {
		return entities.CommissionRecord{}, err
	}

	completedAt := o.UpdatedAt
	if o.CompletedAt != nil {
		completedAt = *o.CompletedAt
	}
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	return entities.CommissionRecord{
		OrderID:          o.ID,
		ProfessionalID:   o.ProfessionalID,
		OrderTotal:       b.OrderTotal,
		RateApplied:      b.RateApplied,
		CommissionAmount: b.CommissionAmount,
		NetEarnings:      b.NetEarnings,
		CompletedAt:      completedAt,
	}, nil
}

// Breakdown returns the stored figures of a record.
func Breakdown(r entities.CommissionRecord) CommissionBreakdown {
	return CommissionBreakdown{
		OrderTotal:       r.OrderTotal,
		RateApplied:      r.RateApplied,
		CommissionAmount: r.CommissionAmount,
		NetEarnings:      r.NetEarnings,
	}
}

// EarningsReport aggregates a professional's commission records.
type EarningsReport struct {
	TotalOrders             int
	TotalOrderValue         decimal.Decimal
	TotalCommission         decimal.Decimal
	TotalEarnings           decimal.Decimal
	AverageRate             decimal.Decimal
	AverageEarningsPerOrder decimal.Decimal
}

// AggregateCommissions rolls up records using the amounts stored on them.
func AggregateCommissions(records []entities.CommissionRecord) EarningsReport {
	value := decimal.Zero
	commission := decimal.Zero
	for _, r := range records {
		value = value.Add(r.OrderTotal)
		commission = commission.Add(r.CommissionAmount)
	}
	earnings := value.Sub(commission)

	report := EarningsReport{
		TotalOrders:             len(records),
		TotalOrderValue:         value,
		TotalCommission:         commission,
		TotalEarnings:           earnings,
		AverageRate:             Percentage(commission, value),
		AverageEarningsPerOrder: decimal.Zero,
	}
	if len(records) > 0 {
		report.AverageEarningsPerOrder = Round2(earnings.Div(decimal.NewFromInt(int64(len(records)))))
	}
	return report
}
