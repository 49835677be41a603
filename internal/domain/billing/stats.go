package billing

import (
	"marketplace_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OrderStats backs the dashboard statistic widgets.
//
// Cancelled orders count towards TotalOrders and the status breakdown but
// not towards value, paid amount or settlement counts.
type OrderStats struct {
	TotalOrders      int
	StatusCounts     map[entities.OrderStatus]int
	SettlementCounts map[entities.SettlementStatus]int
	TotalValue       decimal.Decimal
	TotalPaid        decimal.Decimal
	TotalRemaining   decimal.Decimal
	CompletionRate   decimal.Decimal
	CancellationRate decimal.Decimal
}

func ComputeOrderStats(orders []entities.Order) OrderStats {
	stats := OrderStats{
		TotalOrders:      len(orders),
		StatusCounts:     make(map[entities.OrderStatus]int, len(entities.OrderStatuses)),
		SettlementCounts: make(map[entities.SettlementStatus]int, 3),
		TotalValue:       decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalRemaining:   decimal.Zero,
	}
	for _, s := range entities.OrderStatuses {
		stats.StatusCounts[s] = 0
	}
	for _, s := range []entities.SettlementStatus{entities.SettlementUnpaid, entities.SettlementPartial, entities.SettlementPaid} {
		stats.SettlementCounts[s] = 0
	}

	for _, o := range orders {
		stats.StatusCounts[o.Status]++
		if o.Status == entities.OrderStatusCancelled {
			continue
		}
		summary := SummarizePaid(o.TotalPrice, o.TotalPaidAmount)
		stats.SettlementCounts[summary.PaymentStatus]++
		stats.TotalValue = stats.TotalValue.Add(o.TotalPrice)
		stats.TotalPaid = stats.TotalPaid.Add(o.TotalPaidAmount)
		stats.TotalRemaining = stats.TotalRemaining.Add(summary.RemainingAmount)
	}

	total := decimal.NewFromInt(int64(len(orders)))
	stats.CompletionRate = Percentage(decimal.NewFromInt(int64(stats.StatusCounts[entities.OrderStatusCompleted])), total)
	stats.CancellationRate = Percentage(decimal.NewFromInt(int64(stats.StatusCounts[entities.OrderStatusCancelled])), total)
	return stats
}

// FilterOrders keeps the orders whose status is one of statuses. With no
// statuses every order is kept.
func FilterOrders(orders []entities.Order, statuses ...entities.OrderStatus) []entities.Order {
	if len(statuses) == 0 {
		return orders
	}
	keep := make(map[entities.OrderStatus]struct{}, len(statuses))
	for _, s := range statuses {
		keep[s] = struct{}{}
	}
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if _, ok := keep[o.Status]; ok {
			out = append(out, o)
		}
	}
	return out
}

// WithdrawalStats sums withdrawal amounts per status.
type WithdrawalStats struct {
	Count     int
	Pending   decimal.Decimal
	Approved  decimal.Decimal
	Completed decimal.Decimal
	Rejected  decimal.Decimal
}

func ComputeWithdrawalStats(withdrawals []entities.Withdrawal) WithdrawalStats {
	stats := WithdrawalStats{
		Count:     len(withdrawals),
		Pending:   decimal.Zero,
		Approved:  decimal.Zero,
		Completed: decimal.Zero,
		Rejected:  decimal.Zero,
	}
	for _, w := range withdrawals {
		switch w.Status {
		case entities.WithdrawalStatusPending:
			stats.Pending = stats.Pending.Add(w.Amount)
		case entities.WithdrawalStatusApproved:
			stats.Approved = stats.Approved.Add(w.Amount)
		case entities.WithdrawalStatusCompleted:
			stats.Completed = stats.Completed.Add(w.Amount)
		case entities.WithdrawalStatusRejected:
			stats.Rejected = stats.Rejected.Add(w.Amount)
		}
	}
	return stats
}
