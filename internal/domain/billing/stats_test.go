package billing

import (
	"testing"

	"marketplace_billing/internal/domain/entities"
)

func TestComputeOrderStats(t *testing.T) {
	orders := []entities.Order{
		newOrder(entities.OrderStatusPending, "100", "0"),
		newOrder(entities.OrderStatusAccepted, "200", "50"),
		newOrder(entities.OrderStatusCompleted, "300", "300"),
		newOrder(entities.OrderStatusCompleted, "400", "400"),
		newOrder(entities.OrderStatusCancelled, "999", "0"),
	}

	s := ComputeOrderStats(orders)
	if s.TotalOrders != 5 {
		t.Fatalf("expected 5 orders, got %d", s.TotalOrders)
	}
	if s.StatusCounts[entities.OrderStatusCompleted] != 2 || s.StatusCounts[entities.OrderStatusInspected] != 0 {
		t.Fatalf("unexpected status counts: %v", s.StatusCounts)
	}
	if !s.TotalValue.Equal(dec("1000")) || !s.TotalPaid.Equal(dec("750")) || !s.TotalRemaining.Equal(dec("250")) {
		t.Fatalf("unexpected amounts: value=%s paid=%s remaining=%s", s.TotalValue, s.TotalPaid, s.TotalRemaining)
	}
	if s.SettlementCounts[entities.SettlementPaid] != 2 || s.SettlementCounts[entities.SettlementPartial] != 1 || s.SettlementCounts[entities.SettlementUnpaid] != 1 {
		t.Fatalf("unexpected settlement counts: %v", s.SettlementCounts)
	}
	if !s.CompletionRate.Equal(dec("40")) || !s.CancellationRate.Equal(dec("20")) {
		t.Fatalf("unexpected rates: %s %s", s.CompletionRate, s.CancellationRate)
	}
}

func TestComputeOrderStats_Empty(t *testing.T) {
	s := ComputeOrderStats(nil)
	if s.TotalOrders != 0 || !s.CompletionRate.IsZero() || !s.TotalValue.IsZero() {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if len(s.StatusCounts) != len(entities.OrderStatuses) {
		t.Fatalf("every status should be present in the breakdown")
	}
}

func TestFilterOrders(t *testing.T) {
	orders := []entities.Order{
		newOrder(entities.OrderStatusPending, "1", "0"),
		newOrder(entities.OrderStatusAccepted, "1", "0"),
		newOrder(entities.OrderStatusInspected, "1", "0"),
	}
	if got := FilterOrders(orders); len(got) != 3 {
		t.Fatalf("no filter must keep everything")
	}
	got := FilterOrders(orders, entities.OrderStatusAccepted, entities.OrderStatusInspected)
	if len(got) != 2 || got[0].Status != entities.OrderStatusAccepted {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

func TestComputeWithdrawalStats(t *testing.T) {
	s := ComputeWithdrawalStats([]entities.Withdrawal{
		newWithdrawal(entities.WithdrawalStatusPending, "10"),
		newWithdrawal(entities.WithdrawalStatusPending, "5"),
		newWithdrawal(entities.WithdrawalStatusCompleted, "20"),
		newWithdrawal(entities.WithdrawalStatusRejected, "7"),
	})
	if s.Count != 4 || !s.Pending.Equal(dec("15")) || !s.Completed.Equal(dec("20")) || !s.Rejected.Equal(dec("7")) || !s.Approved.IsZero() {
		t.Fatalf("unexpected stats: %+v", s)
	}
}
