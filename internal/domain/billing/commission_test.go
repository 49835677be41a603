package billing

import (
	"errors"
	"testing"

	"marketplace_billing/internal/domain/entities"
)

func TestComputeCommission(t *testing.T) {
	cases := []struct {
		total      string
		rate       string
		commission string
		net        string
	}{
		{total: "700", rate: "10", commission: "70.00", net: "630.00"},
		{total: "333.33", rate: "12.5", commission: "41.67", net: "291.66"},
		{total: "0.05", rate: "10", commission: "0.01", net: "0.04"},
		{total: "1000", rate: "0", commission: "0.00", net: "1000.00"},
		{total: "1000", rate: "100", commission: "1000.00", net: "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.total+"@"+tc.rate, func(t *testing.T) {
			b, err := ComputeCommission(dec(tc.total), dec(tc.rate))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.CommissionAmount.StringFixed(2) != tc.commission || b.NetEarnings.StringFixed(2) != tc.net {
				t.Fatalf("expected %s/%s, got %s/%s", tc.commission, tc.net, b.CommissionAmount, b.NetEarnings)
			}
			if !b.CommissionAmount.Add(b.NetEarnings).Equal(b.OrderTotal) {
				t.Fatalf("commission + net must equal total")
			}
		})
	}

	for _, bad := range []string{"-0.01", "100.01"} {
		if _, err := ComputeCommission(dec("10"), dec(bad)); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("rate %s: expected ErrInvalidRate, got %v", bad, err)
		}
	}
}

func TestNewCommissionRecord(t *testing.T) {
	t.Run("order not completed", func(t *testing.T) {
		o := newOrder(entities.OrderStatusInspected, "700", "700")
		if _, err := NewCommissionRecord(o, dec("10")); !errors.Is(err, ErrOrderNotCompleted) {
			t.Fatalf("expected ErrOrderNotCompleted, got %v", err)
		}
	})

	t.Run("rate frozen on record", func(t *testing.T) {
		o := newOrder(entities.OrderStatusCompleted, "700", "700")
		rec, err := NewCommissionRecord(o, dec("10"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.OrderID != "ord-1" || rec.ProfessionalID != "pro-1" || !rec.RateApplied.Equal(dec("10")) {
			t.Fatalf("unexpected record: %+v", rec)
		}
		if rec.CompletedAt.IsZero() {
			t.Fatalf("completed_at must be set")
		}

		// a later rate change produces a different breakdown but the stored record keeps its own
		later, _ := ComputeCommission(o.TotalPrice, dec("20"))
		if Breakdown(rec).CommissionAmount.Equal(later.CommissionAmount) {
			t.Fatalf("stored record must not follow the new rate")
		}
	})
}

func TestAggregateCommissions(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		r := AggregateCommissions(nil)
		if r.TotalOrders != 0 || !r.AverageRate.IsZero() || !r.AverageEarningsPerOrder.IsZero() || !r.TotalEarnings.IsZero() {
			t.Fatalf("unexpected report: %+v", r)
		}
	})

	t.Run("mixed rates", func(t *testing.T) {
		records := []entities.CommissionRecord{
			{OrderTotal: dec("700"), RateApplied: dec("10"), CommissionAmount: dec("70"), NetEarnings: dec("630")},
			{OrderTotal: dec("300"), RateApplied: dec("20"), CommissionAmount: dec("60"), NetEarnings: dec("240")},
		}
		r := AggregateCommissions(records)
		if r.TotalOrders != 2 {
			t.Fatalf("expected 2 orders, got %d", r.TotalOrders)
		}
		if !r.TotalOrderValue.Equal(dec("1000")) || !r.TotalCommission.Equal(dec("130")) || !r.TotalEarnings.Equal(dec("870")) {
			t.Fatalf("unexpected totals: %+v", r)
		}
		if !r.AverageRate.Equal(dec("13")) {
			t.Fatalf("expected average rate 13, got %s", r.AverageRate)
		}
		if !r.AverageEarningsPerOrder.Equal(dec("435")) {
			t.Fatalf("expected 435 per order, got %s", r.AverageEarningsPerOrder)
		}
	})
}
