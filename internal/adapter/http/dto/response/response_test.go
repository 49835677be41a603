package response

import (
	"testing"
	"time"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromOrder(t *testing.T) {
	notes := "pipes replaced"
	o := entities.Order{
		ID:              "ord-1",
		Status:          entities.OrderStatusInspected,
		TotalPrice:      decimal.RequireFromString("1500.005"),
		TotalPaidAmount: decimal.NewFromInt(500),
		InspectionNotes: &notes,
		OrderDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := FromOrder(o)
	if resp.TotalPrice != 1500.01 || resp.TotalPaidAmount != 500 {
		t.Fatalf("unexpected amounts: %+v", resp)
	}
	if resp.ScheduledAt != nil {
		t.Fatalf("expected no schedule")
	}
	if resp.InspectionNotes == nil || *resp.InspectionNotes != notes {
		t.Fatalf("expected inspection notes")
	}
	if len(resp.AllowedEvents) != 1 || resp.AllowedEvents[0] != "complete" {
		t.Fatalf("unexpected allowed events: %v", resp.AllowedEvents)
	}

	completed := FromOrder(entities.Order{Status: entities.OrderStatusCompleted})
	if completed.AllowedEvents == nil || len(completed.AllowedEvents) != 0 {
		t.Fatalf("expected empty allowed events, got %v", completed.AllowedEvents)
	}
}

func TestFromPaymentSummary(t *testing.T) {
	s := billing.SummarizePaid(decimal.NewFromInt(300), decimal.NewFromInt(100))
	resp := FromPaymentSummary("ord-1", s)
	if resp.RemainingAmount != 200 || resp.PaymentPercentage != 33.33 || resp.PaymentStatus != "partial" {
		t.Fatalf("unexpected summary: %+v", resp)
	}
}

func TestFromEarningsReport(t *testing.T) {
	records := []entities.CommissionRecord{{
		OrderID:          "ord-1",
		OrderTotal:       decimal.NewFromInt(700),
		RateApplied:      decimal.NewFromInt(10),
		CommissionAmount: decimal.NewFromInt(70),
		NetEarnings:      decimal.NewFromInt(630),
	}}
	resp := FromEarningsReport("pro-1", billing.AggregateCommissions(records)).WithRecords(records)
	if resp.TotalEarnings != 630 || resp.TotalCommission != 70 || len(resp.Records) != 1 {
		t.Fatalf("unexpected report: %+v", resp)
	}
	if resp.Records[0].RateApplied != 10 {
		t.Fatalf("unexpected rate: %v", resp.Records[0].RateApplied)
	}
}

func TestFromProfessionalDashboard(t *testing.T) {
	d := usecase.ProfessionalDashboard{
		ProfessionalID: "pro-1",
		Orders:         billing.ComputeOrderStats([]entities.Order{{Status: entities.OrderStatusPending, TotalPrice: decimal.NewFromInt(100)}}),
		Balance: usecase.Balance{
			TotalEarnings: decimal.NewFromInt(630),
			Reserved:      decimal.NewFromInt(130),
			Available:     decimal.NewFromInt(500),
		},
	}
	resp := FromProfessionalDashboard(d)
	if resp.Orders.StatusCounts["pending"] != 1 || resp.Orders.SettlementCounts["unpaid"] != 1 {
		t.Fatalf("unexpected counts: %+v", resp.Orders)
	}
	if resp.Balance.Available != 500 || resp.Balance.ProfessionalID != "" {
		t.Fatalf("unexpected balance: %+v", resp.Balance)
	}
}
