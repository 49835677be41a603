package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestEarningsTable_ExportEarnings(t *testing.T) {
	records := []entities.CommissionRecord{
		{
			OrderID:          "ord-1",
			ProfessionalID:   "pro-1",
			OrderTotal:       decimal.RequireFromString("1700"),
			RateApplied:      decimal.RequireFromString("10"),
			CommissionAmount: decimal.RequireFromString("170"),
			NetEarnings:      decimal.RequireFromString("1530"),
			CompletedAt:      time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	exp := NewEarningsTable(billing.DefaultCurrencyFormat)
	if err := exp.ExportEarnings(&buf, "pro-1", records, billing.AggregateCommissions(records)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"pro-1", "ord-1", "2024-03-05", "$1,700.00", "$170.00", "$1,530.00", "10.00%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestEarningsTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	exp := NewEarningsTable(billing.DefaultCurrencyFormat)
	if err := exp.ExportEarnings(&buf, "pro-9", nil, billing.AggregateCommissions(nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "$0.00") {
		t.Fatalf("expected zero totals:\n%s", buf.String())
	}
}
