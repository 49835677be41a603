package billing

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"marketplace_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func newOrder(status entities.OrderStatus, price, paid string) entities.Order {
	return entities.Order{
		ID:              "ord-1",
		CustomerID:      "cus-1",
		ProfessionalID:  "pro-1",
		Status:          status,
		TotalPrice:      dec(price),
		TotalPaidAmount: dec(paid),
		Quantity:        1,
		PriceUnit:       "visit",
		OrderNotes:      "leaking tap",
		Version:         3,
	}
}

func TestApplyOrderEvent_RejectsPairsOutsideTable(t *testing.T) {
	allowed := map[entities.OrderStatus][]entities.OrderEvent{
		entities.OrderStatusPending:   {entities.OrderEventAccept, entities.OrderEventReject},
		entities.OrderStatusAccepted:  {entities.OrderEventInspect, entities.OrderEventCancel, entities.OrderEventComplete},
		entities.OrderStatusInspected: {entities.OrderEventComplete},
	}

	for _, status := range entities.OrderStatuses {
		for _, ev := range orderEvents {
			inTable := false
			for _, a := range allowed[status] {
				if a == ev {
					inTable = true
				}
			}
			if inTable {
				continue
			}

			t.Run(string(status)+"/"+string(ev), func(t *testing.T) {
				o := newOrder(status, "100", "100")
				got, err := ApplyOrderEvent(o, ev, TransitionInput{NewPrice: decPtr("50"), Notes: "n"})
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
				if !reflect.DeepEqual(got, o) {
					t.Fatalf("order changed: %+v", got)
				}
			})
		}
	}
}

func TestApplyOrderEvent_Accept(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	o := newOrder(entities.OrderStatusPending, "500", "0")

	got, err := ApplyOrderEvent(o, entities.OrderEventAccept, TransitionInput{At: at})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.OrderStatusAccepted || !got.ContactRevealed {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got.AcceptedAt == nil || !got.AcceptedAt.Equal(at) || !got.UpdatedAt.Equal(at) {
		t.Fatalf("expected timestamps to be set")
	}
	if o.ContactRevealed || o.Status != entities.OrderStatusPending {
		t.Fatalf("input order must not be mutated")
	}

	_, err = ApplyOrderEvent(got, entities.OrderEventAccept, TransitionInput{})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("repeating accept must fail, got %v", err)
	}
}

func TestApplyOrderEvent_InspectValidation(t *testing.T) {
	cases := []struct {
		name  string
		in    TransitionInput
		cause error
	}{
		{name: "missing price", in: TransitionInput{Notes: "ok"}, cause: ErrMissingInspectedPrice},
		{name: "negative price", in: TransitionInput{NewPrice: decPtr("-1"), Notes: "ok"}, cause: ErrNonPositiveInspectedPrice},
		{name: "zero price", in: TransitionInput{NewPrice: decPtr("0"), Notes: "nothing to fix"}, cause: ErrNonPositiveInspectedPrice},
		{name: "below paid amount", in: TransitionInput{NewPrice: decPtr("199.99"), Notes: "smaller job"}, cause: ErrInspectedPriceBelowPaid},
		{name: "blank notes", in: TransitionInput{NewPrice: decPtr("700"), Notes: "   "}, cause: ErrMissingInspectionNotes},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := newOrder(entities.OrderStatusAccepted, "500", "200")
			got, err := ApplyOrderEvent(o, entities.OrderEventInspect, tc.in)
			if !errors.Is(err, ErrInvalidTransition) || !errors.Is(err, tc.cause) {
				t.Fatalf("expected invalid transition caused by %v, got %v", tc.cause, err)
			}
			var ite *InvalidTransitionError
			if !errors.As(err, &ite) || ite.From != "accepted" || ite.Event != "inspect" {
				t.Fatalf("unexpected error detail: %+v", ite)
			}
			if !reflect.DeepEqual(got, o) {
				t.Fatalf("order changed on failed inspection")
			}
		})
	}

	t.Run("price equal to paid amount settles the order", func(t *testing.T) {
		o := newOrder(entities.OrderStatusAccepted, "500", "200")
		got, err := ApplyOrderEvent(o, entities.OrderEventInspect, TransitionInput{NewPrice: decPtr("200"), Notes: "smaller job"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.TotalPrice.Equal(dec("200")) || SettlementOf(got.TotalPrice, got.TotalPaidAmount) != entities.SettlementPaid {
			t.Fatalf("unexpected order: %+v", got)
		}
		if _, err := ApplyOrderEvent(got, entities.OrderEventComplete, TransitionInput{}); err != nil {
			t.Fatalf("expected complete to be allowed, got %v", err)
		}
	})
}

func TestApplyOrderEvent_PriceLockedAfterInspection(t *testing.T) {
	o := newOrder(entities.OrderStatusAccepted, "500", "0")
	inspected, err := ApplyOrderEvent(o, entities.OrderEventInspect, TransitionInput{NewPrice: decPtr("700"), Notes: "extra wiring needed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inspected.PriceLocked() {
		t.Fatalf("price must be locked after inspection")
	}

	for _, ev := range orderEvents {
		got, _ := ApplyOrderEvent(inspected, ev, TransitionInput{NewPrice: decPtr("9999"), Notes: "again"})
		if !got.TotalPrice.Equal(dec("700")) {
			t.Fatalf("event %s changed the price to %s", ev, got.TotalPrice)
		}
	}
}

func TestApplyOrderEvent_CompleteRequiresPaid(t *testing.T) {
	for _, status := range []entities.OrderStatus{entities.OrderStatusAccepted, entities.OrderStatusInspected} {
		t.Run(string(status)+" unpaid", func(t *testing.T) {
			o := newOrder(status, "500", "0")
			_, err := ApplyOrderEvent(o, entities.OrderEventComplete, TransitionInput{})
			if !errors.Is(err, ErrOrderNotPaid) {
				t.Fatalf("expected ErrOrderNotPaid, got %v", err)
			}
		})

		t.Run(string(status)+" partial", func(t *testing.T) {
			o := newOrder(status, "500", "499.99")
			_, err := ApplyOrderEvent(o, entities.OrderEventComplete, TransitionInput{})
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})

		t.Run(string(status)+" paid", func(t *testing.T) {
			o := newOrder(status, "500", "500")
			got, err := ApplyOrderEvent(o, entities.OrderEventComplete, TransitionInput{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != entities.OrderStatusCompleted || got.CompletedAt == nil {
				t.Fatalf("unexpected order: %+v", got)
			}
		})
	}
}

func TestApplyOrderEvent_CancellationReason(t *testing.T) {
	o := newOrder(entities.OrderStatusPending, "500", "0")

	rejected, err := ApplyOrderEvent(o, entities.OrderEventReject, TransitionInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rejected.CancellationReason != nil {
		t.Fatalf("reason must stay unset")
	}
	if rejected.CancelledAt == nil || rejected.Status != entities.OrderStatusCancelled {
		t.Fatalf("unexpected order: %+v", rejected)
	}

	accepted := newOrder(entities.OrderStatusAccepted, "500", "0")
	cancelled, err := ApplyOrderEvent(accepted, entities.OrderEventCancel, TransitionInput{Reason: strPtr("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.CancellationReason == nil || *cancelled.CancellationReason != "" {
		t.Fatalf("empty reason must be kept as set")
	}
}

func TestApplyOrderEvent_InspectionReopensPayment(t *testing.T) {
	o := newOrder(entities.OrderStatusAccepted, "1000", "1000")
	if SettlementOf(o.TotalPrice, o.TotalPaidAmount) != entities.SettlementPaid {
		t.Fatalf("expected paid before inspection")
	}

	inspected, err := ApplyOrderEvent(o, entities.OrderEventInspect, TransitionInput{NewPrice: decPtr("1500"), Notes: "bigger job"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary := SummarizePaid(inspected.TotalPrice, inspected.TotalPaidAmount)
	if summary.PaymentStatus != entities.SettlementPartial {
		t.Fatalf("expected partial, got %s", summary.PaymentStatus)
	}
	if !summary.RemainingAmount.Equal(dec("500")) {
		t.Fatalf("expected remaining 500, got %s", summary.RemainingAmount)
	}

	_, err = ApplyOrderEvent(inspected, entities.OrderEventComplete, TransitionInput{})
	if !errors.Is(err, ErrOrderNotPaid) {
		t.Fatalf("expected ErrOrderNotPaid, got %v", err)
	}
}

func TestOrderLifecycleScenario(t *testing.T) {
	o := newOrder(entities.OrderStatusPending, "500", "0")

	o, err := ApplyOrderEvent(o, entities.OrderEventAccept, TransitionInput{})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	o, err = ApplyOrderEvent(o, entities.OrderEventInspect, TransitionInput{NewPrice: decPtr("700"), Notes: "extra wiring needed"})
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if o.Status != entities.OrderStatusInspected || !o.TotalPrice.Equal(dec("700")) {
		t.Fatalf("unexpected inspected order: %+v", o)
	}
	if o.InspectionNotes == nil || *o.InspectionNotes != "extra wiring needed" {
		t.Fatalf("unexpected inspection notes")
	}

	ledger := []entities.Payment{{ID: "pay-1", OrderID: o.ID, Amount: dec("700"), Status: entities.PaymentStatusCompleted}}
	summary := Summarize(o.TotalPrice, ledger)
	if summary.PaymentStatus != entities.SettlementPaid {
		t.Fatalf("expected paid, got %s", summary.PaymentStatus)
	}
	o.TotalPaidAmount = summary.TotalPaidAmount

	o, err = ApplyOrderEvent(o, entities.OrderEventComplete, TransitionInput{})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	rec, err := NewCommissionRecord(o, dec("10"))
	if err != nil {
		t.Fatalf("commission: %v", err)
	}
	if rec.CommissionAmount.StringFixed(2) != "70.00" || rec.NetEarnings.StringFixed(2) != "630.00" {
		t.Fatalf("unexpected commission: %s / %s", rec.CommissionAmount, rec.NetEarnings)
	}
}

func TestApplyOrderEvent_CompleteFromPending(t *testing.T) {
	o := newOrder(entities.OrderStatusPending, "500", "500")
	got, err := ApplyOrderEvent(o, entities.OrderEventComplete, TransitionInput{})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if got.Status != entities.OrderStatusPending {
		t.Fatalf("status must not change")
	}
}

func TestAllowedOrderEvents(t *testing.T) {
	cases := map[entities.OrderStatus][]entities.OrderEvent{
		entities.OrderStatusPending:   {entities.OrderEventAccept, entities.OrderEventReject},
		entities.OrderStatusAccepted:  {entities.OrderEventInspect, entities.OrderEventCancel, entities.OrderEventComplete},
		entities.OrderStatusInspected: {entities.OrderEventComplete},
		entities.OrderStatusCompleted: {},
		entities.OrderStatusCancelled: {},
	}
	for status, want := range cases {
		got := AllowedOrderEvents(status)
		if len(got) != len(want) {
			t.Fatalf("%s: expected %v, got %v", status, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: expected %v, got %v", status, want, got)
			}
		}
	}
}
