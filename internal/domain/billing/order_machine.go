package billing

import (
	"strings"
	"time"

	"marketplace_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// orderTransitions is the complete order transition table. Pairs that are not
// listed are rejected.
var orderTransitions = map[entities.OrderStatus]map[entities.OrderEvent]entities.OrderStatus{
	entities.OrderStatusPending: {
		entities.OrderEventAccept: entities.OrderStatusAccepted,
		entities.OrderEventReject: entities.OrderStatusCancelled,
	},
	entities.OrderStatusAccepted: {
		entities.OrderEventInspect:  entities.OrderStatusInspected,
		entities.OrderEventCancel:   entities.OrderStatusCancelled,
		entities.OrderEventComplete: entities.OrderStatusCompleted,
	},
	entities.OrderStatusInspected: {
		entities.OrderEventComplete: entities.OrderStatusCompleted,
	},
}

var orderEvents = []entities.OrderEvent{
	entities.OrderEventAccept,
	entities.OrderEventReject,
	entities.OrderEventInspect,
	entities.OrderEventCancel,
	entities.OrderEventComplete,
}

// TransitionInput carries the optional payload of an order event.
type TransitionInput struct {
	// NewPrice and Notes are required by inspect.
	NewPrice *decimal.Decimal
	Notes    string
	// Reason is kept on reject/cancel when provided.
	Reason *string
	At     time.Time
}

// NextOrderStatus looks up the target of event from status.
func NextOrderStatus(from entities.OrderStatus, event entities.OrderEvent) (entities.OrderStatus, bool) {
	to, ok := orderTransitions[from][event]
	return to, ok
}

// AllowedOrderEvents lists the events accepted from status, in a stable order.
// Preconditions are not evaluated.
func AllowedOrderEvents(status entities.OrderStatus) []entities.OrderEvent {
	allowed := make([]entities.OrderEvent, 0, 3)
	for _, ev := range orderEvents {
		if _, ok := orderTransitions[status][ev]; ok {
			allowed = append(allowed, ev)
		}
	}
	return allowed
}

// ApplyOrderEvent computes the order that results from event. On any error the
// input order is returned untouched.
//
// The inspect and complete preconditions are evaluated against
// o.TotalPaidAmount, so callers must refresh the paid amount from the ledger
// before either event.
func ApplyOrderEvent(o entities.Order, event entities.OrderEvent, in TransitionInput) (entities.Order, error) {
	to, ok := NextOrderStatus(o.Status, event)
	if !ok {
		return o, orderTransitionError(o, event, nil)
	}

	at := in.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	next := o
	switch event {
	case entities.OrderEventAccept:
		next.ContactRevealed = true
		next.AcceptedAt = &at

	case entities.OrderEventInspect:
		if in.NewPrice == nil {
			return o, orderTransitionError(o, event, ErrMissingInspectedPrice)
		}
		// A zero price could never be settled and inspected has no cancel edge.
		if !in.NewPrice.IsPositive() {
			return o, orderTransitionError(o, event, ErrNonPositiveInspectedPrice)
		}
		if in.NewPrice.LessThan(o.TotalPaidAmount) {
			return o, orderTransitionError(o, event, ErrInspectedPriceBelowPaid)
		}
		notes := strings.TrimSpace(in.Notes)
		if notes == "" {
			return o, orderTransitionError(o, event, ErrMissingInspectionNotes)
		}
		next.TotalPrice = *in.NewPrice
		next.InspectionNotes = &notes
		next.InspectedAt = &at

	case entities.OrderEventReject, entities.OrderEventCancel:
		if in.Reason != nil {
			reason := *in.Reason
			next.CancellationReason = &reason
		}
		next.CancelledAt = &at

	case entities.OrderEventComplete:
		if SettlementOf(o.TotalPrice, o.TotalPaidAmount) != entities.SettlementPaid {
			return o, orderTransitionError(o, event, ErrOrderNotPaid)
		}
		next.CompletedAt = &at
	}

	next.Status = to
	next.UpdatedAt = at
	return next, nil
}

func orderTransitionError(o entities.Order, event entities.OrderEvent, cause error) error {
	return &InvalidTransitionError{
		Entity: "order",
		From:   string(o.Status),
		Event:  string(event),
		Cause:  cause,
	}
}
