package billing

import (
	"strings"
	"time"

	"marketplace_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var withdrawalTransitions = map[entities.WithdrawalStatus]map[entities.WithdrawalEvent]entities.WithdrawalStatus{
	entities.WithdrawalStatusPending: {
		entities.WithdrawalEventApprove: entities.WithdrawalStatusApproved,
		entities.WithdrawalEventReject:  entities.WithdrawalStatusRejected,
	},
	entities.WithdrawalStatusApproved: {
		entities.WithdrawalEventSettle: entities.WithdrawalStatusCompleted,
		entities.WithdrawalEventFail:   entities.WithdrawalStatusRejected,
	},
}

// WithdrawalInput carries the optional payload of a withdrawal event.
type WithdrawalInput struct {
	// ReferenceID is the payout reference, required by settle.
	ReferenceID string
	Notes       *string
	At          time.Time
}

func NextWithdrawalStatus(from entities.WithdrawalStatus, event entities.WithdrawalEvent) (entities.WithdrawalStatus, bool) {
	to, ok := withdrawalTransitions[from][event]
	return to, ok
}

// ApplyWithdrawalEvent computes the withdrawal that results from event. On any
// error the input is returned untouched.
func ApplyWithdrawalEvent(w entities.Withdrawal, event entities.WithdrawalEvent, in WithdrawalInput) (entities.Withdrawal, error) {
	to, ok := NextWithdrawalStatus(w.Status, event)
	if !ok {
		return w, withdrawalTransitionError(w, event, nil)
	}

	at := in.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	next := w
	if event == entities.WithdrawalEventSettle {
		ref := strings.TrimSpace(in.ReferenceID)
		if ref == "" {
			return w, withdrawalTransitionError(w, event, ErrMissingReferenceID)
		}
		next.ReferenceID = &ref
	}
	if in.Notes != nil {
		notes := *in.Notes
		next.Notes = &notes
	}
	if to.Terminal() {
		next.ProcessedAt = &at
	}

	next.Status = to
	next.UpdatedAt = at
	return next, nil
}

// ReservedAmount sums the withdrawals that hold part of the balance.
func ReservedAmount(withdrawals []entities.Withdrawal) decimal.Decimal {
	total := decimal.Zero
	for _, w := range withdrawals {
		if w.Status.Reserves() {
			total = total.Add(w.Amount)
		}
	}
	return total
}

// AvailableBalance is the net earnings not yet claimed by a withdrawal.
func AvailableBalance(totalEarnings decimal.Decimal, withdrawals []entities.Withdrawal) decimal.Decimal {
	return totalEarnings.Sub(ReservedAmount(withdrawals))
}

// CheckWithdrawal validates a new request of amount against available.
func CheckWithdrawal(amount, available decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if amount.GreaterThan(available) {
		return &InsufficientBalanceError{Requested: amount, Available: available}
	}
	return nil
}

func withdrawalTransitionError(w entities.Withdrawal, event entities.WithdrawalEvent, cause error) error {
	return &InvalidTransitionError{
		Entity: "withdrawal",
		From:   string(w.Status),
		Event:  string(event),
		Cause:  cause,
	}
}
