package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrMissingInspectedPrice     = errors.New("inspected price is required")
	ErrNonPositiveInspectedPrice = errors.New("inspected price must be greater than zero")
	ErrInspectedPriceBelowPaid   = errors.New("inspected price is below the amount already paid")
	ErrMissingInspectionNotes    = errors.New("inspection notes are required")
	ErrOrderNotPaid              = errors.New("order is not fully paid")
	ErrMissingReferenceID        = errors.New("payout reference id is required")

	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrInvalidRate       = errors.New("commission rate must be between 0 and 100")
	ErrOrderNotCompleted = errors.New("order is not completed")
)

// InvalidTransitionError is returned when a state change is not in the
// transition table or its precondition does not hold. The message is meant
// to be shown to the user as is.
type InvalidTransitionError struct {
	Entity string
	From   string
	Event  string
	Cause  error
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot %s %s in status %s: %v", e.Event, e.Entity, e.From, e.Cause)
	}
	return fmt.Sprintf("cannot %s %s in status %s", e.Event, e.Entity, e.From)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func (e *InvalidTransitionError) Unwrap() error {
	return e.Cause
}

// InsufficientBalanceError reports a withdrawal larger than the available balance.
type InsufficientBalanceError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: requested %s, available %s",
		e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
