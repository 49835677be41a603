package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalStatus represents the lifecycle of a payout request.
//
// Transitions only move forward; completed and rejected are terminal.

type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusApproved  WithdrawalStatus = "approved"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

func (s WithdrawalStatus) Valid() bool {
	switch s {
	case WithdrawalStatusPending, WithdrawalStatusApproved, WithdrawalStatusCompleted, WithdrawalStatusRejected:
		return true
	}
	return false
}

func (s WithdrawalStatus) Terminal() bool {
	return s == WithdrawalStatusCompleted || s == WithdrawalStatusRejected
}

// Reserves reports whether a withdrawal in this status holds part of the balance.
func (s WithdrawalStatus) Reserves() bool {
	return s == WithdrawalStatusPending || s == WithdrawalStatusApproved || s == WithdrawalStatusCompleted
}

type WithdrawalEvent string

const (
	WithdrawalEventApprove WithdrawalEvent = "approve"
	WithdrawalEventReject  WithdrawalEvent = "reject"
	WithdrawalEventSettle  WithdrawalEvent = "settle"
	WithdrawalEventFail    WithdrawalEvent = "fail"
)

// Withdrawal is a professional's request to cash out net earnings.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (professional_id-index): professional_id
type Withdrawal struct {
	ID             string           `json:"id"`
	ProfessionalID string           `json:"professional_id"`
	Amount         decimal.Decimal  `json:"amount"`
	Status         WithdrawalStatus `json:"status"`
	PayoutMethod   string           `json:"payout_method"`
	ReferenceID    *string          `json:"reference_id,omitempty"`
	RequestDate    time.Time        `json:"request_date"`
	ProcessedAt    *time.Time       `json:"processed_at,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
