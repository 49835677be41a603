package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the state of a single ledger entry.
//
// Only completed entries count towards an order's paid amount. Entries are
// appended and never mutated once completed.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodEWallet      PaymentMethod = "e_wallet"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodEWallet, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// ThroughGateway reports whether the method is charged by the payment provider.
func (m PaymentMethod) ThroughGateway() bool {
	return m == PaymentMethodEWallet || m == PaymentMethodBankTransfer
}

// PartyRole identifies which side of the booking performed an action.
type PartyRole string

const (
	PartyCustomer     PartyRole = "customer"
	PartyProfessional PartyRole = "professional"
)

func (r PartyRole) Valid() bool {
	return r == PartyCustomer || r == PartyProfessional
}

// SettlementStatus is the derived payment status of an order.
type SettlementStatus string

const (
	SettlementUnpaid  SettlementStatus = "unpaid"
	SettlementPartial SettlementStatus = "partial"
	SettlementPaid    SettlementStatus = "paid"
)

// Payment is a ledger entry recorded against an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the gateway response for audit; empty for cash.
type Payment struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
	Status     PaymentStatus   `json:"status"`
	RecordedBy PartyRole       `json:"recorded_by"`
	Timestamp  time.Time       `json:"timestamp"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
