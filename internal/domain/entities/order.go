package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a booking.
//
// Domain notes:
//   - pending is the state right after the customer books.
//   - completed and cancelled are terminal; orders are never erased.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusInspected OrderStatus = "inspected"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusInspected,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusInspected, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderEvent is an action requested against an order.
type OrderEvent string

const (
	OrderEventAccept   OrderEvent = "accept"
	OrderEventReject   OrderEvent = "reject"
	OrderEventInspect  OrderEvent = "inspect"
	OrderEventCancel   OrderEvent = "cancel"
	OrderEventComplete OrderEvent = "complete"
)

func (e OrderEvent) Valid() bool {
	switch e {
	case OrderEventAccept, OrderEventReject, OrderEventInspect, OrderEventCancel, OrderEventComplete:
		return true
	}
	return false
}

// Order is a single booking of a service between a customer and a professional.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (professional_id-index): professional_id
//   - GSI2 (customer_id-index): customer_id
//
// Monetary representation:
//   - TotalPrice is the authoritative price; it only changes on inspection.
//   - TotalPaidAmount mirrors the sum of completed ledger entries.
//
// Optional fields are pointers: nil means "not set yet", which is not the
// same as an empty string.
type Order struct {
	ID             string      `json:"id"`
	CustomerID     string      `json:"customer_id"`
	ProfessionalID string      `json:"professional_id"`
	Status         OrderStatus `json:"status"`

	TotalPrice      decimal.Decimal `json:"total_price"`
	TotalPaidAmount decimal.Decimal `json:"total_paid_amount"`
	Quantity        int             `json:"quantity"`
	PriceUnit       string          `json:"price_unit"`
	QualityType     string          `json:"quality_type"`

	OrderDate   time.Time `json:"order_date"`
	ScheduledAt time.Time `json:"scheduled_at"`

	OrderNotes         string  `json:"order_notes"`
	InspectionNotes    *string `json:"inspection_notes,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`

	ContactRevealed bool       `json:"contact_revealed"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
	InspectedAt     *time.Time `json:"inspected_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// PriceLocked reports whether the price can no longer be revised.
func (o Order) PriceLocked() bool {
	return o.Status != OrderStatusPending && o.Status != OrderStatusAccepted
}
