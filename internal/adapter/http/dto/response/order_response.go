package response

import (
	"time"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"
)

type OrderResponse struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customer_id"`
	ProfessionalID string `json:"professional_id"`
	Status         string `json:"status"`

	TotalPrice      float64 `json:"total_price"`
	TotalPaidAmount float64 `json:"total_paid_amount"`
	Quantity        int     `json:"quantity"`
	PriceUnit       string  `json:"price_unit,omitempty"`
	QualityType     string  `json:"quality_type,omitempty"`

	OrderDate   time.Time  `json:"order_date"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`

	OrderNotes         string  `json:"order_notes,omitempty"`
	InspectionNotes    *string `json:"inspection_notes,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`

	ContactRevealed bool       `json:"contact_revealed"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
	InspectedAt     *time.Time `json:"inspected_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`

	AllowedEvents []string `json:"allowed_events"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		ProfessionalID:     o.ProfessionalID,
		Status:             string(o.Status),
		TotalPrice:         amount(o.TotalPrice),
		TotalPaidAmount:    amount(o.TotalPaidAmount),
		Quantity:           o.Quantity,
		PriceUnit:          o.PriceUnit,
		QualityType:        o.QualityType,
		OrderDate:          o.OrderDate,
		OrderNotes:         o.OrderNotes,
		InspectionNotes:    o.InspectionNotes,
		CancellationReason: o.CancellationReason,
		ContactRevealed:    o.ContactRevealed,
		AcceptedAt:         o.AcceptedAt,
		InspectedAt:        o.InspectedAt,
		CompletedAt:        o.CompletedAt,
		CancelledAt:        o.CancelledAt,
		UpdatedAt:          o.UpdatedAt,
		AllowedEvents:      []string{},
	}
	if !o.ScheduledAt.IsZero() {
		at := o.ScheduledAt
		resp.ScheduledAt = &at
	}
	for _, e := range billing.AllowedOrderEvents(o.Status) {
		resp.AllowedEvents = append(resp.AllowedEvents, string(e))
	}
	return resp
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
