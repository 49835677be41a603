package request

import (
	"strings"
	"time"

	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the booking payload submitted by a customer.
type CreateOrderRequest struct {
	CustomerID     string          `json:"customer_id" binding:"required"`
	ProfessionalID string          `json:"professional_id" binding:"required"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Quantity       int             `json:"quantity" binding:"required"`
	PriceUnit      string          `json:"price_unit"`
	QualityType    string          `json:"quality_type"`
	ScheduledAt    *time.Time      `json:"scheduled_at"`
	OrderNotes     string          `json:"order_notes"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	in := usecase.CreateOrderInput{
		CustomerID:     r.CustomerID,
		ProfessionalID: r.ProfessionalID,
		TotalPrice:     r.TotalPrice,
		Quantity:       r.Quantity,
		PriceUnit:      r.PriceUnit,
		QualityType:    r.QualityType,
		OrderNotes:     r.OrderNotes,
	}
	if r.ScheduledAt != nil {
		in.ScheduledAt = *r.ScheduledAt
	}
	return in
}

// TransitionRequest carries the optional payload of an order event. Event is
// only read by the generic transitions route; the per-event routes take it
// from the path.
type TransitionRequest struct {
	Event    string           `json:"event"`
	NewPrice *decimal.Decimal `json:"new_price"`
	Notes    string           `json:"notes"`
	Reason   *string          `json:"reason"`
}

func (r TransitionRequest) ResolveEvent() entities.OrderEvent {
	return entities.OrderEvent(strings.ToLower(strings.TrimSpace(r.Event)))
}

func (r TransitionRequest) ToUseCase() usecase.TransitionRequest {
	return usecase.TransitionRequest{
		NewPrice: r.NewPrice,
		Notes:    r.Notes,
		Reason:   r.Reason,
	}
}

// ParseStatuses splits a comma separated status filter. Blank entries are
// skipped; unknown values are passed through for the use case to reject.
func ParseStatuses(raw string) []entities.OrderStatus {
	var out []entities.OrderStatus
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		out = append(out, entities.OrderStatus(part))
	}
	return out
}
