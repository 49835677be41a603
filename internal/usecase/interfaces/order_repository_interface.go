package interfaces

import (
	"context"
	"marketplace_billing/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookups return a zero Order (empty ID) when nothing is stored.
// Every write is conditional on the version that was read; a mismatch returns
// ErrVersionConflict and nothing is written.
//   - Update persists a transition.
//   - Complete persists the completed order and its commission record together.
//   - ApplyPayment stores a completed ledger entry (new, or a pending one being
//     confirmed) together with the order's new paid amount.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.Order, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order, expectedVersion int) (entities.Order, error)
	Complete(ctx context.Context, o entities.Order, expectedVersion int, rec entities.CommissionRecord) (entities.Order, error)
	ApplyPayment(ctx context.Context, o entities.Order, expectedVersion int, p entities.Payment) (entities.Order, error)
}
