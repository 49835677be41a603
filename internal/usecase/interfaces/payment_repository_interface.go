package interfaces

import (
	"context"
	"marketplace_billing/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for ledger entries.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}
