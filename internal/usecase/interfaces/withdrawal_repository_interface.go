package interfaces

import (
	"context"
	"marketplace_billing/internal/domain/entities"
)

// IWithdrawalRepository abstracts DynamoDB persistence for Withdrawal.
//
// Update is conditional on the status that was read (ErrVersionConflict otherwise).

type IWithdrawalRepository interface {
	Create(ctx context.Context, w entities.Withdrawal) (entities.Withdrawal, error)
	GetByID(ctx context.Context, id string) (entities.Withdrawal, error)
	ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.Withdrawal, error)
	Update(ctx context.Context, w entities.Withdrawal, expectedStatus entities.WithdrawalStatus) (entities.Withdrawal, error)
}
