package interfaces

import (
	"context"
	"marketplace_billing/internal/domain/entities"
)

// ICommissionRepository reads commission records. Records are only written by
// IOrderRepository.Complete.

type ICommissionRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (entities.CommissionRecord, error)
	ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.CommissionRecord, error)
}
