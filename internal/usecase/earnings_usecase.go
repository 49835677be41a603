package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrCommissionNotFound = errors.New("commission not found")
	ErrInvalidRate        = errors.New("invalid commission rate")
)

// IEarningsUseCase exposes commission records, the professional's earnings
// rollup and the platform commission rate.

type IEarningsUseCase interface {
	GetByOrderID(ctx context.Context, orderID string) (entities.CommissionRecord, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]entities.CommissionRecord, error)
	EarningsReport(ctx context.Context, professionalID string) (billing.EarningsReport, error)
	CurrentRate(ctx context.Context) (decimal.Decimal, error)
	UpdateRate(ctx context.Context, rate decimal.Decimal) (decimal.Decimal, error)
}

type EarningsUseCase struct {
	repo     interfaces.ICommissionRepository
	settings interfaces.ISettingsRepository
	rates    commissionRates
}

var _ IEarningsUseCase = (*EarningsUseCase)(nil)

func NewEarningsUseCase(repo interfaces.ICommissionRepository, settings interfaces.ISettingsRepository, defaultRate decimal.Decimal) *EarningsUseCase {
	return &EarningsUseCase{
		repo:     repo,
		settings: settings,
		rates:    commissionRates{repo: settings, fallback: defaultRate},
	}
}

func (u *EarningsUseCase) GetByOrderID(ctx context.Context, orderID string) (entities.CommissionRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CommissionRecord{}, ErrInvalidOrderID
	}
	rec, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.CommissionRecord{}, backendError("load commission", err)
	}
	if rec.OrderID == "" {
		return entities.CommissionRecord{}, ErrCommissionNotFound
	}
	return rec, nil
}

func (u *EarningsUseCase) ListByProfessional(ctx context.Context, professionalID string) ([]entities.CommissionRecord, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return nil, ErrInvalidProfessionalID
	}
	records, err := u.repo.ListByProfessionalID(ctx, professionalID)
	if err != nil {
		return nil, backendError("list commissions", err)
	}
	return records, nil
}

func (u *EarningsUseCase) EarningsReport(ctx context.Context, professionalID string) (billing.EarningsReport, error) {
	records, err := u.ListByProfessional(ctx, professionalID)
	if err != nil {
		return billing.EarningsReport{}, err
	}
	return billing.AggregateCommissions(records), nil
}

func (u *EarningsUseCase) CurrentRate(ctx context.Context) (decimal.Decimal, error) {
	return u.rates.current(ctx)
}

// UpdateRate changes the rate applied to orders completed from now on.
func (u *EarningsUseCase) UpdateRate(ctx context.Context, rate decimal.Decimal) (decimal.Decimal, error) {
	if err := billing.ValidateRate(rate); err != nil {
		return decimal.Zero, ErrInvalidRate
	}
	if u.settings == nil {
		return decimal.Zero, backendError("update commission rate", errors.New("settings repository not configured"))
	}
	if err := u.settings.PutCommissionRate(ctx, rate, time.Now().UTC()); err != nil {
		log.Printf("[commission][usecase] rate update failed rate=%s err=%v", rate.String(), err)
		return decimal.Zero, backendError("update commission rate", err)
	}
	log.Printf("[commission][usecase] rate updated rate=%s", rate.String())
	return rate, nil
}
