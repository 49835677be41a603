package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/usecase/interfaces"
)

var ErrExporterNotConfigured = errors.New("earnings exporter not configured")

// ProfessionalDashboard is everything a professional sees on their home screen.
type ProfessionalDashboard struct {
	ProfessionalID string
	Orders         billing.OrderStats
	Earnings       billing.EarningsReport
	Withdrawals    billing.WithdrawalStats
	Balance        Balance
}

type CustomerDashboard struct {
	CustomerID string
	Orders     billing.OrderStats
}

type IReportUseCase interface {
	ProfessionalDashboard(ctx context.Context, professionalID string) (ProfessionalDashboard, error)
	CustomerDashboard(ctx context.Context, customerID string) (CustomerDashboard, error)
	ExportEarnings(ctx context.Context, professionalID string, w io.Writer) error
}

type ReportUseCase struct {
	orderRepo      interfaces.IOrderRepository
	commissionRepo interfaces.ICommissionRepository
	withdrawalRepo interfaces.IWithdrawalRepository
	exporter       interfaces.IEarningsExporter
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	orderRepo interfaces.IOrderRepository,
	commissionRepo interfaces.ICommissionRepository,
	withdrawalRepo interfaces.IWithdrawalRepository,
	exporter interfaces.IEarningsExporter,
) *ReportUseCase {
	return &ReportUseCase{
		orderRepo:      orderRepo,
		commissionRepo: commissionRepo,
		withdrawalRepo: withdrawalRepo,
		exporter:       exporter,
	}
}

func (u *ReportUseCase) ProfessionalDashboard(ctx context.Context, professionalID string) (ProfessionalDashboard, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return ProfessionalDashboard{}, ErrInvalidProfessionalID
	}

	orders, err := u.orderRepo.ListByProfessionalID(ctx, professionalID)
	if err != nil {
		log.Printf("[report][usecase] failed loading orders professional_id=%s err=%v", professionalID, err)
		return ProfessionalDashboard{}, backendError("list orders", err)
	}
	records, err := u.commissionRepo.ListByProfessionalID(ctx, professionalID)
	if err != nil {
		return ProfessionalDashboard{}, backendError("list commissions", err)
	}
	ws, err := u.withdrawalRepo.ListByProfessionalID(ctx, professionalID)
	if err != nil {
		return ProfessionalDashboard{}, backendError("list withdrawals", err)
	}

	earnings := billing.AggregateCommissions(records)
	return ProfessionalDashboard{
		ProfessionalID: professionalID,
		Orders:         billing.ComputeOrderStats(orders),
		Earnings:       earnings,
		Withdrawals:    billing.ComputeWithdrawalStats(ws),
		Balance: Balance{
			TotalEarnings: earnings.TotalEarnings,
			Reserved:      billing.ReservedAmount(ws),
			Available:     billing.AvailableBalance(earnings.TotalEarnings, ws),
		},
	}, nil
}

func (u *ReportUseCase) CustomerDashboard(ctx context.Context, customerID string) (CustomerDashboard, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return CustomerDashboard{}, ErrInvalidCustomerID
	}
	orders, err := u.orderRepo.ListByCustomerID(ctx, customerID)
	if err != nil {
		log.Printf("[report][usecase] failed loading orders customer_id=%s err=%v", customerID, err)
		return CustomerDashboard{}, backendError("list orders", err)
	}
	return CustomerDashboard{CustomerID: customerID, Orders: billing.ComputeOrderStats(orders)}, nil
}

// ExportEarnings writes the professional's earnings table to w.
func (u *ReportUseCase) ExportEarnings(ctx context.Context, professionalID string, w io.Writer) error {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return ErrInvalidProfessionalID
	}
	if u.exporter == nil {
		return ErrExporterNotConfigured
	}
	records, err := u.commissionRepo.ListByProfessionalID(ctx, professionalID)
	if err != nil {
		return backendError("list commissions", err)
	}
	if err := u.exporter.ExportEarnings(w, professionalID, records, billing.AggregateCommissions(records)); err != nil {
		log.Printf("[report][usecase] export failed professional_id=%s err=%v", professionalID, err)
		return err
	}
	return nil
}
