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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrWithdrawalNotFound     = errors.New("withdrawal not found")
	ErrInvalidWithdrawalID    = errors.New("invalid withdrawal id")
	ErrInvalidWithdrawalValue = errors.New("invalid withdrawal amount")
	ErrInvalidPayoutMethod    = errors.New("invalid payout_method")
)

// RequestWithdrawalInput is a professional's payout request.
type RequestWithdrawalInput struct {
	ProfessionalID string
	Amount         decimal.Decimal
	PayoutMethod   string
	Notes          *string
}

// Balance is a professional's net earnings split into reserved and available.
type Balance struct {
	TotalEarnings decimal.Decimal
	Reserved      decimal.Decimal
	Available     decimal.Decimal
}

// IWithdrawalUseCase exposes the payout lifecycle.
//
// RequestWithdrawal is the professional's self-service action; approve,
// reject, settle and fail are administrative.

type IWithdrawalUseCase interface {
	RequestWithdrawal(ctx context.Context, in RequestWithdrawalInput) (entities.Withdrawal, error)
	Approve(ctx context.Context, id string) (entities.Withdrawal, error)
	Reject(ctx context.Context, id string, notes *string) (entities.Withdrawal, error)
	Settle(ctx context.Context, id string, referenceID string, notes *string) (entities.Withdrawal, error)
	Fail(ctx context.Context, id string, notes *string) (entities.Withdrawal, error)
	GetByID(ctx context.Context, id string) (entities.Withdrawal, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]entities.Withdrawal, error)
	Balance(ctx context.Context, professionalID string) (Balance, error)
}

type WithdrawalUseCase struct {
	repo           interfaces.IWithdrawalRepository
	commissionRepo interfaces.ICommissionRepository
}

var _ IWithdrawalUseCase = (*WithdrawalUseCase)(nil)

func NewWithdrawalUseCase(repo interfaces.IWithdrawalRepository, commissionRepo interfaces.ICommissionRepository) *WithdrawalUseCase {
	return &WithdrawalUseCase{repo: repo, commissionRepo: commissionRepo}
}

func (u *WithdrawalUseCase) RequestWithdrawal(ctx context.Context, in RequestWithdrawalInput) (entities.Withdrawal, error) {
	professionalID := strings.TrimSpace(in.ProfessionalID)
	if professionalID == "" {
		return entities.Withdrawal{}, ErrInvalidProfessionalID
	}
	if !in.Amount.IsPositive() {
		return entities.Withdrawal{}, ErrInvalidWithdrawalValue
	}
	method := strings.TrimSpace(in.PayoutMethod)
	if method == "" {
		return entities.Withdrawal{}, ErrInvalidPayoutMethod
	}
	log.Printf("[withdrawal][usecase] request start professional_id=%s amount=%s", professionalID, in.Amount.StringFixed(2))

	bal, err := professionalBalance(ctx, u.commissionRepo, u.repo, professionalID)
	if err != nil {
		return entities.Withdrawal{}, err
	}
	if err := billing.CheckWithdrawal(in.Amount, bal.Available); err != nil {
		log.Printf("[withdrawal][usecase] request rejected professional_id=%s err=%v", professionalID, err)
		return entities.Withdrawal{}, err
	}

	now := time.Now().UTC()
	w := entities.Withdrawal{
		ID:             uuid.NewString(),
		ProfessionalID: professionalID,
		Amount:         in.Amount,
		Status:         entities.WithdrawalStatusPending,
		PayoutMethod:   method,
		RequestDate:    now,
		Notes:          in.Notes,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, w)
	if err != nil {
		log.Printf("[withdrawal][usecase] create failed professional_id=%s err=%v", professionalID, err)
		return entities.Withdrawal{}, backendError("create withdrawal", err)
	}
	log.Printf("[withdrawal][usecase] request success withdrawal_id=%s", created.ID)
	return created, nil
}

func (u *WithdrawalUseCase) Approve(ctx context.Context, id string) (entities.Withdrawal, error) {
	return u.transition(ctx, id, entities.WithdrawalEventApprove, billing.WithdrawalInput{})
}

func (u *WithdrawalUseCase) Reject(ctx context.Context, id string, notes *string) (entities.Withdrawal, error) {
	return u.transition(ctx, id, entities.WithdrawalEventReject, billing.WithdrawalInput{Notes: notes})
}

func (u *WithdrawalUseCase) Settle(ctx context.Context, id string, referenceID string, notes *string) (entities.Withdrawal, error) {
	return u.transition(ctx, id, entities.WithdrawalEventSettle, billing.WithdrawalInput{ReferenceID: referenceID, Notes: notes})
}

func (u *WithdrawalUseCase) Fail(ctx context.Context, id string, notes *string) (entities.Withdrawal, error) {
	return u.transition(ctx, id, entities.WithdrawalEventFail, billing.WithdrawalInput{Notes: notes})
}

func (u *WithdrawalUseCase) transition(ctx context.Context, id string, event entities.WithdrawalEvent, in billing.WithdrawalInput) (entities.Withdrawal, error) {
	w, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Withdrawal{}, err
	}

	in.At = time.Now().UTC()
	next, err := billing.ApplyWithdrawalEvent(w, event, in)
	if err != nil {
		log.Printf("[withdrawal][usecase] transition rejected withdrawal_id=%s status=%s event=%s err=%v", w.ID, w.Status, event, err)
		return entities.Withdrawal{}, err
	}

	saved, err := u.repo.Update(ctx, next, w.Status)
	if err = persistError("update withdrawal", err); err != nil {
		log.Printf("[withdrawal][usecase] update failed withdrawal_id=%s err=%v", w.ID, err)
		return entities.Withdrawal{}, err
	}
	log.Printf("[withdrawal][usecase] transition success withdrawal_id=%s from=%s to=%s", w.ID, w.Status, saved.Status)
	return saved, nil
}

func (u *WithdrawalUseCase) GetByID(ctx context.Context, id string) (entities.Withdrawal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Withdrawal{}, ErrInvalidWithdrawalID
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Withdrawal{}, backendError("load withdrawal", err)
	}
	if w.ID == "" {
		return entities.Withdrawal{}, ErrWithdrawalNotFound
	}
	return w, nil
}

func (u *WithdrawalUseCase) ListByProfessional(ctx context.Context, professionalID string) ([]entities.Withdrawal, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return nil, ErrInvalidProfessionalID
	}
	ws, err := u.repo.ListByProfessionalID(ctx, professionalID)
	if err != nil {
		return nil, backendError("list withdrawals", err)
	}
	return ws, nil
}

func (u *WithdrawalUseCase) Balance(ctx context.Context, professionalID string) (Balance, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return Balance{}, ErrInvalidProfessionalID
	}
	return professionalBalance(ctx, u.commissionRepo, u.repo, professionalID)
}

func professionalBalance(ctx context.Context, commissions interfaces.ICommissionRepository, withdrawals interfaces.IWithdrawalRepository, professionalID string) (Balance, error) {
	records, err := commissions.ListByProfessionalID(ctx, professionalID)
	if err != nil {
		return Balance{}, backendError("list commissions", err)
	}
	ws, err := withdrawals.ListByProfessionalID(ctx, professionalID)
	if err != nil {
		return Balance{}, backendError("list withdrawals", err)
	}

	earnings := billing.AggregateCommissions(records).TotalEarnings
	return Balance{
		TotalEarnings: earnings,
		Reserved:      billing.ReservedAmount(ws),
		Available:     billing.AvailableBalance(earnings, ws),
	}, nil
}
