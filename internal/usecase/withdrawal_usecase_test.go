package usecase

import (
	"context"
	"errors"
	"testing"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase/interfaces"
	mock_interfaces "marketplace_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func withdrawalFixture(id string, status entities.WithdrawalStatus, amount string) entities.Withdrawal {
	return entities.Withdrawal{
		ID:             id,
		ProfessionalID: "pro-1",
		Amount:         dec(amount),
		Status:         status,
		PayoutMethod:   "bank_transfer",
	}
}

func TestWithdrawalUseCase_RequestWithdrawal(t *testing.T) {
	valid := RequestWithdrawalInput{ProfessionalID: "pro-1", Amount: dec("300"), PayoutMethod: "bank_transfer"}

	t.Run("validations", func(t *testing.T) {
		cases := []struct {
			name string
			in   RequestWithdrawalInput
			want error
		}{
			{"missing professional", RequestWithdrawalInput{Amount: dec("1"), PayoutMethod: "x"}, ErrInvalidProfessionalID},
			{"zero amount", RequestWithdrawalInput{ProfessionalID: "pro-1", Amount: dec("0"), PayoutMethod: "x"}, ErrInvalidWithdrawalValue},
			{"missing payout method", RequestWithdrawalInput{ProfessionalID: "pro-1", Amount: dec("1"), PayoutMethod: " "}, ErrInvalidPayoutMethod},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewWithdrawalUseCase(nil, nil)
				if _, err := uc.RequestWithdrawal(context.Background(), tc.in); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("insufficient balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		commissions := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewWithdrawalUseCase(repo, commissions)

		// 630 earned, 400 already reserved.
		commissions.EXPECT().ListByProfessionalID(gomock.Any(), "pro-1").Return([]entities.CommissionRecord{commissionFixture("ord-1", "700", "70", "630")}, nil)
		repo.EXPECT().ListByProfessionalID(gomock.Any(), "pro-1").Return([]entities.Withdrawal{
			withdrawalFixture("w1", entities.WithdrawalStatusPending, "400"),
			withdrawalFixture("w2", entities.WithdrawalStatusRejected, "500"),
		}, nil)

		_, err := uc.RequestWithdrawal(context.Background(), valid)
		if !errors.Is(err, billing.ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}
		var ibe *billing.InsufficientBalanceError
		if !errors.As(err, &ibe) || !ibe.Available.Equal(dec("230")) {
			t.Fatalf("expected available 230, got %v", err)
		}
	})

	t.Run("request success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		commissions := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewWithdrawalUseCase(repo, commissions)

		commissions.EXPECT().ListByProfessionalID(gomock.Any(), "pro-1").Return([]entities.CommissionRecord{commissionFixture("ord-1", "700", "70", "630")}, nil)
		repo.EXPECT().ListByProfessionalID(gomock.Any(), "pro-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Withdrawal{})).DoAndReturn(
			func(_ context.Context, w entities.Withdrawal) (entities.Withdrawal, error) {
				if w.ID == "" || w.Status != entities.WithdrawalStatusPending || !w.Amount.Equal(dec("300")) {
					t.Fatalf("unexpected withdrawal: %+v", w)
				}
				if w.RequestDate.IsZero() || w.ProcessedAt != nil {
					t.Fatalf("unexpected dates: %+v", w)
				}
				return w, nil
			},
		)

		w, err := uc.RequestWithdrawal(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Status != entities.WithdrawalStatusPending {
			t.Fatalf("expected pending, got %s", w.Status)
		}
	})

	t.Run("commission list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		commissions := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewWithdrawalUseCase(repo, commissions)

		commissions.EXPECT().ListByProfessionalID(gomock.Any(), "pro-1").Return(nil, errors.New("db"))

		if _, err := uc.RequestWithdrawal(context.Background(), valid); !errors.Is(err, ErrBackend) {
			t.Fatalf("expected ErrBackend, got %v", err)
		}
	})
}

func TestWithdrawalUseCase_Transitions(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "w1").Return(withdrawalFixture("w1", entities.WithdrawalStatusPending, "100"), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), entities.WithdrawalStatusPending).DoAndReturn(
			func(_ context.Context, w entities.Withdrawal, _ entities.WithdrawalStatus) (entities.Withdrawal, error) {
				if w.Status != entities.WithdrawalStatusApproved || w.ProcessedAt != nil {
					t.Fatalf("unexpected withdrawal: %+v", w)
				}
				return w, nil
			},
		)

		if _, err := uc.Approve(context.Background(), "w1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("settle requires reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "w1").Return(withdrawalFixture("w1", entities.WithdrawalStatusApproved, "100"), nil)

		_, err := uc.Settle(context.Background(), "w1", "  ", nil)
		if !errors.Is(err, billing.ErrInvalidTransition) || !errors.Is(err, billing.ErrMissingReferenceID) {
			t.Fatalf("expected missing reference transition error, got %v", err)
		}
	})

	t.Run("settle approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "w1").Return(withdrawalFixture("w1", entities.WithdrawalStatusApproved, "100"), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), entities.WithdrawalStatusApproved).DoAndReturn(
			func(_ context.Context, w entities.Withdrawal, _ entities.WithdrawalStatus) (entities.Withdrawal, error) {
				return w, nil
			},
		)

		w, err := uc.Settle(context.Background(), "w1", "TX-99", strPtr("paid"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Status != entities.WithdrawalStatusCompleted || w.ReferenceID == nil || *w.ReferenceID != "TX-99" || w.ProcessedAt == nil {
			t.Fatalf("unexpected withdrawal: %+v", w)
		}
	})

	t.Run("fail releases the reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "w1").Return(withdrawalFixture("w1", entities.WithdrawalStatusApproved, "100"), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), entities.WithdrawalStatusApproved).DoAndReturn(
			func(_ context.Context, w entities.Withdrawal, _ entities.WithdrawalStatus) (entities.Withdrawal, error) {
				return w, nil
			},
		)

		w, err := uc.Fail(context.Background(), "w1", strPtr("bank rejected"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Status != entities.WithdrawalStatusRejected || w.Status.Reserves() {
			t.Fatalf("unexpected withdrawal: %+v", w)
		}
	})

	t.Run("reject terminal is invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "w1").Return(withdrawalFixture("w1", entities.WithdrawalStatusCompleted, "100"), nil)

		if _, err := uc.Reject(context.Background(), "w1", nil); !errors.Is(err, billing.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "w1").Return(withdrawalFixture("w1", entities.WithdrawalStatusPending, "100"), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), entities.WithdrawalStatusPending).Return(entities.Withdrawal{}, interfaces.ErrVersionConflict)

		if _, err := uc.Reject(context.Background(), "w1", nil); !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Withdrawal{}, nil)

		if _, err := uc.Approve(context.Background(), "w1"); !errors.Is(err, ErrWithdrawalNotFound) {
			t.Fatalf("expected ErrWithdrawalNotFound, got %v", err)
		}
	})
}

func TestWithdrawalUseCase_Balance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
	commissions := mock_interfaces.NewMockICommissionRepository(ctrl)
	uc := NewWithdrawalUseCase(repo, commissions)

	commissions.EXPECT().ListByProfessionalID(gomock.Any(), "pro-1").Return([]entities.CommissionRecord{
		commissionFixture("ord-1", "700", "70", "630"),
		commissionFixture("ord-2", "300", "30", "270"),
	}, nil)
	repo.EXPECT().ListByProfessionalID(gomock.Any(), "pro-1").Return([]entities.Withdrawal{
		withdrawalFixture("w1", entities.WithdrawalStatusCompleted, "500"),
		withdrawalFixture("w2", entities.WithdrawalStatusApproved, "100"),
		withdrawalFixture("w3", entities.WithdrawalStatusRejected, "250"),
	}, nil)

	b, err := uc.Balance(context.Background(), "pro-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.TotalEarnings.Equal(dec("900")) || !b.Reserved.Equal(dec("600")) || !b.Available.Equal(dec("300")) {
		t.Fatalf("unexpected balance: %+v", b)
	}
}
