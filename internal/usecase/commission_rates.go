package usecase

import (
	"context"
	"log"

	"marketplace_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// commissionRates resolves the platform rate in effect right now: the stored
// setting when there is one, the configured default otherwise.
type commissionRates struct {
	repo     interfaces.ISettingsRepository
	fallback decimal.Decimal
}

func (r commissionRates) current(ctx context.Context) (decimal.Decimal, error) {
	if r.repo == nil {
		return r.fallback, nil
	}
	rate, found, err := r.repo.GetCommissionRate(ctx)
	if err != nil {
		log.Printf("[commission][rates] failed loading rate err=%v", err)
		return decimal.Zero, backendError("load commission rate", err)
	}
	if !found {
		return r.fallback, nil
	}
	return rate, nil
}
