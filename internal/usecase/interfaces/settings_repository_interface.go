package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ISettingsRepository stores platform settings. found is false when the
// setting was never written.

type ISettingsRepository interface {
	GetCommissionRate(ctx context.Context) (rate decimal.Decimal, found bool, err error)
	PutCommissionRate(ctx context.Context, rate decimal.Decimal, at time.Time) error
}
