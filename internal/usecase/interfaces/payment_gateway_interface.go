package interfaces

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentCharge is what the billing service asks the provider to collect.
type PaymentCharge struct {
	Reference   string
	OrderID     string
	Amount      decimal.Decimal
	MethodID    string
	PayerEmail  string
	Description string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The billing-service uses it to charge e-wallet and bank transfer payments and
// keeps the provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, charge PaymentCharge) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
