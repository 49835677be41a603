package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	appconfig "marketplace_billing/internal/infrastructure/config"
	"marketplace_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrUnsupportedPaymentMethod = errors.New("payment method not supported by mercado pago")

// providerMethods maps ledger payment methods to Mercado Pago payment_method_id.
var providerMethods = map[string]string{
	"e_wallet":      "account_money",
	"bank_transfer": "pix",
}

type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

type MercadoPagoGateway struct {
	client   paymentCreator
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if cfg.AccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, charge interfaces.PaymentCharge) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	req, err := paymentRequest(charge)
	if err != nil {
		return "", "", nil, err
	}

	if g != nil && g.mockMode {
		return mockPayment(req)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start order_id=%s reference=%s amount=%s", charge.OrderID, charge.Reference, charge.Amount.StringFixed(2))

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func paymentRequest(charge interfaces.PaymentCharge) (payment.Request, error) {
	methodID, ok := providerMethods[charge.MethodID]
	if !ok {
		return payment.Request{}, fmt.Errorf("%w: %s", ErrUnsupportedPaymentMethod, charge.MethodID)
	}
	req := payment.Request{
		TransactionAmount: charge.Amount.Round(2).InexactFloat64(),
		PaymentMethodID:   methodID,
		Description:       charge.Description,
		ExternalReference: charge.Reference,
	}
	if charge.PayerEmail != "" {
		req.Payer = &payment.PayerRequest{Email: charge.PayerEmail}
	}
	return req, nil
}

// mockPayment approves every charge and echoes the request back, shaped like
// a provider response.
func mockPayment(req payment.Request) (string, string, json.RawMessage, error) {
	log.Printf("[payment][gateway] mock create start reference=%s", req.ExternalReference)

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"transaction_amount": req.TransactionAmount,
		"payment_method_id":  req.PaymentMethodID,
		"external_reference": req.ExternalReference,
		"description":        req.Description,
		"date_created":       now,
		"date_approved":      now,
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=approved", id)
	return id, "approved", b, nil
}
