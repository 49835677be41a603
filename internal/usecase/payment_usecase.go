package usecase

import (
	"context"
	"errors"
	"fmt"
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
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentAmount           = errors.New("invalid payment amount")
	ErrInvalidPaymentMethod           = errors.New("invalid payment method")
	ErrInvalidRecordedBy              = errors.New("invalid recorded_by")
	ErrPaymentNotAllowed              = errors.New("order does not accept payments in its current status")
	ErrPaymentExceedsRemaining        = errors.New("payment exceeds remaining amount")
	ErrPaymentNotPending              = errors.New("payment is not pending")
	ErrPaymentDeclined                = errors.New("payment declined by provider")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// RecordPaymentInput is a payment made by one of the parties of an order.
type RecordPaymentInput struct {
	Amount     decimal.Decimal
	Method     entities.PaymentMethod
	RecordedBy entities.PartyRole
	PayerEmail string
}

// IPaymentUseCase manages the payment ledger of an order.
//
// Requested behavior:
//   - Cash is recorded as completed right away.
//   - E-wallet and bank transfer are charged through the gateway first.
//   - Completed entries raise the order's paid amount in the same write.

type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, orderID string, in RecordPaymentInput) (entities.Payment, error)
	ConfirmPayment(ctx context.Context, paymentID string) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
	Summary(ctx context.Context, orderID string) (billing.PaymentSummary, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, orderID string, in RecordPaymentInput) (entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[payment][usecase] record start order_id=%q method=%s amount=%s", orderID, in.Method, in.Amount.String())
	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}
	if !in.Amount.IsPositive() {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	if !in.Method.Valid() {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}
	if !in.RecordedBy.Valid() {
		return entities.Payment{}, ErrInvalidRecordedBy
	}
	if in.Method.ThroughGateway() && u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	o, err := loadOrder(ctx, u.orderRepo, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	summary, err := u.payable(ctx, o)
	if err != nil {
		return entities.Payment{}, err
	}
	if in.Amount.GreaterThan(summary.RemainingAmount) {
		log.Printf("[payment][usecase] amount exceeds remaining order_id=%s remaining=%s", orderID, summary.RemainingAmount.StringFixed(2))
		return entities.Payment{}, ErrPaymentExceedsRemaining
	}

	p := entities.Payment{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		Amount:     in.Amount,
		Method:     in.Method,
		Status:     entities.PaymentStatusCompleted,
		RecordedBy: in.RecordedBy,
		Timestamp:  time.Now().UTC(),
	}

	if in.Method.ThroughGateway() {
		log.Printf("[payment][usecase] calling payment gateway order_id=%s payment_id=%s", orderID, p.ID)
		providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, interfaces.PaymentCharge{
			Reference:   p.ID,
			OrderID:     orderID,
			Amount:      in.Amount,
			MethodID:    string(in.Method),
			PayerEmail:  strings.TrimSpace(in.PayerEmail),
			Description: fmt.Sprintf("Order %s", orderID),
		})
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
			return entities.Payment{}, mapGatewayError(err)
		}
		log.Printf("[payment][usecase] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerID, providerStatus)

		status, ok := ledgerStatusFromProvider(providerStatus)
		if !ok {
			return entities.Payment{}, ErrPaymentDeclined
		}
		p.Status = status
		p.ProviderPaymentID = providerID
		p.ProviderPayloadRaw = providerResp
	}

	if p.Status == entities.PaymentStatusPending {
		created, err := u.repo.Create(ctx, p)
		if err != nil {
			log.Printf("[payment][usecase] payment repository create failed order_id=%s payment_id=%s err=%v", orderID, p.ID, err)
			return entities.Payment{}, backendError("create payment", err)
		}
		log.Printf("[payment][usecase] record pending order_id=%s payment_id=%s", orderID, created.ID)
		return created, nil
	}

	if err := u.apply(ctx, o, summary, p); err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] record success order_id=%s payment_id=%s status=%s", orderID, p.ID, p.Status)
	return p, nil
}

// ConfirmPayment completes a pending ledger entry once the provider settles it.
func (u *PaymentUseCase) ConfirmPayment(ctx context.Context, paymentID string) (entities.Payment, error) {
	p, err := u.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status != entities.PaymentStatusPending {
		return entities.Payment{}, ErrPaymentNotPending
	}

	o, err := loadOrder(ctx, u.orderRepo, p.OrderID)
	if err != nil {
		return entities.Payment{}, err
	}
	summary, err := u.payable(ctx, o)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Amount.GreaterThan(summary.RemainingAmount) {
		return entities.Payment{}, ErrPaymentExceedsRemaining
	}

	p.Status = entities.PaymentStatusCompleted
	if err := u.apply(ctx, o, summary, p); err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] confirm success order_id=%s payment_id=%s", p.OrderID, p.ID)
	return p, nil
}

// payable checks that o accepts payments and returns its current summary.
func (u *PaymentUseCase) payable(ctx context.Context, o entities.Order) (billing.PaymentSummary, error) {
	if o.Status != entities.OrderStatusAccepted && o.Status != entities.OrderStatusInspected {
		log.Printf("[payment][usecase] order not payable order_id=%s status=%s", o.ID, o.Status)
		return billing.PaymentSummary{}, ErrPaymentNotAllowed
	}
	ledger, err := u.repo.ListByOrderID(ctx, o.ID)
	if err != nil {
		return billing.PaymentSummary{}, backendError("list payments", err)
	}
	return billing.Summarize(o.TotalPrice, ledger), nil
}

// apply stores a completed entry and the order's new paid amount together.
func (u *PaymentUseCase) apply(ctx context.Context, o entities.Order, summary billing.PaymentSummary, p entities.Payment) error {
	next := o
	next.TotalPaidAmount = summary.TotalPaidAmount.Add(p.Amount)
	next.UpdatedAt = time.Now().UTC()
	next.Version = o.Version + 1

	_, err := u.orderRepo.ApplyPayment(ctx, next, o.Version, p)
	if err = persistError("apply payment", err); err != nil {
		log.Printf("[payment][usecase] apply failed order_id=%s payment_id=%s err=%v", o.ID, p.ID, err)
		return err
	}
	return nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, backendError("load payment", err)
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	ledger, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, backendError("list payments", err)
	}
	return ledger, nil
}

func (u *PaymentUseCase) Summary(ctx context.Context, orderID string) (billing.PaymentSummary, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return billing.PaymentSummary{}, ErrInvalidOrderID
	}
	o, err := loadOrder(ctx, u.orderRepo, orderID)
	if err != nil {
		return billing.PaymentSummary{}, err
	}
	ledger, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return billing.PaymentSummary{}, backendError("list payments", err)
	}
	return billing.Summarize(o.TotalPrice, ledger), nil
}

func ledgerStatusFromProvider(providerStatus string) (entities.PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited":
		return entities.PaymentStatusCompleted, true
	case "pending", "in_process", "authorized", "in_mediation":
		return entities.PaymentStatusPending, true
	default:
		return "", false
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return backendError("payment gateway", err)
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
