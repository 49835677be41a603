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
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidCustomerID     = errors.New("invalid customer_id")
	ErrInvalidProfessionalID = errors.New("invalid professional_id")
	ErrInvalidOrderPrice     = errors.New("invalid order price")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidOrderEvent     = errors.New("invalid order event")
	ErrInvalidStatusFilter   = errors.New("invalid status filter")
)

// CreateOrderInput is what a customer submits when booking.
type CreateOrderInput struct {
	CustomerID     string
	ProfessionalID string
	TotalPrice     decimal.Decimal
	Quantity       int
	PriceUnit      string
	QualityType    string
	ScheduledAt    time.Time
	OrderNotes     string
}

// TransitionRequest is the optional payload of a transition request.
type TransitionRequest struct {
	NewPrice *decimal.Decimal
	Notes    string
	Reason   *string
}

// IOrderUseCase exposes the order lifecycle.
//
// RequestTransition is the single entry point for state changes; it validates
// the change against the order state machine before anything is written.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByProfessional(ctx context.Context, professionalID string, statuses ...entities.OrderStatus) ([]entities.Order, error)
	ListByCustomer(ctx context.Context, customerID string, statuses ...entities.OrderStatus) ([]entities.Order, error)
	RequestTransition(ctx context.Context, orderID string, event entities.OrderEvent, req TransitionRequest) (entities.Order, error)
}

type OrderUseCase struct {
	repo        interfaces.IOrderRepository
	paymentRepo interfaces.IPaymentRepository
	rates       commissionRates
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, paymentRepo interfaces.IPaymentRepository, settings interfaces.ISettingsRepository, defaultRate decimal.Decimal) *OrderUseCase {
	return &OrderUseCase{
		repo:        repo,
		paymentRepo: paymentRepo,
		rates:       commissionRates{repo: settings, fallback: defaultRate},
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return entities.Order{}, ErrInvalidCustomerID
	}
	professionalID := strings.TrimSpace(in.ProfessionalID)
	if professionalID == "" {
		return entities.Order{}, ErrInvalidProfessionalID
	}
	if !in.TotalPrice.IsPositive() {
		return entities.Order{}, ErrInvalidOrderPrice
	}
	if in.Quantity <= 0 {
		return entities.Order{}, ErrInvalidQuantity
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		ProfessionalID:  professionalID,
		Status:          entities.OrderStatusPending,
		TotalPrice:      in.TotalPrice,
		TotalPaidAmount: decimal.Zero,
		Quantity:        in.Quantity,
		PriceUnit:       strings.TrimSpace(in.PriceUnit),
		QualityType:     strings.TrimSpace(in.QualityType),
		OrderDate:       now,
		ScheduledAt:     in.ScheduledAt.UTC(),
		OrderNotes:      in.OrderNotes,
		UpdatedAt:       now,
		Version:         1,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed customer_id=%s professional_id=%s err=%v", customerID, professionalID, err)
		return entities.Order{}, backendError("create order", err)
	}
	log.Printf("[order][usecase] created order_id=%s price=%s", created.ID, created.TotalPrice.StringFixed(2))
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	return loadOrder(ctx, u.repo, id)
}

func (u *OrderUseCase) ListByProfessional(ctx context.Context, professionalID string, statuses ...entities.OrderStatus) ([]entities.Order, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return nil, ErrInvalidProfessionalID
	}
	if err := validateStatuses(statuses); err != nil {
		return nil, err
	}
	orders, err := u.repo.ListByProfessionalID(ctx, professionalID)
	if err != nil {
		return nil, backendError("list orders", err)
	}
	return billing.FilterOrders(orders, statuses...), nil
}

func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID string, statuses ...entities.OrderStatus) ([]entities.Order, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	if err := validateStatuses(statuses); err != nil {
		return nil, err
	}
	orders, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, backendError("list orders", err)
	}
	return billing.FilterOrders(orders, statuses...), nil
}

func (u *OrderUseCase) RequestTransition(ctx context.Context, orderID string, event entities.OrderEvent, req TransitionRequest) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !event.Valid() {
		return entities.Order{}, ErrInvalidOrderEvent
	}
	log.Printf("[order][usecase] transition start order_id=%s event=%s", orderID, event)

	o, err := loadOrder(ctx, u.repo, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	// The paid amount on the record may lag behind the ledger; inspection and
	// completion are always judged on the ledger.
	if event == entities.OrderEventInspect || event == entities.OrderEventComplete {
		ledger, err := u.paymentRepo.ListByOrderID(ctx, orderID)
		if err != nil {
			log.Printf("[order][usecase] failed loading ledger order_id=%s err=%v", orderID, err)
			return entities.Order{}, backendError("list payments", err)
		}
		o.TotalPaidAmount = billing.PaidAmount(ledger)
	}

	next, err := billing.ApplyOrderEvent(o, event, billing.TransitionInput{
		NewPrice: req.NewPrice,
		Notes:    req.Notes,
		Reason:   req.Reason,
		At:       time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[order][usecase] transition rejected order_id=%s status=%s event=%s err=%v", orderID, o.Status, event, err)
		return entities.Order{}, err
	}
	next.Version = o.Version + 1

	var saved entities.Order
	if event == entities.OrderEventComplete {
		rate, err := u.rates.current(ctx)
		if err != nil {
			return entities.Order{}, err
		}
		rec, err := billing.NewCommissionRecord(next, rate)
		if err != nil {
			return entities.Order{}, err
		}
		saved, err = u.repo.Complete(ctx, next, o.Version, rec)
		if err = persistError("complete order", err); err != nil {
			log.Printf("[order][usecase] complete failed order_id=%s err=%v", orderID, err)
			return entities.Order{}, err
		}
		log.Printf("[order][usecase] commission recorded order_id=%s rate=%s commission=%s", orderID, rate.String(), rec.CommissionAmount.StringFixed(2))
	} else {
		saved, err = u.repo.Update(ctx, next, o.Version)
		if err = persistError("update order", err); err != nil {
			log.Printf("[order][usecase] update failed order_id=%s event=%s err=%v", orderID, event, err)
			return entities.Order{}, err
		}
	}

	log.Printf("[order][usecase] transition success order_id=%s from=%s to=%s", orderID, o.Status, saved.Status)
	return saved, nil
}

func loadOrder(ctx context.Context, repo interfaces.IOrderRepository, id string) (entities.Order, error) {
	o, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[order][usecase] failed loading order order_id=%s err=%v", id, err)
		return entities.Order{}, backendError("load order", err)
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func persistError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, interfaces.ErrVersionConflict), errors.Is(err, interfaces.ErrAlreadyExists):
		return ErrConcurrentModification
	default:
		return backendError(op, err)
	}
}

func validateStatuses(statuses []entities.OrderStatus) error {
	for _, s := range statuses {
		if !s.Valid() {
			return ErrInvalidStatusFilter
		}
	}
	return nil
}
