package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "marketplace_billing/internal/adapter/http/dto/request"
	response "marketplace_billing/internal/adapter/http/dto/response"
	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase"
	"marketplace_billing/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for booking orders and their lifecycle.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] invalid create payload err=%v", err)
		respondError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[order][handler] create failed err=%v", err)
		respondError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders lists the orders of one party, selected by the professional_id
// or customer_id query parameter, optionally filtered by status.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	professionalID := strings.TrimSpace(c.Query("professional_id"))
	customerID := strings.TrimSpace(c.Query("customer_id"))
	statuses := request.ParseStatuses(c.Query("status"))

	var (
		orders []entities.Order
		err    error
	)
	switch {
	case professionalID != "" && customerID == "":
		orders, err = h.usecase.ListByProfessional(c.Request.Context(), professionalID, statuses...)
	case customerID != "" && professionalID == "":
		orders, err = h.usecase.ListByCustomer(c.Request.Context(), customerID, statuses...)
	default:
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Exactly one of professional_id or customer_id is required", http.StatusBadRequest))
		return
	}
	if err != nil {
		log.Printf("[order][handler] list failed professional_id=%s customer_id=%s err=%v", professionalID, customerID, err)
		respondError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// Transition applies the event named in the body.
func (h *OrderHandler) Transition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	h.transition(c, payload.ResolveEvent(), payload)
}

func (h *OrderHandler) Accept(c *gin.Context)   { h.eventRoute(c, entities.OrderEventAccept) }
func (h *OrderHandler) Reject(c *gin.Context)   { h.eventRoute(c, entities.OrderEventReject) }
func (h *OrderHandler) Inspect(c *gin.Context)  { h.eventRoute(c, entities.OrderEventInspect) }
func (h *OrderHandler) Cancel(c *gin.Context)   { h.eventRoute(c, entities.OrderEventCancel) }
func (h *OrderHandler) Complete(c *gin.Context) { h.eventRoute(c, entities.OrderEventComplete) }

// eventRoute serves the per-event routes, where the body is optional.
func (h *OrderHandler) eventRoute(c *gin.Context, event entities.OrderEvent) {
	var payload request.TransitionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}
	h.transition(c, event, payload)
}

func (h *OrderHandler) transition(c *gin.Context, event entities.OrderEvent, payload request.TransitionRequest) {
	orderID := c.Param("id")
	log.Printf("[order][handler] transition start order_id=%s event=%s", orderID, event)

	order, err := h.usecase.RequestTransition(c.Request.Context(), orderID, event, payload.ToUseCase())
	if err != nil {
		log.Printf("[order][handler] transition failed order_id=%s event=%s err=%v", orderID, event, err)
		respondError(c, mapOrderError(err))
		return
	}
	log.Printf("[order][handler] transition success order_id=%s status=%s", orderID, order.Status)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidProfessionalID),
		errors.Is(err, usecase.ErrInvalidOrderPrice),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidOrderEvent),
		errors.Is(err, usecase.ErrInvalidStatusFilter):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
