package handlers

import (
	"errors"
	"log"
	"net/http"

	request "marketplace_billing/internal/adapter/http/dto/request"
	response "marketplace_billing/internal/adapter/http/dto/response"
	"marketplace_billing/internal/usecase"
	"marketplace_billing/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for an order's payment ledger.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	orderID := c.Param("id")
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
		respondError(c, errInvalidPayload)
		return
	}
	log.Printf("[payment][handler] record start order_id=%s method=%s", orderID, payload.Method)

	created, err := h.usecase.RecordPayment(c.Request.Context(), orderID, payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] record failed order_id=%s err=%v", orderID, err)
		respondError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] record success order_id=%s payment_id=%s status=%s", orderID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	paymentID := c.Param("id")
	p, err := h.usecase.ConfirmPayment(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] confirm failed payment_id=%s err=%v", paymentID, err)
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *PaymentHandler) Summary(c *gin.Context) {
	orderID := c.Param("id")
	summary, err := h.usecase.Summary(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSummary(orderID, summary))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidRecordedBy),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found by the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotAllowed):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_ALLOWED", "Order does not accept payments in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_PENDING", "Payment is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentExceedsRemaining):
		return pkg.NewDomainErrorSimple("PAYMENT_EXCEEDS_REMAINING", "Payment exceeds the remaining amount", http.StatusUnprocessableEntity)
	default:
		return mapCommonError(err)
	}
}
