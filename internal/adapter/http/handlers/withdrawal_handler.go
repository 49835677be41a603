package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "marketplace_billing/internal/adapter/http/dto/request"
	response "marketplace_billing/internal/adapter/http/dto/response"
	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase"
	"marketplace_billing/pkg"

	"github.com/gin-gonic/gin"
)

// WithdrawalHandler handles payout requests and their administrative review.
type WithdrawalHandler struct {
	usecase usecase.IWithdrawalUseCase
}

func NewWithdrawalHandler(uc usecase.IWithdrawalUseCase) *WithdrawalHandler {
	return &WithdrawalHandler{usecase: uc}
}

func (h *WithdrawalHandler) RequestWithdrawal(c *gin.Context) {
	var payload request.WithdrawalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[withdrawal][handler] invalid payload err=%v", err)
		respondError(c, errInvalidPayload)
		return
	}

	w, err := h.usecase.RequestWithdrawal(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[withdrawal][handler] request failed professional_id=%s err=%v", payload.ProfessionalID, err)
		respondError(c, mapWithdrawalError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromWithdrawal(w))
}

func (h *WithdrawalHandler) GetWithdrawal(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapWithdrawalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWithdrawal(w))
}

func (h *WithdrawalHandler) ListByProfessional(c *gin.Context) {
	list, err := h.usecase.ListByProfessional(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapWithdrawalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWithdrawals(list))
}

func (h *WithdrawalHandler) Balance(c *gin.Context) {
	professionalID := c.Param("id")
	b, err := h.usecase.Balance(c.Request.Context(), professionalID)
	if err != nil {
		respondError(c, mapWithdrawalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBalance(professionalID, b))
}

func (h *WithdrawalHandler) Approve(c *gin.Context) {
	h.review(c, func(ctx context.Context, id string, _ request.WithdrawalActionRequest) (entities.Withdrawal, error) {
		return h.usecase.Approve(ctx, id)
	})
}

func (h *WithdrawalHandler) Reject(c *gin.Context) {
	h.review(c, func(ctx context.Context, id string, p request.WithdrawalActionRequest) (entities.Withdrawal, error) {
		return h.usecase.Reject(ctx, id, p.Notes)
	})
}

func (h *WithdrawalHandler) Settle(c *gin.Context) {
	h.review(c, func(ctx context.Context, id string, p request.WithdrawalActionRequest) (entities.Withdrawal, error) {
		return h.usecase.Settle(ctx, id, p.ReferenceID, p.Notes)
	})
}

func (h *WithdrawalHandler) Fail(c *gin.Context) {
	h.review(c, func(ctx context.Context, id string, p request.WithdrawalActionRequest) (entities.Withdrawal, error) {
		return h.usecase.Fail(ctx, id, p.Notes)
	})
}

func (h *WithdrawalHandler) review(
	c *gin.Context,
	action func(ctx context.Context, id string, payload request.WithdrawalActionRequest) (entities.Withdrawal, error),
) {
	id := c.Param("id")
	var payload request.WithdrawalActionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}

	w, err := action(c.Request.Context(), id, payload)
	if err != nil {
		log.Printf("[withdrawal][handler] review failed withdrawal_id=%s err=%v", id, err)
		respondError(c, mapWithdrawalError(err))
		return
	}
	log.Printf("[withdrawal][handler] review success withdrawal_id=%s status=%s", id, w.Status)

	c.JSON(http.StatusOK, response.FromWithdrawal(w))
}

func mapWithdrawalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWithdrawalID),
		errors.Is(err, usecase.ErrInvalidProfessionalID),
		errors.Is(err, usecase.ErrInvalidWithdrawalValue),
		errors.Is(err, usecase.ErrInvalidPayoutMethod):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrWithdrawalNotFound):
		return pkg.NewDomainErrorSimple("WITHDRAWAL_NOT_FOUND", "Withdrawal not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
