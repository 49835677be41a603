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

// EarningsHandler serves commission records, professional earnings and the
// platform commission rate.
type EarningsHandler struct {
	usecase usecase.IEarningsUseCase
}

func NewEarningsHandler(uc usecase.IEarningsUseCase) *EarningsHandler {
	return &EarningsHandler{usecase: uc}
}

func (h *EarningsHandler) GetCommission(c *gin.Context) {
	rec, err := h.usecase.GetByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEarningsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCommission(rec))
}

// GetEarnings returns the earnings report of a professional along with the
// records it was computed from.
func (h *EarningsHandler) GetEarnings(c *gin.Context) {
	professionalID := c.Param("id")
	report, err := h.usecase.EarningsReport(c.Request.Context(), professionalID)
	if err != nil {
		log.Printf("[commission][handler] earnings report failed professional_id=%s err=%v", professionalID, err)
		respondError(c, mapEarningsError(err))
		return
	}
	records, err := h.usecase.ListByProfessional(c.Request.Context(), professionalID)
	if err != nil {
		respondError(c, mapEarningsError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEarningsReport(professionalID, report).WithRecords(records))
}

func (h *EarningsHandler) GetCommissionRate(c *gin.Context) {
	rate, err := h.usecase.CurrentRate(c.Request.Context())
	if err != nil {
		respondError(c, mapEarningsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRate(rate))
}

func (h *EarningsHandler) UpdateCommissionRate(c *gin.Context) {
	var payload request.CommissionRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	rate, err := h.usecase.UpdateRate(c.Request.Context(), *payload.Rate)
	if err != nil {
		log.Printf("[commission][handler] rate update failed err=%v", err)
		respondError(c, mapEarningsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRate(rate))
}

func mapEarningsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidProfessionalID),
		errors.Is(err, usecase.ErrInvalidRate):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrCommissionNotFound):
		return pkg.NewDomainErrorSimple("COMMISSION_NOT_FOUND", "Commission not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
