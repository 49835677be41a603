package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	response "marketplace_billing/internal/adapter/http/dto/response"
	"marketplace_billing/internal/usecase"
	"marketplace_billing/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboards and the earnings export.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) ProfessionalDashboard(c *gin.Context) {
	d, err := h.usecase.ProfessionalDashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfessionalDashboard(d))
}

func (h *ReportHandler) CustomerDashboard(c *gin.Context) {
	d, err := h.usecase.CustomerDashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerDashboard(d))
}

// ExportEarnings renders the earnings table as plain text. The table is built
// in memory so a failed export never leaves a partial body.
func (h *ReportHandler) ExportEarnings(c *gin.Context) {
	professionalID := c.Param("id")
	var buf bytes.Buffer
	if err := h.usecase.ExportEarnings(c.Request.Context(), professionalID, &buf); err != nil {
		log.Printf("[report][handler] export failed professional_id=%s err=%v", professionalID, err)
		respondError(c, mapReportError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "earnings-"+professionalID+".txt"))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfessionalID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrExporterNotConfigured):
		return pkg.NewDomainErrorSimple("EXPORT_UNAVAILABLE", "Earnings export not configured", http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}
