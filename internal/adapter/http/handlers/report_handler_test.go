package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"marketplace_billing/internal/adapter/http/handlers/mocks"
	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestReportHandler_Dashboards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)
	r := newTestRouter()
	r.GET("/v1/professionals/:id/dashboard", h.ProfessionalDashboard)
	r.GET("/v1/customers/:id/dashboard", h.CustomerDashboard)

	uc.EXPECT().ProfessionalDashboard(gomock.Any(), "pro-1").Return(usecase.ProfessionalDashboard{
		ProfessionalID: "pro-1",
		Orders:         billing.ComputeOrderStats([]entities.Order{{Status: entities.OrderStatusCompleted}}),
	}, nil)
	uc.EXPECT().CustomerDashboard(gomock.Any(), "cus-x").Return(usecase.CustomerDashboard{}, usecase.ErrInvalidCustomerID)

	w := performRequest(r, http.MethodGet, "/v1/professionals/pro-1/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	orders := decodeBody(t, w)["orders"].(map[string]any)
	if orders["completion_rate"] != float64(100) {
		t.Fatalf("unexpected orders: %v", orders)
	}

	if w := performRequest(r, http.MethodGet, "/v1/customers/cus-x/dashboard", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestReportHandler_ExportEarnings(t *testing.T) {
	t.Run("plain text table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/professionals/:id/earnings/export", NewReportHandler(uc).ExportEarnings)

		uc.EXPECT().ExportEarnings(gomock.Any(), "pro-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, w io.Writer) error {
				_, err := io.WriteString(w, "EARNINGS pro-1\n")
				return err
			},
		)

		w := performRequest(r, http.MethodGet, "/v1/professionals/pro-1/earnings/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") || w.Body.String() != "EARNINGS pro-1\n" {
			t.Fatalf("unexpected response %q %q", w.Header().Get("Content-Type"), w.Body.String())
		}
	})

	t.Run("failure discards partial output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/professionals/:id/earnings/export", NewReportHandler(uc).ExportEarnings)

		uc.EXPECT().ExportEarnings(gomock.Any(), "pro-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, w io.Writer) error {
				_, _ = io.WriteString(w, "partial")
				return errors.New("render failed")
			},
		)

		w := performRequest(r, http.MethodGet, "/v1/professionals/pro-1/earnings/export", "")
		if w.Code != http.StatusInternalServerError || strings.Contains(w.Body.String(), "partial") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("exporter not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/professionals/:id/earnings/export", NewReportHandler(uc).ExportEarnings)

		uc.EXPECT().ExportEarnings(gomock.Any(), "pro-1", gomock.Any()).Return(usecase.ErrExporterNotConfigured)

		if w := performRequest(r, http.MethodGet, "/v1/professionals/pro-1/earnings/export", ""); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
