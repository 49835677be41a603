package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"marketplace_billing/internal/adapter/http/handlers/mocks"
	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/orders", NewOrderHandler(uc).CreateOrder)

		w := performRequest(r, http.MethodPost, "/v1/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/orders", NewOrderHandler(uc).CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrInvalidOrderPrice)

		w := performRequest(r, http.MethodPost, "/v1/orders", `{"customer_id":"cus-1","professional_id":"pro-1","total_price":0,"quantity":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/orders", NewOrderHandler(uc).CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateOrderInput) (entities.Order, error) {
				if !in.TotalPrice.Equal(decimal.RequireFromString("250.50")) || in.CustomerID != "cus-1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Order{ID: "ord-1", Status: entities.OrderStatusPending, TotalPrice: in.TotalPrice}, nil
			},
		)

		w := performRequest(r, http.MethodPost, "/v1/orders", `{"customer_id":"cus-1","professional_id":"pro-1","total_price":250.50,"quantity":1}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "ord-1" || body["total_price"] != 250.5 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("requires exactly one party", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/orders", NewOrderHandler(uc).ListOrders)

		for _, path := range []string{"/v1/orders", "/v1/orders?professional_id=p&customer_id=c"} {
			if w := performRequest(r, http.MethodGet, path, ""); w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", path, w.Code)
			}
		}
	})

	t.Run("professional with status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/orders", NewOrderHandler(uc).ListOrders)

		uc.EXPECT().ListByProfessional(gomock.Any(), "pro-1", entities.OrderStatusPending, entities.OrderStatusAccepted).
			Return([]entities.Order{{ID: "ord-1", Status: entities.OrderStatusPending}}, nil)

		w := performRequest(r, http.MethodGet, "/v1/orders?professional_id=pro-1&status=pending,accepted", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"ord-1"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("customer backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/orders", NewOrderHandler(uc).ListOrders)

		uc.EXPECT().ListByCustomer(gomock.Any(), "cus-1").Return(nil, &usecase.BackendError{Op: "list orders", Err: errors.New("timeout")})

		w := performRequest(r, http.MethodGet, "/v1/orders?customer_id=cus-1", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Transitions(t *testing.T) {
	t.Run("generic route reads the event from the body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/orders/:id/transitions", NewOrderHandler(uc).Transition)

		uc.EXPECT().RequestTransition(gomock.Any(), "ord-1", entities.OrderEventInspect, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ entities.OrderEvent, req usecase.TransitionRequest) (entities.Order, error) {
				if req.NewPrice == nil || !req.NewPrice.Equal(decimal.NewFromInt(1500)) || req.Notes != "extra work" {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.Order{ID: "ord-1", Status: entities.OrderStatusInspected, TotalPrice: *req.NewPrice}, nil
			},
		)

		w := performRequest(r, http.MethodPost, "/v1/orders/ord-1/transitions", `{"event":"inspect","new_price":1500,"notes":"extra work"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "inspected" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("event route without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.PATCH("/v1/orders/:id/accept", NewOrderHandler(uc).Accept)

		uc.EXPECT().RequestTransition(gomock.Any(), "ord-1", entities.OrderEventAccept, usecase.TransitionRequest{}).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusAccepted, ContactRevealed: true}, nil)

		w := performRequest(r, http.MethodPatch, "/v1/orders/ord-1/accept", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["contact_revealed"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid transition returns the reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.PATCH("/v1/orders/:id/complete", NewOrderHandler(uc).Complete)

		transitionErr := &billing.InvalidTransitionError{Entity: "order", From: "accepted", Event: "complete", Cause: billing.ErrOrderNotPaid}
		uc.EXPECT().RequestTransition(gomock.Any(), "ord-1", entities.OrderEventComplete, gomock.Any()).Return(entities.Order{}, transitionErr)

		w := performRequest(r, http.MethodPatch, "/v1/orders/ord-1/complete", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "INVALID_TRANSITION" || body["details"] != transitionErr.Error() {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("concurrent modification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.PATCH("/v1/orders/:id/cancel", NewOrderHandler(uc).Cancel)

		uc.EXPECT().RequestTransition(gomock.Any(), "ord-1", entities.OrderEventCancel, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ entities.OrderEvent, req usecase.TransitionRequest) (entities.Order, error) {
				if req.Reason == nil || *req.Reason != "changed plans" {
					t.Fatalf("expected reason, got %+v", req)
				}
				return entities.Order{}, usecase.ErrConcurrentModification
			},
		)

		w := performRequest(r, http.MethodPatch, "/v1/orders/ord-1/cancel", `{"reason":"changed plans"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "CONCURRENT_MODIFICATION" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/orders/:id", NewOrderHandler(uc).GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		if w := performRequest(r, http.MethodGet, "/v1/orders/missing", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
