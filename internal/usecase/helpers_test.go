package usecase

import (
	"time"

	"marketplace_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func orderFixture(status entities.OrderStatus, price, paid string) entities.Order {
	return entities.Order{
		ID:              "ord-1",
		CustomerID:      "cus-1",
		ProfessionalID:  "pro-1",
		Status:          status,
		TotalPrice:      dec(price),
		TotalPaidAmount: dec(paid),
		Quantity:        1,
		OrderDate:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Version:         3,
	}
}

func completedPayment(id, amount string) entities.Payment {
	return entities.Payment{
		ID:      id,
		OrderID: "ord-1",
		Amount:  dec(amount),
		Method:  entities.PaymentMethodCash,
		Status:  entities.PaymentStatusCompleted,
	}
}
