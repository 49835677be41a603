package response

import (
	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/usecase"
)

type OrderStatsResponse struct {
	TotalOrders      int            `json:"total_orders"`
	StatusCounts     map[string]int `json:"status_counts"`
	SettlementCounts map[string]int `json:"settlement_counts"`
	TotalValue       float64        `json:"total_value"`
	TotalPaid        float64        `json:"total_paid"`
	TotalRemaining   float64        `json:"total_remaining"`
	CompletionRate   float64        `json:"completion_rate"`
	CancellationRate float64        `json:"cancellation_rate"`
}

func FromOrderStats(s billing.OrderStats) OrderStatsResponse {
	resp := OrderStatsResponse{
		TotalOrders:      s.TotalOrders,
		StatusCounts:     make(map[string]int, len(s.StatusCounts)),
		SettlementCounts: make(map[string]int, len(s.SettlementCounts)),
		TotalValue:       amount(s.TotalValue),
		TotalPaid:        amount(s.TotalPaid),
		TotalRemaining:   amount(s.TotalRemaining),
		CompletionRate:   amount(s.CompletionRate),
		CancellationRate: amount(s.CancellationRate),
	}
	for k, v := range s.StatusCounts {
		resp.StatusCounts[string(k)] = v
	}
	for k, v := range s.SettlementCounts {
		resp.SettlementCounts[string(k)] = v
	}
	return resp
}

type WithdrawalStatsResponse struct {
	Count     int     `json:"count"`
	Pending   float64 `json:"pending"`
	Approved  float64 `json:"approved"`
	Completed float64 `json:"completed"`
	Rejected  float64 `json:"rejected"`
}

type ProfessionalDashboardResponse struct {
	ProfessionalID string                  `json:"professional_id"`
	Orders         OrderStatsResponse      `json:"orders"`
	Earnings       EarningsReportResponse  `json:"earnings"`
	Withdrawals    WithdrawalStatsResponse `json:"withdrawals"`
	Balance        BalanceResponse         `json:"balance"`
}

func FromProfessionalDashboard(d usecase.ProfessionalDashboard) ProfessionalDashboardResponse {
	return ProfessionalDashboardResponse{
		ProfessionalID: d.ProfessionalID,
		Orders:         FromOrderStats(d.Orders),
		Earnings:       FromEarningsReport("", d.Earnings),
		Withdrawals: WithdrawalStatsResponse{
			Count:     d.Withdrawals.Count,
			Pending:   amount(d.Withdrawals.Pending),
			Approved:  amount(d.Withdrawals.Approved),
			Completed: amount(d.Withdrawals.Completed),
			Rejected:  amount(d.Withdrawals.Rejected),
		},
		Balance: FromBalance("", d.Balance),
	}
}

type CustomerDashboardResponse struct {
	CustomerID string             `json:"customer_id"`
	Orders     OrderStatsResponse `json:"orders"`
}

func FromCustomerDashboard(d usecase.CustomerDashboard) CustomerDashboardResponse {
	return CustomerDashboardResponse{
		CustomerID: d.CustomerID,
		Orders:     FromOrderStats(d.Orders),
	}
}
