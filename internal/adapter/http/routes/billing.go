package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathOrders        = "/orders"
	PathPayments      = "/payments"
	PathProfessionals = "/professionals"
	PathCustomers     = "/customers"
	PathWithdrawals   = "/withdrawals"
	PathSettings      = "/settings"
)

func addBillingRoutes(rg *gin.RouterGroup, h Handlers) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.Order.CreateOrder)
		orders.GET("", h.Order.ListOrders)
		orders.GET("/:id", h.Order.GetOrder)
		orders.POST("/:id/transitions", h.Order.Transition)
		orders.PATCH("/:id/accept", h.Order.Accept)
		orders.PATCH("/:id/reject", h.Order.Reject)
		orders.PATCH("/:id/inspect", h.Order.Inspect)
		orders.PATCH("/:id/cancel", h.Order.Cancel)
		orders.PATCH("/:id/complete", h.Order.Complete)

		orders.GET("/:id/summary", h.Payment.Summary)
		orders.POST("/:id/payments", h.Payment.RecordPayment)
		orders.GET("/:id/payments", h.Payment.ListPayments)
		orders.GET("/:id/commission", h.Earnings.GetCommission)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", h.Payment.GetPayment)
		payments.PATCH("/:id/confirm", h.Payment.ConfirmPayment)
	}

	professionals := rg.Group(PathProfessionals)
	{
		professionals.GET("/:id/earnings", h.Earnings.GetEarnings)
		professionals.GET("/:id/earnings/export", h.Report.ExportEarnings)
		professionals.GET("/:id/balance", h.Withdrawal.Balance)
		professionals.GET("/:id/dashboard", h.Report.ProfessionalDashboard)
		professionals.GET("/:id/withdrawals", h.Withdrawal.ListByProfessional)
	}

	rg.GET(PathCustomers+"/:id/dashboard", h.Report.CustomerDashboard)

	withdrawals := rg.Group(PathWithdrawals)
	{
		withdrawals.POST("", h.Withdrawal.RequestWithdrawal)
		withdrawals.GET("/:id", h.Withdrawal.GetWithdrawal)
		withdrawals.PATCH("/:id/approve", h.Withdrawal.Approve)
		withdrawals.PATCH("/:id/reject", h.Withdrawal.Reject)
		withdrawals.PATCH("/:id/settle", h.Withdrawal.Settle)
		withdrawals.PATCH("/:id/fail", h.Withdrawal.Fail)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("/commission-rate", h.Earnings.GetCommissionRate)
		settings.PUT("/commission-rate", h.Earnings.UpdateCommissionRate)
	}
}
