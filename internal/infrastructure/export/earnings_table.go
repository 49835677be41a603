package export

import (
	"fmt"
	"io"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase/interfaces"

	"github.com/olekukonko/tablewriter"
)

// EarningsTable renders commission records as a plain-text table with a
// totals footer.
type EarningsTable struct {
	Currency billing.CurrencyFormat
}

var _ interfaces.IEarningsExporter = (*EarningsTable)(nil)

func NewEarningsTable(currency billing.CurrencyFormat) *EarningsTable {
	return &EarningsTable{Currency: currency}
}

func (e *EarningsTable) ExportEarnings(w io.Writer, professionalID string, records []entities.CommissionRecord, report billing.EarningsReport) error {
	if _, err := fmt.Fprintf(w, "Earnings for professional %s\n", professionalID); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Order", "Completed", "Order Total", "Rate", "Commission", "Net")
	for _, r := range records {
		err := table.Append(
			r.OrderID,
			r.CompletedAt.UTC().Format("2006-01-02"),
			e.Currency.Format(r.OrderTotal),
			r.RateApplied.StringFixed(2)+"%",
			e.Currency.Format(r.CommissionAmount),
			e.Currency.Format(r.NetEarnings),
		)
		if err != nil {
			return err
		}
	}
	table.Footer(
		fmt.Sprintf("%d orders", report.TotalOrders),
		"",
		e.Currency.Format(report.TotalOrderValue),
		report.AverageRate.StringFixed(2)+"%",
		e.Currency.Format(report.TotalCommission),
		e.Currency.Format(report.TotalEarnings),
	)
	return table.Render()
}
