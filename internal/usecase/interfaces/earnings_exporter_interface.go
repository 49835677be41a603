package interfaces

import (
	"io"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/domain/entities"
)

// IEarningsExporter renders a professional's commission records and totals.
type IEarningsExporter interface {
	ExportEarnings(w io.Writer, professionalID string, records []entities.CommissionRecord, report billing.EarningsReport) error
}
