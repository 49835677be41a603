package response

import "github.com/shopspring/decimal"

// amount renders money for JSON clients. Values are rounded to cents first so
// the float carries no more precision than the ledger.
func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
