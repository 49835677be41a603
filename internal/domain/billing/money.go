// Package billing holds the pure rules of the booking marketplace: the order
// and withdrawal state machines, payment summaries and commission math.
//
// Nothing here performs I/O or keeps state; every function is a transform
// over a snapshot handed in by the caller, so results for the same snapshot
// are always the same and can be computed concurrently.
package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero to cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percentage returns part/whole*100 rounded to 2 places, or zero when whole <= 0.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.Sign() <= 0 {
		return decimal.Zero
	}
	return Round2(part.Div(whole).Mul(hundred))
}

// CurrencyFormat describes how amounts are rendered for display.
type CurrencyFormat struct {
	Symbol    string
	Thousands string
	Decimal   string
	Places    int32
}

var DefaultCurrencyFormat = CurrencyFormat{Symbol: "$", Thousands: ",", Decimal: ".", Places: 2}

// FormatCurrency renders d with DefaultCurrencyFormat.
func FormatCurrency(d decimal.Decimal) string {
	return DefaultCurrencyFormat.Format(d)
}

func (f CurrencyFormat) Format(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(f.Places)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(f.Places).Sign() < 0 {
		b.WriteString("-")
	}
	b.WriteString(f.Symbol)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.Thousands)
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteString(f.Decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}
