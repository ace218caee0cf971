package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentOf returns part/whole*100, or zero when whole is not positive.
func PercentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// FormatUSD renders a USD amount with two decimal places. Rounding
// happens only here, at presentation time; accumulation stays exact.
func FormatUSD(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatPercent renders a percentage with two decimal places.
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2)
}
