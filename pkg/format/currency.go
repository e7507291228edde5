package format

import (
	"math"

	"github.com/shopspring/decimal"
)

// Placeholder is shown in place of a missing amount.
const Placeholder = "—"

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// Currency renders an amount in the compact dashboard style: $1.5M, $53K, $440.
// A nil amount renders as Placeholder.
func Currency(amount *float64) string {
	if amount == nil {
		return Placeholder
	}
	return CurrencyValue(*amount)
}

// CurrencyValue is Currency for an amount that is always present.
// The sign is kept by the numeric formatting, so -53113 renders as $-53K.
func CurrencyValue(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Placeholder
	}

	d := decimal.NewFromFloat(amount)
	abs := d.Abs()

	switch {
	case abs.GreaterThanOrEqual(million):
		return "$" + d.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return "$" + d.Div(thousand).StringFixed(0) + "K"
	default:
		return "$" + d.StringFixed(0)
	}
}
