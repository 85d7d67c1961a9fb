package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayCurrency is the currency used for display strings. Amounts are
// never converted.
const DisplayCurrency = money.USD

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

func currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency
	return *money.New(0, DisplayCurrency).Currency()
}

// FormatCurrency renders amount in full, e.g. "$1,200.00" or "-$3,800.50".
func FormatCurrency(amount decimal.Decimal) string {
	cur := currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// FormatCompact renders amount as a short chart label, e.g. "$1.2M", "$12k", "$950".
func FormatCompact(amount decimal.Decimal) string {
	cur := currency()
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	abs := amount.Abs()

	switch {
	case abs.GreaterThanOrEqual(million):
		return sign + cur.Grapheme + abs.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return sign + cur.Grapheme + abs.Div(thousand).StringFixed(0) + "k"
	default:
		return sign + cur.Grapheme + abs.StringFixed(0)
	}
}
