// Package money centralizes decimal arithmetic for monetary amounts.
// Amounts travel through the API as strings with two decimal places,
// matching what the frontend renders on bills and dashboards.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Zero is the zero amount.
var Zero = decimal.Zero

// Parse converts an API string into a decimal amount.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// Round2 rounds to two decimal places, the resolution of every stored amount.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentOf returns base * percent / 100 rounded to two decimal places.
func PercentOf(base, percent decimal.Decimal) decimal.Decimal {
	return Round2(base.Mul(percent).Div(decimal.NewFromInt(100)))
}

// ClampNonNegative floors an amount at zero. Used for balances and
// discounted prices that must never go negative.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// String renders an amount with two decimal places for API payloads.
func String(d decimal.Decimal) string {
	return d.StringFixed(2)
}
