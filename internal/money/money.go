// Package money holds the decimal helpers used for SGD amounts.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNonPositiveAmount is returned when an amount is zero or negative.
var ErrNonPositiveAmount = errors.New("amount must be positive")

// Cents rounds an amount to two decimal places.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Tenths rounds an amount to one decimal place.
func Tenths(d decimal.Decimal) decimal.Decimal {
	return d.Round(1)
}

// Positive rounds amount to cents and rejects anything not above zero.
//
// Example:
//
//	amount, err := money.Positive(req.Amount)
//	if err != nil {
//	    return fmt.Errorf("transfer: %w", err)
//	}
func Positive(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := Cents(amount)
	if !rounded.IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}
	return rounded, nil
}

// Convert multiplies amount by rate and rounds to cents.
func Convert(amount decimal.Decimal, rate float64) decimal.Decimal {
	return Cents(amount.Mul(decimal.NewFromFloat(rate)))
}

// Format renders an amount with a dollar sign and two decimals, e.g. "$12.50".
func Format(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FromUnits converts a whole currency amount to a decimal.
func FromUnits(units int) decimal.Decimal {
	return decimal.NewFromInt(int64(units))
}
