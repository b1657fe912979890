package service

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Amounts are NUMERIC(12,2); any exponent outside this window cannot be one,
// and rescaling such a value allocates proportionally to the exponent.
const maxAmountExponent = 12

var (
	errAmountScale     = errors.New("amount is out of range")
	errAmountPositive  = errors.New("amount must be greater than 0")
	errAmountPrecision = errors.New("amount has more than 2 decimal places")
)

// checkAmount accepts positive amounts with at most two decimal places.
// The exponent is bounded before any rounding or comparison touches the value.
func checkAmount(amt decimal.Decimal) error {
	if exp := amt.Exponent(); exp < -maxAmountExponent || exp > maxAmountExponent {
		return errAmountScale
	}
	if !amt.IsPositive() {
		return errAmountPositive
	}
	if !amt.Equal(amt.Round(2)) {
		return errAmountPrecision
	}
	return nil
}
