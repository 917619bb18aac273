package safe

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned when a division has a zero denominator.
var ErrDivisionByZero = errors.New("division by zero")

// percentageMultiplier converts a ratio into a percentage.
const percentageMultiplier = 100

var hundredDecimal = decimal.NewFromInt(percentageMultiplier)

// Divide performs decimal division. A zero denominator yields
// ErrDivisionByZero instead of the panic decimal.Div would raise.
//
// Example:
//
//	ratio, err := safe.Divide(used, quota)
//	if err != nil {
//	    return fmt.Errorf("calculate usage ratio: %w", err)
//	}
func Divide(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.Div(denominator), nil
}

// DivideOrZero divides like Divide but collapses the zero-denominator case to
// zero. Use it where an empty total should simply yield an empty result.
func DivideOrZero(numerator, denominator decimal.Decimal) decimal.Decimal {
	result, err := Divide(numerator, denominator)
	if err != nil {
		return decimal.Zero
	}

	return result
}

// DivideRound divides and rounds the quotient to places decimal places. A
// zero denominator yields ErrDivisionByZero.
func DivideRound(numerator, denominator decimal.Decimal, places int32) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.DivRound(denominator, places), nil
}

// Percentage calculates (numerator / denominator) * 100. A zero denominator
// yields ErrDivisionByZero.
func Percentage(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	ratio, err := Divide(numerator, denominator)
	if err != nil {
		return decimal.Zero, err
	}

	return ratio.Mul(hundredDecimal), nil
}

// PercentageOrZero calculates (numerator / denominator) * 100, collapsing the
// zero-denominator case to zero.
func PercentageOrZero(numerator, denominator decimal.Decimal) decimal.Decimal {
	return DivideOrZero(numerator, denominator).Mul(hundredDecimal)
}
