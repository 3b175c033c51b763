// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/Vilduis/SimulaCredit-sub000/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// WithinRelativeTolerance checks if two values agree within a relative
// tolerance; falls back to absolute comparison when the reference is zero.
func WithinRelativeTolerance(val, reference, tolerance float64) bool {
	if reference == 0 {
		return math.Abs(val) <= tolerance
	}
	return math.Abs(val-reference)/math.Abs(reference) <= tolerance
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
