// Package rates converts between nominal annual, effective annual, and
// effective monthly interest rates.
package rates

import (
	"fmt"
	"math"

	"github.com/Vilduis/SimulaCredit-sub000/pkg/constants"
)

// CompoundingFrequency enumerates how often a nominal rate capitalizes.
type CompoundingFrequency string

const (
	CompoundingMonthly    CompoundingFrequency = "monthly"
	CompoundingBimonthly  CompoundingFrequency = "bimonthly"
	CompoundingQuarterly  CompoundingFrequency = "quarterly"
	CompoundingSemiannual CompoundingFrequency = "semiannual"
	CompoundingAnnual     CompoundingFrequency = "annual"
)

// PeriodsPerYear returns the number of capitalization periods per year for
// the given frequency. Unrecognized frequencies are a configuration error,
// never silently defaulted.
func PeriodsPerYear(frequency CompoundingFrequency) (int, error) {
	switch frequency {
	case CompoundingMonthly:
		return 12, nil
	case CompoundingBimonthly:
		return 6, nil
	case CompoundingQuarterly:
		return 4, nil
	case CompoundingSemiannual:
		return 2, nil
	case CompoundingAnnual:
		return 1, nil
	default:
		return 0, fmt.Errorf("unrecognized compounding frequency %q", frequency)
	}
}

// NominalToEffectiveAnnual converts a nominal annual rate in percent into the
// equivalent effective annual rate in percent under the given compounding
// frequency: (1 + TNA/100/m)^m - 1.
func NominalToEffectiveAnnual(nominalAnnualPercent float64, frequency CompoundingFrequency) (float64, error) {
	m, err := PeriodsPerYear(frequency)
	if err != nil {
		return 0, err
	}
	periodic := nominalAnnualPercent / constants.PercentageMultiplier / float64(m)
	effective := math.Pow(1+periodic, float64(m)) - 1
	return effective * constants.PercentageMultiplier, nil
}

// EffectiveAnnualToMonthly converts an effective annual rate in percent into
// the equivalent effective monthly rate as a decimal: (1+TEA/100)^(1/12) - 1.
// Range validation is a caller concern.
func EffectiveAnnualToMonthly(effectiveAnnualPercent float64) float64 {
	return math.Pow(1+effectiveAnnualPercent/constants.PercentageMultiplier, 1.0/constants.MonthsPerYear) - 1
}

// AnnualizeMonthly converts an effective monthly decimal rate back into an
// effective annual decimal rate: (1+r)^12 - 1.
func AnnualizeMonthly(monthlyRate float64) float64 {
	return math.Pow(1+monthlyRate, constants.MonthsPerYear) - 1
}
