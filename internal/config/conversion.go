package config

import (
	"fmt"

	"github.com/Vilduis/SimulaCredit-sub000/pkg/bonus"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/mathutil"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/rates"
)

// Rate type values accepted in LoanConfiguration.RateType.
const (
	RateTypeEffective = "effective"
	RateTypeNominal   = "nominal"
)

// EffectiveAnnualRate resolves the loan's rate to an effective annual
// percent, converting from nominal under the configured capitalization
// frequency when needed.
func (loan *LoanConfiguration) EffectiveAnnualRate() (float64, error) {
	switch loan.RateType {
	case RateTypeEffective:
		return loan.InterestRateAnnual, nil
	case RateTypeNominal:
		if loan.CapitalizationFrequency == "" {
			return 0, fmt.Errorf("loan %q uses a nominal rate but has no capitalization frequency", loan.Name)
		}
		return rates.NominalToEffectiveAnnual(loan.InterestRateAnnual, rates.CompoundingFrequency(loan.CapitalizationFrequency))
	default:
		return 0, fmt.Errorf("loan %q has unrecognized rate type %q", loan.Name, loan.RateType)
	}
}

// MonthlyRate resolves the loan's rate to an effective monthly decimal.
func (loan *LoanConfiguration) MonthlyRate() (float64, error) {
	effectiveAnnual, err := loan.EffectiveAnnualRate()
	if err != nil {
		return 0, err
	}
	return rates.EffectiveAnnualToMonthly(effectiveAnnual), nil
}

// DiscountMonthlyRate converts the independent discount rate to a monthly
// decimal. It never depends on the loan rate.
func (loan *LoanConfiguration) DiscountMonthlyRate() float64 {
	return rates.EffectiveAnnualToMonthly(loan.DiscountRateAnnual)
}

// ResolveBonus evaluates the configured subsidy. A nil bonus yields zero.
func (loan *LoanConfiguration) ResolveBonus() (float64, bonus.Eligibility, error) {
	if loan.Bonus == nil {
		return 0, "", nil
	}
	switch loan.Bonus.Type {
	case "BBP":
		amount, eligibility := bonus.CalculateBBP(loan.PropertyPrice, loan.Bonus.Sustainable)
		return amount, eligibility, nil
	case "BFH":
		amount, err := bonus.CalculateBFH(bonus.Modality(loan.Bonus.Modality))
		if err != nil {
			return 0, "", fmt.Errorf("loan %q: %w", loan.Name, err)
		}
		return amount, bonus.Eligible, nil
	default:
		return 0, "", fmt.Errorf("loan %q has unrecognized bonus type %q", loan.Name, loan.Bonus.Type)
	}
}

// EffectivePrincipal is the financed amount after the down payment and the
// given subsidy, clamped to zero.
func (loan *LoanConfiguration) EffectivePrincipal(bonusAmount float64) float64 {
	downPayment := mathutil.ApplyPercentage(loan.PropertyPrice, loan.DownPaymentPercent)
	principal := loan.PropertyPrice - downPayment - bonusAmount
	if principal < 0 {
		principal = 0
	}
	return principal
}
