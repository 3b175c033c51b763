package config

import (
	"fmt"

	"github.com/Vilduis/SimulaCredit-sub000/pkg/constants"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/datetime"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/rates"
)

// MaxTermYears bounds mortgage terms; longer terms are a configuration error.
const MaxTermYears = 40

// Currency values accepted in LoanConfiguration.Currency.
var supportedCurrencies = map[string]bool{
	"PEN": true,
	"USD": true,
}

// Validate rejects configurations before any computation begins. A failure
// here means no schedule is ever partially built.
func (conf *Configuration) Validate() error {
	if len(conf.Simulations) == 0 {
		return fmt.Errorf("configuration declares no simulations")
	}
	for i := range conf.Simulations {
		if err := conf.Simulations[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks one loan's parameters against the engine's preconditions.
func (loan *LoanConfiguration) Validate() error {
	if loan.PropertyPrice <= 0 {
		return fmt.Errorf("loan %q must have a positive property price, got %.2f", loan.Name, loan.PropertyPrice)
	}
	if loan.DownPaymentPercent < 0 || loan.DownPaymentPercent > constants.PercentageMultiplier {
		return fmt.Errorf("loan %q down payment must be between 0 and 100 percent, got %.2f", loan.Name, loan.DownPaymentPercent)
	}
	if loan.TermYears <= 0 || loan.TermYears > MaxTermYears {
		return fmt.Errorf("loan %q term must be between 1 and %d years, got %d", loan.Name, MaxTermYears, loan.TermYears)
	}
	if !supportedCurrencies[loan.Currency] {
		return fmt.Errorf("loan %q has unsupported currency %q", loan.Name, loan.Currency)
	}
	if loan.InterestRateAnnual < 0 {
		return fmt.Errorf("loan %q interest rate must not be negative, got %.4f", loan.Name, loan.InterestRateAnnual)
	}
	if loan.RateType == RateTypeNominal {
		if loan.CapitalizationFrequency == "" {
			return fmt.Errorf("loan %q uses a nominal rate but has no capitalization frequency", loan.Name)
		}
		if _, err := rates.PeriodsPerYear(rates.CompoundingFrequency(loan.CapitalizationFrequency)); err != nil {
			return fmt.Errorf("loan %q: %w", loan.Name, err)
		}
	} else if loan.RateType != RateTypeEffective {
		return fmt.Errorf("loan %q has unrecognized rate type %q", loan.Name, loan.RateType)
	}
	if loan.Grace != nil {
		if loan.Grace.Kind != "total" && loan.Grace.Kind != "partial" {
			return fmt.Errorf("loan %q has unrecognized grace kind %q", loan.Name, loan.Grace.Kind)
		}
		if loan.Grace.Months <= 0 {
			return fmt.Errorf("loan %q grace period must cover at least one month, got %d", loan.Name, loan.Grace.Months)
		}
		if loan.Grace.Months >= loan.TermMonths() {
			return fmt.Errorf("loan %q grace period of %d months consumes the whole %d month term", loan.Name, loan.Grace.Months, loan.TermMonths())
		}
	}
	if loan.ExtraMonthlyCosts < 0 {
		return fmt.Errorf("loan %q extra monthly costs must not be negative, got %.2f", loan.Name, loan.ExtraMonthlyCosts)
	}
	if loan.DiscountRateAnnual < 0 {
		return fmt.Errorf("loan %q discount rate must not be negative, got %.4f", loan.Name, loan.DiscountRateAnnual)
	}
	if loan.StartDate != "" {
		if _, err := datetime.ParseStartDate(loan.StartDate); err != nil {
			return fmt.Errorf("loan %q has invalid start date %q: %w", loan.Name, loan.StartDate, err)
		}
	}
	return nil
}

// ValidateConfiguration surfaces soft issues that do not block computation.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	for i := range conf.Simulations {
		loan := &conf.Simulations[i]
		if loan.Grace != nil && loan.Grace.Months > constants.MonthsPerYear {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' has a grace period longer than a year (%d months)", loan.Name, loan.Grace.Months))
		}
		if loan.DiscountRateAnnual == 0 {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' has a zero discount rate; VAN will not discount future payments", loan.Name))
		}
		if loan.DownPaymentPercent == constants.PercentageMultiplier {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' is fully covered by the down payment; nothing is financed", loan.Name))
		}
	}
	return warnings
}
