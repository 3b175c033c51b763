// Package simulation defines the data structures related to a given mortgage
// simulation and includes functions for computing the simulations.
package simulation

import (
	"fmt"

	"github.com/Vilduis/SimulaCredit-sub000/internal/config"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/bonus"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/datetime"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/indicators"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/schedule"
	"go.uber.org/zap"
)

// Result holds all information related to a specific simulation.
type Result struct {
	Name                string                `json:"name"`
	Currency            string                `json:"currency"`
	EffectiveAnnualRate float64               `json:"effectiveAnnualRate"`
	MonthlyRate         float64               `json:"monthlyRate"`
	BonusAmount         float64               `json:"bonusAmount,omitempty"`
	BonusEligibility    bonus.Eligibility     `json:"bonusEligibility,omitempty"`
	EffectivePrincipal  float64               `json:"effectivePrincipal"`
	Indicators          indicators.Indicators `json:"indicators"`
}

// Run computes the Results for all simulations in the configuration.
func Run(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(conf.Simulations))
	for i := range conf.Simulations {
		result, err := Simulate(logger, &conf.Simulations[i])
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Simulate resolves one loan configuration into its financial indicators:
// rate conversion, bonus subtraction, then the full schedule and indicator
// computation.
func Simulate(logger *zap.Logger, loan *config.LoanConfiguration) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := loan.Validate(); err != nil {
		return Result{}, err
	}

	effectiveAnnual, err := loan.EffectiveAnnualRate()
	if err != nil {
		return Result{}, err
	}
	monthlyRate, err := loan.MonthlyRate()
	if err != nil {
		return Result{}, err
	}

	bonusAmount, eligibility, err := loan.ResolveBonus()
	if err != nil {
		return Result{}, err
	}
	if eligibility != "" && eligibility != bonus.Eligible {
		logger.Debug(fmt.Sprintf("loan %s does not qualify for its bonus (%s)", loan.Name, eligibility),
			zap.String("op", "simulation.Simulate"),
		)
	}

	principal := loan.EffectivePrincipal(bonusAmount)

	startDate, err := datetime.ParseStartDate(loan.StartDate)
	if err != nil {
		return Result{}, err
	}

	var grace *schedule.GracePolicy
	if loan.Grace != nil {
		grace = &schedule.GracePolicy{Kind: schedule.GraceKind(loan.Grace.Kind), Months: loan.Grace.Months}
	}

	computed, err := indicators.Compute(indicators.Input{
		EffectivePrincipal:  principal,
		MonthlyRate:         monthlyRate,
		TermMonths:          loan.TermMonths(),
		Grace:               grace,
		ExtraMonthlyCosts:   loan.ExtraMonthlyCosts,
		DiscountMonthlyRate: loan.DiscountMonthlyRate(),
		StartDate:           startDate,
	})
	if err != nil {
		return Result{}, err
	}

	logger.Debug(fmt.Sprintf("simulated loan %s: principal %.2f over %d months", loan.Name, principal, loan.TermMonths()),
		zap.String("op", "simulation.Simulate"),
		zap.Float64("monthlyRate", monthlyRate),
		zap.Bool("tirConverged", computed.ClientSolver.Converged),
	)

	return Result{
		Name:                loan.Name,
		Currency:            loan.Currency,
		EffectiveAnnualRate: effectiveAnnual,
		MonthlyRate:         monthlyRate,
		BonusAmount:         bonusAmount,
		BonusEligibility:    eligibility,
		EffectivePrincipal:  principal,
		Indicators:          computed,
	}, nil
}
