// Package indicators combines an amortization schedule and its cash-flow
// series into investment-grade risk and return indicators.
package indicators

import (
	"math"
	"time"

	"github.com/Vilduis/SimulaCredit-sub000/pkg/cashflow"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/constants"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/rates"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/schedule"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/solver"
)

// Input holds the engine-level parameters for one computation. The principal
// must already reflect any bonus subtraction; termMonths is pre-multiplied
// (years x 12); rates are periodic decimals, not percentages.
type Input struct {
	EffectivePrincipal  float64
	MonthlyRate         float64
	TermMonths          int
	Grace               *schedule.GracePolicy
	ExtraMonthlyCosts   float64
	DiscountMonthlyRate float64
	StartDate           time.Time
}

// Indicators is the full result of one computation. Every field is recomputed
// from scratch on each call; duration and convexity are NaN when the
// discounted cash-flow denominator degenerates to zero.
type Indicators struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalAmount    float64 `json:"totalAmount"`
	TotalInterest  float64 `json:"totalInterest"`

	// Annualized decimal rates.
	TCEA float64 `json:"tcea"`
	TREA float64 `json:"trea"`
	TIR  float64 `json:"tir"`

	VAN float64 `json:"van"`

	Duration         float64 `json:"duration"`
	ModifiedDuration float64 `json:"modifiedDuration"`
	Convexity        float64 `json:"convexity"`

	// Solver diagnostics for the rate-discovery indicators.
	ClientSolver solver.Result `json:"clientSolver"`
	BankSolver   solver.Result `json:"bankSolver"`

	AmortizationTable []schedule.Row `json:"amortizationTable"`
}

// Compute builds the schedule, derives both cash-flow series, and evaluates
// every indicator. It is a pure function of its input.
func Compute(in Input) (Indicators, error) {
	rows, err := schedule.Generate(in.EffectivePrincipal, in.MonthlyRate, in.TermMonths, in.Grace, in.StartDate)
	if err != nil {
		return Indicators{}, err
	}

	clientFlows := cashflow.ClientSeries(rows, in.ExtraMonthlyCosts)
	bankFlows := cashflow.BankSeries(rows)

	clientResult := solver.InternalRate(in.EffectivePrincipal, clientFlows)
	bankResult := solver.InternalRate(in.EffectivePrincipal, bankFlows)

	result := Indicators{
		VAN:               cashflow.NetPresentValue(in.EffectivePrincipal, clientFlows, in.DiscountMonthlyRate),
		TIR:               rates.AnnualizeMonthly(clientResult.Rate),
		TREA:              rates.AnnualizeMonthly(bankResult.Rate),
		ClientSolver:      clientResult,
		BankSolver:        bankResult,
		AmortizationTable: rows,
	}
	// TIR and TCEA are the same root on the same cost-inclusive series; both
	// labels are exposed so callers familiar with either concept find it.
	result.TCEA = result.TIR

	for _, row := range rows {
		result.TotalAmount += row.Payment
		if result.MonthlyPayment == 0 && row.Payment > 0 {
			// First positive payment: captures the post-grace constant
			// installment even when a total-grace segment precedes it.
			result.MonthlyPayment = row.Payment
		}
	}
	result.TotalInterest = result.TotalAmount - in.EffectivePrincipal

	result.Duration, result.ModifiedDuration, result.Convexity = sensitivity(clientFlows, in.DiscountMonthlyRate)

	return result, nil
}

// sensitivity computes Macaulay duration (years), modified duration, and
// convexity of the series at the monthly discount rate.
func sensitivity(flows []float64, monthlyRate float64) (duration, modified, convexity float64) {
	var weightedSum, weightedSquaredSum, presentValueSum float64
	for i, flow := range flows {
		period := float64(i + 1)
		pv := flow / math.Pow(1+monthlyRate, period)
		presentValueSum += pv
		weightedSum += period * pv
		weightedSquaredSum += period * (period + 1) * pv
	}

	if presentValueSum == 0 {
		// Degenerate series: a silent zero would be indistinguishable from a
		// genuinely short-duration instrument.
		nan := math.NaN()
		return nan, nan, nan
	}

	duration = weightedSum / presentValueSum / constants.MonthsPerYear
	modified = duration / (1 + monthlyRate)
	convexity = weightedSquaredSum / math.Pow(1+monthlyRate, 2) / presentValueSum
	return duration, modified, convexity
}
