// Package solver finds the periodic rate that zeroes the net present value of
// a cash-flow series.
package solver

import (
	"math"

	"github.com/Vilduis/SimulaCredit-sub000/pkg/cashflow"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/constants"
)

// Result carries the discovered periodic rate together with convergence
// diagnostics so callers can tell a converged root from a best-effort
// estimate at iteration-budget exhaustion.
type Result struct {
	// Rate is the periodic (monthly) decimal rate.
	Rate float64

	// Residual is |NPV(Rate)| in currency units.
	Residual float64

	// Iterations is the number of bisection steps taken.
	Iterations int

	// Converged reports whether Residual met the tolerance within the
	// iteration budget.
	Converged bool
}

// InternalRate solves NPV(rate) = 0 by bisection over a wide fixed bracket.
// The series follows root-finding conventions: principal is the period-0
// inflow and every flows[i] is a (negative) outflow at period i+1, which
// makes NPV monotonically increasing in rate. Non-convergence is not fatal;
// the midpoint of the final bracket is returned as a best effort.
func InternalRate(principal float64, flows []float64) Result {
	lower := constants.SolverLowerBound
	upper := constants.SolverUpperBound

	var mid, residual float64
	for iteration := 1; iteration <= constants.SolverMaxIterations; iteration++ {
		mid = (lower + upper) / 2
		value := cashflow.NetPresentValue(principal, flows, mid)
		residual = math.Abs(value)

		if residual < constants.SolverTolerance {
			return Result{Rate: mid, Residual: residual, Iterations: iteration, Converged: true}
		}

		if value > 0 {
			upper = mid
		} else {
			lower = mid
		}
	}

	mid = (lower + upper) / 2
	residual = math.Abs(cashflow.NetPresentValue(principal, flows, mid))
	return Result{
		Rate:       mid,
		Residual:   residual,
		Iterations: constants.SolverMaxIterations,
		Converged:  false,
	}
}
