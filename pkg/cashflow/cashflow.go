// Package cashflow derives signed monthly cash-flow series from an
// amortization table and discounts them.
package cashflow

import (
	"math"

	"github.com/Vilduis/SimulaCredit-sub000/pkg/schedule"
)

// ClientSeries builds the borrower-side series: each period's payment plus
// the constant ancillary monthly costs, signed as an outflow. The costs apply
// to every period, grace periods included.
func ClientSeries(rows []schedule.Row, extraMonthlyCosts float64) []float64 {
	flows := make([]float64, len(rows))
	for i, row := range rows {
		flows[i] = -(row.Payment + extraMonthlyCosts)
	}
	return flows
}

// BankSeries builds the lender-side series: payments only, excluding
// third-party costs that never accrue to the lender.
func BankSeries(rows []schedule.Row) []float64 {
	flows := make([]float64, len(rows))
	for i, row := range rows {
		flows[i] = -row.Payment
	}
	return flows
}

// NetPresentValue discounts the series at the given periodic rate and adds
// the period-0 principal inflow. flows[i] corresponds to period i+1.
func NetPresentValue(principal float64, flows []float64, periodicRate float64) float64 {
	npv := principal
	for i, flow := range flows {
		npv += flow / math.Pow(1+periodicRate, float64(i+1))
	}
	return npv
}
