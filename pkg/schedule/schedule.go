// Package schedule generates French-method amortization tables with optional
// total or partial grace periods.
package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/Vilduis/SimulaCredit-sub000/pkg/constants"
)

// GraceKind enumerates the supported grace period policies.
type GraceKind string

const (
	// GraceTotal defers both capital and interest; unpaid interest
	// capitalizes into the balance.
	GraceTotal GraceKind = "total"

	// GracePartial defers capital only; interest is paid each period.
	GracePartial GraceKind = "partial"
)

// GracePolicy describes an initial schedule segment in which no capital is
// repaid.
type GracePolicy struct {
	Kind   GraceKind
	Months int
}

// Row is one period of an amortization table.
type Row struct {
	Period         int       `json:"period"`
	Date           time.Time `json:"date"`
	InitialBalance float64   `json:"initialBalance"`
	Interest       float64   `json:"interest"`
	Payment        float64   `json:"payment"`
	Amortization   float64   `json:"amortization"`
	FinalBalance   float64   `json:"finalBalance"`
}

// phase tags the scheduler state machine.
type phase int

const (
	phaseGraceTotal phase = iota
	phaseGracePartial
	phaseNormal
)

// state carries the scheduler fold state between periods.
type state struct {
	phase   phase
	balance float64
	payment float64 // constant installment, valid only in phaseNormal
}

// AnnuityPayment returns the constant installment that amortizes balance over
// periods at the given periodic rate using the standard annuity formula. A
// zero rate degrades to an even split.
func AnnuityPayment(balance float64, periodicRate float64, periods int) float64 {
	if periodicRate == 0 {
		return balance / float64(periods)
	}
	power := math.Pow(1+periodicRate, float64(periods))
	return balance * periodicRate * power / (power - 1)
}

// Generate produces the complete amortization table for principal at
// monthlyRate over termMonths. grace may be nil for a plain schedule. Dates
// advance by 30-day periods from startDate.
func Generate(principal, monthlyRate float64, termMonths int, grace *GracePolicy, startDate time.Time) ([]Row, error) {
	if termMonths <= 0 {
		return nil, fmt.Errorf("term must be positive, got %d months", termMonths)
	}
	if monthlyRate < 0 {
		return nil, fmt.Errorf("monthly rate must not be negative, got %f", monthlyRate)
	}

	graceMonths := 0
	st := state{phase: phaseNormal, balance: principal}
	if grace != nil && grace.Months > 0 {
		if grace.Months >= termMonths {
			return nil, fmt.Errorf("grace period of %d months does not leave any amortizing periods in a %d month term", grace.Months, termMonths)
		}
		graceMonths = grace.Months
		switch grace.Kind {
		case GraceTotal:
			st.phase = phaseGraceTotal
		case GracePartial:
			st.phase = phaseGracePartial
		default:
			return nil, fmt.Errorf("unrecognized grace kind %q", grace.Kind)
		}
	}
	if st.phase == phaseNormal {
		st.payment = AnnuityPayment(principal, monthlyRate, termMonths)
	}

	rows := make([]Row, 0, termMonths)
	for period := 1; period <= termMonths; period++ {
		// One-time recomputation at the grace -> normal transition: the
		// installment is fixed from the possibly grown balance and the
		// remaining months, then held constant.
		if st.phase != phaseNormal && period == graceMonths+1 {
			st.phase = phaseNormal
			st.payment = AnnuityPayment(st.balance, monthlyRate, termMonths-graceMonths)
		}

		var row Row
		st, row = scheduleStep(st, period, monthlyRate)
		row.Date = startDate.AddDate(0, 0, period*constants.DaysPerPeriod)
		rows = append(rows, row)
	}

	return rows, nil
}

// scheduleStep advances the fold by one period, emitting the period's row.
func scheduleStep(st state, period int, monthlyRate float64) (state, Row) {
	row := Row{
		Period:         period,
		InitialBalance: st.balance,
		Interest:       st.balance * monthlyRate,
	}

	switch st.phase {
	case phaseGraceTotal:
		// No payment; the interest capitalizes and the balance grows.
		st.balance += row.Interest
	case phaseGracePartial:
		row.Payment = row.Interest
	case phaseNormal:
		row.Payment = st.payment
		row.Amortization = st.payment - row.Interest
		st.balance -= row.Amortization
	}

	// Clamp to absorb floating point drift on the terminal period.
	if st.balance < 0 {
		st.balance = 0
	}
	row.FinalBalance = st.balance

	return st, row
}
