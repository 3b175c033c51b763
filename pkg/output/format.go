// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"fmt"
	"math"

	"github.com/Vilduis/SimulaCredit-sub000/internal/simulation"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/constants"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/format"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/schedule"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
// scheduleRows > 0 truncates the amortization table to its first and last
// scheduleRows rows.
func PrettyFormat(results []simulation.Result, scheduleRows int) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Printf("--- Results for simulation %s ---\n", result.Name)
		fmt.Printf("Effective principal:  %s\n", format.Currency(result.Currency, result.EffectivePrincipal))
		if result.BonusAmount > 0 {
			fmt.Printf("Applied bonus:        %s\n", format.Currency(result.Currency, result.BonusAmount))
		} else if result.BonusEligibility != "" {
			fmt.Printf("Bonus:                not applied (%s)\n", result.BonusEligibility)
		}
		fmt.Printf("Monthly payment:      %s\n", format.Currency(result.Currency, result.Indicators.MonthlyPayment))
		fmt.Printf("Total paid:           %s\n", format.Currency(result.Currency, result.Indicators.TotalAmount))
		fmt.Printf("Total interest:       %s\n", format.Currency(result.Currency, result.Indicators.TotalInterest))
		fmt.Printf("TCEA:                 %s\n", format.Percent(result.Indicators.TCEA))
		fmt.Printf("TREA:                 %s\n", format.Percent(result.Indicators.TREA))
		fmt.Printf("TIR:                  %s\n", format.Percent(result.Indicators.TIR))
		fmt.Printf("VAN:                  %s\n", format.Currency(result.Currency, result.Indicators.VAN))
		if math.IsNaN(result.Indicators.Duration) {
			fmt.Printf("Duration:             not computable\n")
		} else {
			fmt.Printf("Duration:             %.4f years\n", result.Indicators.Duration)
			fmt.Printf("Modified duration:    %.4f years\n", result.Indicators.ModifiedDuration)
			fmt.Printf("Convexity:            %.4f\n", result.Indicators.Convexity)
		}
		if !result.Indicators.ClientSolver.Converged {
			fmt.Printf("Note: TIR/TCEA did not converge (residual %.6f)\n", result.Indicators.ClientSolver.Residual)
		}

		fmt.Printf("\nPeriod | Date       | Initial balance | Interest    | Payment     | Amortization | Final balance\n")
		fmt.Printf("______ | ____       | _______________ | ________    | _______     | ____________ | _____________\n")
		for _, row := range truncateRows(result.Indicators.AmortizationTable, scheduleRows) {
			if row.Period < 0 {
				fmt.Printf("   ... |\n")
				continue
			}
			_, _ = p.Printf("%6d | %s | %15.2f | %11.2f | %11.2f | %12.2f | %13.2f\n",
				row.Period, row.Date.Format(constants.DateLayout), row.InitialBalance,
				row.Interest, row.Payment, row.Amortization, row.FinalBalance)
		}
		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []simulation.Result) {
	fmt.Printf(`"simulation","period","date","initialBalance","interest","payment","amortization","finalBalance"`)
	fmt.Printf("\n")
	for _, result := range results {
		for _, row := range result.Indicators.AmortizationTable {
			fmt.Printf(`"%s","%d","%s","%.2f","%.2f","%.2f","%.2f","%.2f"`,
				result.Name, row.Period, row.Date.Format(constants.DateLayout),
				row.InitialBalance, row.Interest, row.Payment, row.Amortization, row.FinalBalance)
			fmt.Printf("\n")
		}
	}
}

// truncateRows keeps the first and last n rows, inserting a sentinel row with
// a negative period as the elision marker. n <= 0 keeps everything.
func truncateRows(rows []schedule.Row, n int) []schedule.Row {
	if n <= 0 || len(rows) <= 2*n {
		return rows
	}
	truncated := make([]schedule.Row, 0, 2*n+1)
	truncated = append(truncated, rows[:n]...)
	truncated = append(truncated, schedule.Row{Period: -1})
	truncated = append(truncated, rows[len(rows)-n:]...)
	return truncated
}
