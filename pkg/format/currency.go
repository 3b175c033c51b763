// Package format renders money and rate values for display.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Symbol returns the display symbol for a supported currency code.
func Symbol(currency string) string {
	switch currency {
	case "PEN":
		return "S/ "
	case "USD":
		return "$"
	default:
		return currency + " "
	}
}

// Currency returns a currency string with a symbol and thousands separators
// (e.g., "-S/ 1,234.56").
func Currency(currency string, amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + Symbol(currency) + formatted
	}
	return Symbol(currency) + formatted
}

// Percent renders a decimal rate as a percentage with four decimals
// (e.g., 0.0070 -> "0.7000%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.4f%%", rate*100)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
