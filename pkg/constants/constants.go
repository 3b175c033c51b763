// Package constants provides shared constants for the simulacredit application.
package constants

// DateLayout is the format expected for start dates in config files and is
// also the output date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerPeriod is the day count of one schedule period; payment dates
	// advance by 30-day months ("vencido ordinario"), not calendar months
	DaysPerPeriod = 30

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Bisection solver constants
const (
	// SolverLowerBound is the lowest periodic rate the solver will bracket (-99%)
	SolverLowerBound = -0.99

	// SolverUpperBound is the highest periodic rate the solver will bracket (1000%)
	SolverUpperBound = 10.0

	// SolverTolerance is the absolute NPV convergence tolerance in currency units
	SolverTolerance = 1e-4

	// SolverMaxIterations caps the bisection loop; on exhaustion the solver
	// returns the midpoint of the final bracket
	SolverMaxIterations = 1000
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
