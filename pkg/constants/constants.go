// Package constants provides shared constants for the solar-forecast application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// HoursPerDay is the number of hours in a day
	HoursPerDay = 24.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Battery modeling defaults
const (
	// DefaultRoundTripEfficiency is the fraction of stored energy retained
	// after one full charge/discharge cycle
	DefaultRoundTripEfficiency = 0.9

	// DefaultActiveHours is the assumed number of hours per day over which a
	// site draws its daily consumption
	DefaultActiveHours = 10.0

	// DefaultRecommendedRatio sizes a battery relative to daily production
	DefaultRecommendedRatio = 0.7
)

// Financing method identifiers accepted in proposal configurations.
const (
	// FinancingCash means the system is purchased outright
	FinancingCash = "cash"

	// FinancingLoan means the system is financed with an amortizing loan
	FinancingLoan = "loan"

	// FinancingLease means the system is leased with a residual buyout
	FinancingLease = "lease"
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
	// DefaultServerAddress is the default HTTP listen address for the evaluation API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
