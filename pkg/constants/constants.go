// Package constants provides shared constants for the rent-or-own application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MortgageTermYears is the fixed loan term used for the monthly payment,
	// regardless of the comparison horizon.
	MortgageTermYears = 30

	// DeductiblePrincipalLimit caps the principal balance whose interest may
	// be deducted.
	DeductiblePrincipalLimit = 750000.0

	// DefaultHomeCapitalGainsRatePct is used for the home appreciation
	// exemption when no capital gains rate is configured.
	DefaultHomeCapitalGainsRatePct = 20.0
)

// Defaults applied by the configuration layer when a parameter is omitted.
const (
	// DefaultPropertyTaxGrowthPct models an assessed-value growth cap (CA Prop 13).
	DefaultPropertyTaxGrowthPct = 2.0

	// DefaultCapitalGainsTaxRatePct is the long-term capital gains rate.
	DefaultCapitalGainsTaxRatePct = 20.0

	// DefaultStockGrowthPct is the assumed annual market return.
	DefaultStockGrowthPct = 8.0
)

// Horizon constants
const (
	// RecommendedMaxYears is the longest horizon the input forms accept.
	// Longer horizons are computed but reported as a warning.
	RecommendedMaxYears = 50

	// MaxYears is the hard ceiling on the horizon; schedules are allocated
	// per year.
	MaxYears = 200
)

// Winner labels
const (
	// WinnerOwnership marks home ownership as the cheaper option.
	WinnerOwnership = "OWNERSHIP"

	// WinnerRenting marks renting and investing as the cheaper option.
	WinnerRenting = "RENTING"
)

// Deduction strategy labels
const (
	// DeductionItemized means itemized mortgage interest beats the standard deduction.
	DeductionItemized = "ITEMIZED"

	// DeductionStandard means the standard deduction is at least as large.
	DeductionStandard = "STANDARD"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultServiceName identifies the service in traces.
	DefaultServiceName = "rent-or-own"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)
