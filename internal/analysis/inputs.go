package analysis

import (
	"errors"

	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/iwvelando/rent-or-own/pkg/mathutil"
	"github.com/iwvelando/rent-or-own/pkg/validation"
)

// Inputs is the validated parameter record for a single buy-versus-rent
// comparison. Percentages are expressed as percent values, e.g. 5.75 for 5.75%.
type Inputs struct {
	Years int `json:"years" yaml:"years"`

	HomePrice            float64 `json:"homePrice" yaml:"homePrice"`
	DownPaymentPct       float64 `json:"downPaymentPct" yaml:"downPaymentPct"`
	APR                  float64 `json:"apr" yaml:"apr"`
	PropertyTaxRatePct   float64 `json:"propertyTaxRatePct" yaml:"propertyTaxRatePct"`
	PropertyTaxGrowthPct float64 `json:"propertyTaxGrowthPct" yaml:"propertyTaxGrowthPct"`
	HouseGrowthPct       float64 `json:"houseGrowthPct" yaml:"houseGrowthPct"`
	MaintenanceAnnual    float64 `json:"maintenanceAnnual" yaml:"maintenanceAnnual"`
	BrokerageCostPct     float64 `json:"brokerageCostPct" yaml:"brokerageCostPct"`
	RegistrationCostPct  float64 `json:"registrationCostPct" yaml:"registrationCostPct"`

	MonthlyRent   float64 `json:"monthlyRent" yaml:"monthlyRent"`
	RentGrowthPct float64 `json:"rentGrowthPct" yaml:"rentGrowthPct"`

	TaxRatePct        float64 `json:"taxRatePct" yaml:"taxRatePct"`
	StandardDeduction float64 `json:"standardDeduction" yaml:"standardDeduction"`

	StocksEnabled                bool    `json:"stocksEnabled" yaml:"stocksEnabled"`
	IncludeDownPaymentGrowth     bool    `json:"includeDownPaymentGrowth" yaml:"includeDownPaymentGrowth"`
	StockGrowthPct               float64 `json:"stockGrowthPct" yaml:"stockGrowthPct"`
	CapitalGainsTaxRatePct       float64 `json:"capitalGainsTaxRatePct" yaml:"capitalGainsTaxRatePct"`
	CapitalGainsExemptionEnabled bool    `json:"capitalGainsExemptionEnabled" yaml:"capitalGainsExemptionEnabled"`
}

// DownPayment is the cash paid up front.
func (in Inputs) DownPayment() float64 {
	return mathutil.ApplyPercentage(in.HomePrice, in.DownPaymentPct)
}

// LoanAmount is the financed part of the purchase price.
func (in Inputs) LoanAmount() float64 {
	return in.HomePrice - in.DownPayment()
}

// Validate checks every field against its domain. All failures are reported
// together; the result matches ErrInvalidInput via errors.Is.
func (in Inputs) Validate() error {
	return errors.Join(
		validation.CheckIntRange("years", in.Years, 1, constants.MaxYears),
		validation.CheckPositive("homePrice", in.HomePrice),
		validation.CheckRange("downPaymentPct", in.DownPaymentPct, 0, 100),
		validation.CheckPositive("apr", in.APR),
		validation.CheckNonNegative("propertyTaxRatePct", in.PropertyTaxRatePct),
		validation.CheckNonNegative("propertyTaxGrowthPct", in.PropertyTaxGrowthPct),
		validation.CheckGreaterThan("houseGrowthPct", in.HouseGrowthPct, -100),
		validation.CheckNonNegative("maintenanceAnnual", in.MaintenanceAnnual),
		validation.CheckNonNegative("brokerageCostPct", in.BrokerageCostPct),
		validation.CheckNonNegative("registrationCostPct", in.RegistrationCostPct),
		validation.CheckPositive("monthlyRent", in.MonthlyRent),
		validation.CheckNonNegative("rentGrowthPct", in.RentGrowthPct),
		validation.CheckRange("taxRatePct", in.TaxRatePct, 0, 100),
		validation.CheckNonNegative("standardDeduction", in.StandardDeduction),
		validation.CheckNonNegative("stockGrowthPct", in.StockGrowthPct),
		validation.CheckNonNegative("capitalGainsTaxRatePct", in.CapitalGainsTaxRatePct),
	)
}
