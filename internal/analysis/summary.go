package analysis

import (
	"math"

	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/iwvelando/rent-or-own/pkg/mathutil"
)

// Winner names the cheaper alternative.
type Winner string

const (
	WinnerOwnership Winner = constants.WinnerOwnership
	WinnerRenting   Winner = constants.WinnerRenting
)

// DeductionStrategy names the filing choice that yields the larger deduction.
type DeductionStrategy string

const (
	DeductionItemized DeductionStrategy = constants.DeductionItemized
	DeductionStandard DeductionStrategy = constants.DeductionStandard
)

// Summary aggregates both schedules into net costs and a verdict.
type Summary struct {
	TotalRent                      float64           `json:"totalRent"`
	TotalInterest                  float64           `json:"totalInterest"`
	TotalPrincipal                 float64           `json:"totalPrincipal"`
	TotalPropertyTax               float64           `json:"totalPropertyTax"`
	TotalMaintenance               float64           `json:"totalMaintenance"`
	TotalSellingCosts              float64           `json:"totalSellingCosts"`
	TotalDeductibleInterest        float64           `json:"totalDeductibleInterest"`
	TotalInterestTaxSavings        float64           `json:"totalInterestTaxSavings"`
	FinalHomeValue                 float64           `json:"finalHomeValue"`
	HomeSaleGains                  float64           `json:"homeSaleGains"`
	NetSaleProceeds                float64           `json:"netSaleProceeds"`
	NetHomeGainsAfterCosts         float64           `json:"netHomeGainsAfterCosts"`
	HomeCapitalGainsRatePct        float64           `json:"homeCapitalGainsRatePct"`
	CapitalGainsTaxSavings         float64           `json:"capitalGainsTaxSavings"`
	DownPaymentInvestmentGain      float64           `json:"downPaymentInvestmentGain"`
	EMIRentDiffInvestmentGain      float64           `json:"emiRentDiffInvestmentGain"`
	StockInvestmentGains           float64           `json:"stockInvestmentGains"`
	TotalEMIContributions          float64           `json:"totalEmiContributions"`
	CapitalGainsTaxOwed            float64           `json:"capitalGainsTaxOwed"`
	RentalStandardDeductionBenefit float64           `json:"rentalStandardDeductionBenefit"`
	TotalEMIPayments               float64           `json:"totalEmiPayments"`
	TotalEMIRentDiff               float64           `json:"totalEmiRentDiff"`
	DeductionStrategy              DeductionStrategy `json:"deductionStrategy"`
	DeductionBenefit               float64           `json:"deductionBenefit"`
	AdditionalTaxSavings           float64           `json:"additionalTaxSavings"`
	RentNetCost                    float64           `json:"rentNetCost"`
	OwnershipNetCost               float64           `json:"ownershipNetCost"`
	Winner                         Winner            `json:"winner"`
	Savings                        float64           `json:"savings"`
}

// Summarize folds the schedules produced for inputs into a Summary. Ties go
// to renting.
func Summarize(inputs Inputs, mortgage []MortgageRecord, rent []RentRecord) Summary {
	var s Summary
	years := float64(inputs.Years)

	var monthlyPayment float64
	for _, rec := range mortgage {
		s.TotalInterest += rec.InterestPaid
		s.TotalPrincipal += rec.PrincipalPaid
		s.TotalPropertyTax += rec.PropertyTax
		s.TotalDeductibleInterest += rec.DeductibleInterest
		s.TotalInterestTaxSavings += rec.InterestTaxSavings
		monthlyPayment = rec.MonthlyPayment
	}
	for _, rec := range rent {
		s.TotalRent += rec.Base().AnnualRent
	}

	// Home sale.
	s.FinalHomeValue = inputs.HomePrice
	if len(mortgage) > 0 {
		s.FinalHomeValue = mortgage[len(mortgage)-1].HomeValue
	}
	s.HomeSaleGains = s.FinalHomeValue - inputs.HomePrice
	s.TotalSellingCosts = mathutil.ApplyPercentage(s.FinalHomeValue, inputs.BrokerageCostPct+inputs.RegistrationCostPct)
	s.NetSaleProceeds = s.FinalHomeValue - s.TotalSellingCosts
	s.NetHomeGainsAfterCosts = s.NetSaleProceeds - inputs.HomePrice

	s.HomeCapitalGainsRatePct = inputs.CapitalGainsTaxRatePct
	if s.HomeCapitalGainsRatePct <= 0 {
		s.HomeCapitalGainsRatePct = constants.DefaultHomeCapitalGainsRatePct
	}
	if inputs.CapitalGainsExemptionEnabled && s.HomeSaleGains > 0 {
		s.CapitalGainsTaxSavings = mathutil.ApplyPercentage(s.HomeSaleGains, s.HomeCapitalGainsRatePct)
	}

	// Investments.
	if inputs.StocksEnabled && len(rent) > 0 {
		if last, ok := rent[len(rent)-1].(InvestedRentRecord); ok {
			for _, rec := range rent {
				if invested, ok := rec.(InvestedRentRecord); ok {
					s.TotalEMIContributions += invested.Contribution
				}
			}
			if inputs.IncludeDownPaymentGrowth {
				s.DownPaymentInvestmentGain = last.DownPaymentValue - inputs.DownPayment()
			}
			s.EMIRentDiffInvestmentGain = last.EMIDiffInvestmentValue - s.TotalEMIContributions
			s.StockInvestmentGains = s.DownPaymentInvestmentGain + s.EMIRentDiffInvestmentGain
			s.CapitalGainsTaxOwed = mathutil.ApplyPercentage(s.StockInvestmentGains, inputs.CapitalGainsTaxRatePct)
		}
	}

	s.TotalMaintenance = inputs.MaintenanceAnnual * years
	s.RentalStandardDeductionBenefit = mathutil.ApplyPercentage(inputs.StandardDeduction*years, inputs.TaxRatePct)

	// Itemized mortgage interest versus the standard deduction.
	s.TotalEMIPayments = monthlyPayment * constants.MonthsPerYear * years
	s.TotalEMIRentDiff = s.TotalEMIPayments - s.TotalRent
	standardTotal := inputs.StandardDeduction * years
	if s.TotalDeductibleInterest > standardTotal {
		s.DeductionStrategy = DeductionItemized
		s.DeductionBenefit = s.TotalDeductibleInterest - standardTotal
		s.AdditionalTaxSavings = mathutil.ApplyPercentage(s.DeductionBenefit, inputs.TaxRatePct)
	} else {
		s.DeductionStrategy = DeductionStandard
		s.DeductionBenefit = standardTotal - s.TotalDeductibleInterest
	}

	s.OwnershipNetCost = s.TotalInterest + s.TotalMaintenance + s.TotalPropertyTax + s.TotalSellingCosts -
		(s.TotalInterestTaxSavings + s.CapitalGainsTaxSavings) - s.HomeSaleGains
	s.RentNetCost = s.TotalRent + s.CapitalGainsTaxOwed - s.StockInvestmentGains - s.RentalStandardDeductionBenefit

	if s.OwnershipNetCost < s.RentNetCost {
		s.Winner = WinnerOwnership
	} else {
		s.Winner = WinnerRenting
	}
	s.Savings = math.Abs(s.OwnershipNetCost - s.RentNetCost)

	return s
}
