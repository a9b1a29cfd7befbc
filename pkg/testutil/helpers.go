// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/rent-or-own/internal/analysis"
	"github.com/iwvelando/rent-or-own/internal/forecast"
)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the forecast if found, nil otherwise.
func FindScenario(results []forecast.Forecast, name string) *forecast.Forecast {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// BaselineInputs returns the five-year reference scenario: a 1.5M home with
// 20% down at 5.75% against 4,500/month rent, investing the difference.
func BaselineInputs() analysis.Inputs {
	return analysis.Inputs{
		Years:                        5,
		HomePrice:                    1500000,
		DownPaymentPct:               20,
		APR:                          5.75,
		PropertyTaxRatePct:           1.25,
		PropertyTaxGrowthPct:         2,
		HouseGrowthPct:               3,
		MaintenanceAnnual:            10000,
		BrokerageCostPct:             6,
		RegistrationCostPct:          2,
		MonthlyRent:                  4500,
		RentGrowthPct:                5,
		TaxRatePct:                   35,
		StandardDeduction:            0,
		StocksEnabled:                true,
		IncludeDownPaymentGrowth:     true,
		StockGrowthPct:               8,
		CapitalGainsTaxRatePct:       20,
		CapitalGainsExemptionEnabled: true,
	}
}

// ToForecast wraps a single analysis in a named Forecast.
func ToForecast(name string, result *analysis.Analysis) forecast.Forecast {
	return forecast.Forecast{
		Name:     name,
		Inputs:   result.Inputs,
		Mortgage: result.MortgageSchedule,
		Rent:     result.RentSchedule,
		Summary:  result.Summary,
	}
}
