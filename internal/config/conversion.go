package config

import (
	"errors"
	"fmt"

	"github.com/iwvelando/rent-or-own/internal/analysis"
	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/iwvelando/rent-or-own/pkg/validation"
)

// ToInputs converts fully merged parameters into validated analysis inputs.
// Missing required values and out-of-domain values both yield errors matching
// validation.ErrInvalidInput.
func (p Parameters) ToInputs() (analysis.Inputs, error) {
	if err := p.checkRequired(); err != nil {
		return analysis.Inputs{}, err
	}

	inputs := analysis.Inputs{
		Years:                        *p.Years,
		HomePrice:                    *p.HomePrice,
		DownPaymentPct:               *p.DownPaymentPct,
		APR:                          *p.APR,
		PropertyTaxRatePct:           *p.PropertyTaxRatePct,
		PropertyTaxGrowthPct:         valueOr(p.PropertyTaxGrowthPct, constants.DefaultPropertyTaxGrowthPct),
		HouseGrowthPct:               *p.HouseGrowthPct,
		MaintenanceAnnual:            valueOr(p.MaintenanceAnnual, 0),
		BrokerageCostPct:             valueOr(p.BrokerageCostPct, 0),
		RegistrationCostPct:          valueOr(p.RegistrationCostPct, 0),
		MonthlyRent:                  *p.MonthlyRent,
		RentGrowthPct:                *p.RentGrowthPct,
		TaxRatePct:                   *p.TaxRatePct,
		StandardDeduction:            valueOr(p.StandardDeduction, 0),
		StocksEnabled:                valueOr(p.StocksEnabled, false),
		IncludeDownPaymentGrowth:     valueOr(p.IncludeDownPaymentGrowth, true),
		StockGrowthPct:               valueOr(p.StockGrowthPct, constants.DefaultStockGrowthPct),
		CapitalGainsTaxRatePct:       valueOr(p.CapitalGainsTaxRatePct, constants.DefaultCapitalGainsTaxRatePct),
		CapitalGainsExemptionEnabled: valueOr(p.CapitalGainsExemptionEnabled, true),
	}

	if err := inputs.Validate(); err != nil {
		return analysis.Inputs{}, err
	}
	return inputs, nil
}

func (p Parameters) checkRequired() error {
	var errs []error
	if p.Years == nil {
		errs = append(errs, validation.Missing("years"))
	}
	required := []struct {
		field string
		value *float64
	}{
		{"homePrice", p.HomePrice},
		{"downPaymentPct", p.DownPaymentPct},
		{"apr", p.APR},
		{"propertyTaxRatePct", p.PropertyTaxRatePct},
		{"houseGrowthPct", p.HouseGrowthPct},
		{"monthlyRent", p.MonthlyRent},
		{"rentGrowthPct", p.RentGrowthPct},
		{"taxRatePct", p.TaxRatePct},
	}
	for _, r := range required {
		if r.value == nil {
			errs = append(errs, validation.Missing(r.field))
		}
	}
	return errors.Join(errs...)
}

// ResolveScenario merges scenario over the common parameters and converts the
// result into analysis inputs.
func (c *Configuration) ResolveScenario(scenario Scenario) (analysis.Inputs, error) {
	inputs, err := c.Common.Merge(scenario.Parameters).ToInputs()
	if err != nil {
		return analysis.Inputs{}, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	return inputs, nil
}
