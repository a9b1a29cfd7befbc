package config

// Parameters holds every analysis parameter as an optional value. They appear
// under common and inside each scenario; a scenario value wins over the common
// one, and unset optional values fall back to defaults when resolved.
type Parameters struct {
	Years *int `yaml:"years,omitempty" json:"years,omitempty"`

	HomePrice            *float64 `yaml:"homePrice,omitempty" json:"homePrice,omitempty"`
	DownPaymentPct       *float64 `yaml:"downPaymentPct,omitempty" json:"downPaymentPct,omitempty"`
	APR                  *float64 `yaml:"apr,omitempty" json:"apr,omitempty"`
	PropertyTaxRatePct   *float64 `yaml:"propertyTaxRatePct,omitempty" json:"propertyTaxRatePct,omitempty"`
	PropertyTaxGrowthPct *float64 `yaml:"propertyTaxGrowthPct,omitempty" json:"propertyTaxGrowthPct,omitempty"`
	HouseGrowthPct       *float64 `yaml:"houseGrowthPct,omitempty" json:"houseGrowthPct,omitempty"`
	MaintenanceAnnual    *float64 `yaml:"maintenanceAnnual,omitempty" json:"maintenanceAnnual,omitempty"`
	BrokerageCostPct     *float64 `yaml:"brokerageCostPct,omitempty" json:"brokerageCostPct,omitempty"`
	RegistrationCostPct  *float64 `yaml:"registrationCostPct,omitempty" json:"registrationCostPct,omitempty"`

	MonthlyRent   *float64 `yaml:"monthlyRent,omitempty" json:"monthlyRent,omitempty"`
	RentGrowthPct *float64 `yaml:"rentGrowthPct,omitempty" json:"rentGrowthPct,omitempty"`

	TaxRatePct        *float64 `yaml:"taxRatePct,omitempty" json:"taxRatePct,omitempty"`
	StandardDeduction *float64 `yaml:"standardDeduction,omitempty" json:"standardDeduction,omitempty"`

	StocksEnabled                *bool    `yaml:"stocksEnabled,omitempty" json:"stocksEnabled,omitempty"`
	IncludeDownPaymentGrowth     *bool    `yaml:"includeDownPaymentGrowth,omitempty" json:"includeDownPaymentGrowth,omitempty"`
	StockGrowthPct               *float64 `yaml:"stockGrowthPct,omitempty" json:"stockGrowthPct,omitempty"`
	CapitalGainsTaxRatePct       *float64 `yaml:"capitalGainsTaxRatePct,omitempty" json:"capitalGainsTaxRatePct,omitempty"`
	CapitalGainsExemptionEnabled *bool    `yaml:"capitalGainsExemptionEnabled,omitempty" json:"capitalGainsExemptionEnabled,omitempty"`
}

// Merge returns p with every value set in override replacing p's.
func (p Parameters) Merge(override Parameters) Parameters {
	return Parameters{
		Years:                        pick(override.Years, p.Years),
		HomePrice:                    pick(override.HomePrice, p.HomePrice),
		DownPaymentPct:               pick(override.DownPaymentPct, p.DownPaymentPct),
		APR:                          pick(override.APR, p.APR),
		PropertyTaxRatePct:           pick(override.PropertyTaxRatePct, p.PropertyTaxRatePct),
		PropertyTaxGrowthPct:         pick(override.PropertyTaxGrowthPct, p.PropertyTaxGrowthPct),
		HouseGrowthPct:               pick(override.HouseGrowthPct, p.HouseGrowthPct),
		MaintenanceAnnual:            pick(override.MaintenanceAnnual, p.MaintenanceAnnual),
		BrokerageCostPct:             pick(override.BrokerageCostPct, p.BrokerageCostPct),
		RegistrationCostPct:          pick(override.RegistrationCostPct, p.RegistrationCostPct),
		MonthlyRent:                  pick(override.MonthlyRent, p.MonthlyRent),
		RentGrowthPct:                pick(override.RentGrowthPct, p.RentGrowthPct),
		TaxRatePct:                   pick(override.TaxRatePct, p.TaxRatePct),
		StandardDeduction:            pick(override.StandardDeduction, p.StandardDeduction),
		StocksEnabled:                pick(override.StocksEnabled, p.StocksEnabled),
		IncludeDownPaymentGrowth:     pick(override.IncludeDownPaymentGrowth, p.IncludeDownPaymentGrowth),
		StockGrowthPct:               pick(override.StockGrowthPct, p.StockGrowthPct),
		CapitalGainsTaxRatePct:       pick(override.CapitalGainsTaxRatePct, p.CapitalGainsTaxRatePct),
		CapitalGainsExemptionEnabled: pick(override.CapitalGainsExemptionEnabled, p.CapitalGainsExemptionEnabled),
	}
}

// Float returns a pointer to v for building Parameters in code.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

func pick[T any](override, base *T) *T {
	if override != nil {
		return override
	}
	return base
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
