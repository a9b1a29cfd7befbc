package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/iwvelando/rent-or-own/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigPath = "../../test/test_config.yaml"

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Test fixture",
			configPath: testConfigPath,
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationStructure(t *testing.T) {
	config, err := LoadConfiguration(testConfigPath)
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
	assert.Equal(t, "pretty", config.Output.Format)

	require.NotNil(t, config.Common.Years)
	assert.Equal(t, 5, *config.Common.Years)
	require.NotNil(t, config.Common.HomePrice)
	assert.Equal(t, 1500000.0, *config.Common.HomePrice)
	require.NotNil(t, config.Common.StocksEnabled)
	assert.True(t, *config.Common.StocksEnabled)

	expectedScenarios := []string{"rent and invest", "rent without investing", "larger down payment", "retirement horizon"}
	require.Len(t, config.Scenarios, len(expectedScenarios))
	for i, expectedName := range expectedScenarios {
		assert.Equal(t, expectedName, config.Scenarios[i].Name)
	}

	assert.Nil(t, config.Scenarios[0].HomePrice, "scenario without overrides should leave values unset")
	require.NotNil(t, config.Scenarios[1].StocksEnabled)
	assert.False(t, *config.Scenarios[1].StocksEnabled)
	require.NotNil(t, config.Scenarios[2].DownPaymentPct)
	assert.Equal(t, 40.0, *config.Scenarios[2].DownPaymentPct)
	assert.False(t, config.Scenarios[3].Active)

	active := config.ActiveScenarios()
	require.Len(t, active, 3)
	assert.Equal(t, "larger down payment", active[2].Name)
}

func TestLoadConfigurationFromReader(t *testing.T) {
	yamlConfig := `
common:
  years: 10
  homePrice: 800000
  downPaymentPct: 25
  apr: 6.5
  propertyTaxRatePct: 1.1
  houseGrowthPct: 3
  monthlyRent: 3200
  rentGrowthPct: 3
  taxRatePct: 24
scenarios:
  - name: base
    active: true
  - name: cheaper rent
    active: true
    monthlyRent: 2800
`
	config, err := LoadConfigurationFromReader(strings.NewReader(yamlConfig))
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)

	inputs, err := config.ResolveScenario(config.Scenarios[1])
	require.NoError(t, err)
	assert.Equal(t, 10, inputs.Years)
	assert.Equal(t, 2800.0, inputs.MonthlyRent)
	assert.Equal(t, 800000.0, inputs.HomePrice)
}

func TestLoadConfigurationFromReaderInvalidYAML(t *testing.T) {
	_, err := LoadConfigurationFromReader(strings.NewReader("common: [unterminated"))
	assert.Error(t, err)
}

func TestResolveScenarioAppliesDefaults(t *testing.T) {
	config := Configuration{
		Common: Parameters{
			Years:              Int(5),
			HomePrice:          Float(1500000),
			DownPaymentPct:     Float(20),
			APR:                Float(5.75),
			PropertyTaxRatePct: Float(1.25),
			HouseGrowthPct:     Float(3),
			MonthlyRent:        Float(4500),
			RentGrowthPct:      Float(5),
			TaxRatePct:         Float(35),
		},
	}

	inputs, err := config.ResolveScenario(Scenario{Name: "defaults", Active: true})
	require.NoError(t, err)

	assert.Equal(t, 2.0, inputs.PropertyTaxGrowthPct)
	assert.Equal(t, 20.0, inputs.CapitalGainsTaxRatePct)
	assert.Equal(t, 8.0, inputs.StockGrowthPct)
	assert.True(t, inputs.IncludeDownPaymentGrowth)
	assert.True(t, inputs.CapitalGainsExemptionEnabled)
	assert.False(t, inputs.StocksEnabled)
	assert.Equal(t, 0.0, inputs.MaintenanceAnnual)
	assert.Equal(t, 0.0, inputs.BrokerageCostPct)
	assert.Equal(t, 0.0, inputs.RegistrationCostPct)
	assert.Equal(t, 0.0, inputs.StandardDeduction)
}

func TestResolveScenarioOverridesCommon(t *testing.T) {
	config, err := LoadConfiguration(testConfigPath)
	require.NoError(t, err)

	base, err := config.ResolveScenario(config.Scenarios[0])
	require.NoError(t, err)
	noStocks, err := config.ResolveScenario(config.Scenarios[1])
	require.NoError(t, err)
	larger, err := config.ResolveScenario(config.Scenarios[2])
	require.NoError(t, err)

	assert.True(t, base.StocksEnabled)
	assert.False(t, noStocks.StocksEnabled)
	assert.Equal(t, 20.0, base.DownPaymentPct)
	assert.Equal(t, 40.0, larger.DownPaymentPct)
	assert.Equal(t, base.APR, larger.APR)

	// Overrides do not leak into the shared common block.
	assert.Equal(t, 20.0, *config.Common.DownPaymentPct)
}

func TestResolveScenarioMissingRequired(t *testing.T) {
	config := Configuration{
		Common: Parameters{
			Years:     Int(5),
			HomePrice: Float(1500000),
		},
	}

	_, err := config.ResolveScenario(Scenario{Name: "incomplete", Active: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrInvalidInput))
	assert.Contains(t, err.Error(), `scenario "incomplete"`)
	for _, field := range []string{"downPaymentPct", "apr", "propertyTaxRatePct", "houseGrowthPct", "monthlyRent", "rentGrowthPct", "taxRatePct"} {
		assert.Contains(t, err.Error(), field)
	}
	assert.NotContains(t, err.Error(), "homePrice")

	var inputErr *validation.InputError
	require.True(t, errors.As(err, &inputErr))
}

func TestResolveScenarioOutOfDomain(t *testing.T) {
	config, err := LoadConfiguration(testConfigPath)
	require.NoError(t, err)

	scenario := Scenario{Name: "bad", Active: true, Parameters: Parameters{DownPaymentPct: Float(150)}}
	_, err = config.ResolveScenario(scenario)
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrInvalidInput)
	assert.Contains(t, err.Error(), "downPaymentPct")
}

func TestValidateConfiguration(t *testing.T) {
	config, err := LoadConfiguration(testConfigPath)
	require.NoError(t, err)

	// The only long horizon is inactive.
	assert.Empty(t, config.ValidateConfiguration())

	config.Scenarios[3].Active = true
	warnings := config.ValidateConfiguration()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "retirement horizon")
	assert.Contains(t, warnings[0], "recommended maximum")
}

func TestValidateConfigurationUsesMergedValues(t *testing.T) {
	config := Configuration{
		Common: Parameters{Years: Int(35), DownPaymentPct: Float(20)},
		Scenarios: []Scenario{
			{Name: "inherits long horizon", Active: true},
			{Name: "short", Active: true, Parameters: Parameters{Years: Int(10), DownPaymentPct: Float(0)}},
		},
	}

	warnings := config.ValidateConfiguration()
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "inherits long horizon")
	assert.Contains(t, warnings[1], "no down payment")
}

func TestMerge(t *testing.T) {
	common := Parameters{Years: Int(5), APR: Float(6), StocksEnabled: Bool(true)}
	override := Parameters{APR: Float(7), StocksEnabled: Bool(false)}

	merged := common.Merge(override)
	assert.Equal(t, 5, *merged.Years)
	assert.Equal(t, 7.0, *merged.APR)
	assert.False(t, *merged.StocksEnabled)
	assert.Nil(t, merged.HomePrice)
	assert.Equal(t, 6.0, *common.APR)
}
