// Package config defines the data structures related to configuration and
// includes functions for loading and resolving scenario files.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/rent-or-own/pkg/configprocessor"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for rent-or-own.
type Configuration struct {
	Logging   LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty" json:"output,omitempty"`
	Common    Parameters    `yaml:"common" json:"common"`
	Scenarios []Scenario    `yaml:"scenarios" json:"scenarios"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level,omitempty"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // pretty, csv, json
}

// Scenario is a named set of parameter overrides on top of Common.
type Scenario struct {
	Name       string `yaml:"name" json:"name"`
	Active     bool   `yaml:"active" json:"active"`
	Parameters `mapstructure:",squash" yaml:",inline"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

// A fresh instance per load keeps concurrent loads (e.g. HTTP requests) from
// sharing state through the global viper.
func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetConfigType("yml")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// ActiveScenarios returns the active scenarios in configuration order.
func (c *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	scenarios := make([]configprocessor.ScenarioInfo, 0, len(c.Scenarios))
	for _, scenario := range c.Scenarios {
		merged := c.Common.Merge(scenario.Parameters)
		scenarios = append(scenarios, configprocessor.ScenarioInfo{
			Name:           scenario.Name,
			Active:         scenario.Active,
			Years:          merged.Years,
			DownPaymentPct: merged.DownPaymentPct,
		})
	}

	processor := configprocessor.NewProcessor()
	return processor.ValidateConfiguration(scenarios)
}
