// Package configprocessor provides shared configuration processing utilities.
package configprocessor

import (
	"fmt"
	"strings"

	"github.com/iwvelando/rent-or-own/pkg/constants"
)

// ScenarioInfo represents the resolved scenario figures that warnings are
// derived from. Nil pointers mean the value is not set anywhere.
type ScenarioInfo struct {
	Name           string
	Active         bool
	Years          *int
	DownPaymentPct *float64
}

// Processor handles configuration processing and validation
type Processor struct {
	maxYears  int
	termYears int
}

// NewProcessor creates a new configuration processor
func NewProcessor() *Processor {
	return &Processor{
		maxYears:  constants.RecommendedMaxYears,
		termYears: constants.MortgageTermYears,
	}
}

// ValidateConfiguration validates the configuration and returns warnings.
// Warnings never prevent an analysis from running.
func (p *Processor) ValidateConfiguration(scenarios []ScenarioInfo) []string {
	var warnings []string

	seen := make(map[string]int)
	active := 0
	for _, scenario := range scenarios {
		key := strings.TrimSpace(scenario.Name)
		seen[key]++
		if seen[key] == 2 {
			warnings = append(warnings, fmt.Sprintf("Scenario name '%s' is used more than once", scenario.Name))
		}

		if !scenario.Active {
			continue // Skip inactive scenarios
		}
		active++

		if scenario.Years != nil {
			years := *scenario.Years
			if years > p.maxYears {
				warnings = append(warnings, fmt.Sprintf("Scenario '%s' horizon of %d years exceeds the recommended maximum of %d", scenario.Name, years, p.maxYears))
			} else if years > p.termYears {
				warnings = append(warnings, fmt.Sprintf("Scenario '%s' horizon of %d years extends past the %d-year mortgage term", scenario.Name, years, p.termYears))
			}
		}

		if scenario.DownPaymentPct != nil && *scenario.DownPaymentPct == 0 {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' has no down payment; nothing is invested up front when renting", scenario.Name))
		}
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios; nothing will be analyzed")
	}

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}
