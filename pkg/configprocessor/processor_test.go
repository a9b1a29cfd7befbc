package configprocessor

import (
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestNewProcessor(t *testing.T) {
	processor := NewProcessor()
	if processor == nil {
		t.Error("NewProcessor() returned nil")
	}
}

func TestProcessor_ValidateConfiguration(t *testing.T) {
	processor := NewProcessor()

	tests := []struct {
		name             string
		scenarios        []ScenarioInfo
		expectedWarnings int
		contains         string
	}{
		{
			name: "Valid configuration",
			scenarios: []ScenarioInfo{
				{Name: "Base", Active: true, Years: intPtr(10), DownPaymentPct: floatPtr(20)},
				{Name: "Cheaper", Active: true, Years: intPtr(5), DownPaymentPct: floatPtr(25)},
			},
			expectedWarnings: 0,
		},
		{
			name: "Horizon above recommended maximum",
			scenarios: []ScenarioInfo{
				{Name: "Forever", Active: true, Years: intPtr(60), DownPaymentPct: floatPtr(20)},
			},
			expectedWarnings: 1,
			contains:         "recommended maximum of 50",
		},
		{
			name: "Horizon past mortgage term",
			scenarios: []ScenarioInfo{
				{Name: "Long", Active: true, Years: intPtr(35), DownPaymentPct: floatPtr(20)},
			},
			expectedWarnings: 1,
			contains:         "30-year mortgage term",
		},
		{
			name: "Zero down payment",
			scenarios: []ScenarioInfo{
				{Name: "No Down", Active: true, Years: intPtr(5), DownPaymentPct: floatPtr(0)},
			},
			expectedWarnings: 1,
			contains:         "no down payment",
		},
		{
			name: "Inactive scenarios are not checked",
			scenarios: []ScenarioInfo{
				{Name: "Active", Active: true, Years: intPtr(5)},
				{Name: "Off", Active: false, Years: intPtr(80), DownPaymentPct: floatPtr(0)},
			},
			expectedWarnings: 0,
		},
		{
			name: "No active scenarios",
			scenarios: []ScenarioInfo{
				{Name: "Off", Active: false},
			},
			expectedWarnings: 1,
			contains:         "No active scenarios",
		},
		{
			name:             "Empty configuration",
			scenarios:        nil,
			expectedWarnings: 1,
			contains:         "No active scenarios",
		},
		{
			name: "Duplicate names",
			scenarios: []ScenarioInfo{
				{Name: "Base", Active: true},
				{Name: "Base", Active: true},
				{Name: "Base", Active: false},
			},
			expectedWarnings: 1,
			contains:         "used more than once",
		},
		{
			name: "Unset values produce no horizon warnings",
			scenarios: []ScenarioInfo{
				{Name: "Sparse", Active: true},
			},
			expectedWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := processor.ValidateConfiguration(tt.scenarios)

			if len(warnings) != tt.expectedWarnings {
				t.Errorf("ValidateConfiguration() returned %d warnings, expected %d: %v", len(warnings), tt.expectedWarnings, warnings)
			}
			if tt.contains != "" && (len(warnings) == 0 || !strings.Contains(warnings[0], tt.contains)) {
				t.Errorf("expected first warning to contain %q, got %v", tt.contains, warnings)
			}
		})
	}
}

func TestProcessor_NoWarningsReturnsNil(t *testing.T) {
	warnings := NewProcessor().ValidateConfiguration([]ScenarioInfo{{Name: "Base", Active: true}})
	if warnings != nil {
		t.Errorf("expected nil warnings, got %v", warnings)
	}
}
