package loans

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/iwvelando/rent-or-own/pkg/validation"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name               string
		principal          float64
		annualInterestRate float64
		termYears          int
		expectedRange      []float64 // [min, max] expected range
	}{
		{
			name:               "Standard 30-year mortgage",
			principal:          240000,
			annualInterestRate: 6.0,
			termYears:          30,
			expectedRange:      []float64{1438.92, 1438.93}, // 1438.9213
		},
		{
			name:               "Jumbo loan",
			principal:          1200000,
			annualInterestRate: 5.75,
			termYears:          30,
			expectedRange:      []float64{7002.87, 7002.88}, // 7002.8743
		},
		{
			name:               "High interest short loan",
			principal:          10000,
			annualInterestRate: 18.0,
			termYears:          3,
			expectedRange:      []float64{361.52, 361.53},
		},
		{
			name:               "50-year term",
			principal:          1000000,
			annualInterestRate: 6.0,
			termYears:          50,
			expectedRange:      []float64{5264.04, 5264.05},
		},
		{
			name:               "Zero principal",
			principal:          0,
			annualInterestRate: 5.0,
			termYears:          30,
			expectedRange:      []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MonthlyPayment(tt.principal, tt.annualInterestRate, tt.termYears)
			if err != nil {
				t.Fatalf("MonthlyPayment() unexpected error = %v", err)
			}

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("MonthlyPayment() = %.4f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestMonthlyPaymentZeroRate(t *testing.T) {
	result, err := MonthlyPayment(120000, 0, 30)
	if err != nil {
		t.Fatalf("MonthlyPayment() unexpected error = %v", err)
	}
	if result != 120000.0/360.0 {
		t.Errorf("MonthlyPayment() = %v, expected exactly %v", result, 120000.0/360.0)
	}
}

func TestMonthlyPaymentInvalidInput(t *testing.T) {
	tests := []struct {
		name               string
		principal          float64
		annualInterestRate float64
		termYears          int
	}{
		{"Negative principal", -1, 5, 30},
		{"Negative rate", 100000, -0.5, 30},
		{"Zero term", 100000, 5, 0},
		{"NaN principal", math.NaN(), 5, 30},
		{"Infinite rate", 100000, math.Inf(1), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MonthlyPayment(tt.principal, tt.annualInterestRate, tt.termYears)
			if err == nil {
				t.Fatal("MonthlyPayment() expected error but got none")
			}
			if !errors.Is(err, validation.ErrInvalidInput) {
				t.Errorf("MonthlyPayment() error = %v, expected ErrInvalidInput", err)
			}
		})
	}
}

// A true month-by-month amortization over the full term pays back the
// principal plus all accrued interest.
func TestMonthlyPaymentAmortizesFullTerm(t *testing.T) {
	tests := []struct {
		principal float64
		rate      float64
	}{
		{1200000, 5.75},
		{250000, 3.0},
		{500000, 9.5},
	}

	for _, tt := range tests {
		payment, err := MonthlyPayment(tt.principal, tt.rate, constants.MortgageTermYears)
		if err != nil {
			t.Fatalf("MonthlyPayment() unexpected error = %v", err)
		}

		balance := tt.principal
		totalInterest := 0.0
		for month := 0; month < constants.MortgageTermYears*constants.MonthsPerYear; month++ {
			interest := balance * tt.rate / (constants.PercentageMultiplier * constants.MonthsPerYear)
			totalInterest += interest
			balance -= payment - interest
		}

		totalPaid := payment * constants.MonthsPerYear * constants.MortgageTermYears
		if math.Abs(totalPaid-(tt.principal+totalInterest)) > constants.CurrencyTolerance {
			t.Errorf("principal %.0f at %.2f%%: total paid %.2f, principal+interest %.2f",
				tt.principal, tt.rate, totalPaid, tt.principal+totalInterest)
		}
		if math.Abs(balance) > constants.CurrencyTolerance {
			t.Errorf("principal %.0f at %.2f%%: remaining balance %.6f, expected 0", tt.principal, tt.rate, balance)
		}
	}
}

func TestAnnualInterest(t *testing.T) {
	tests := []struct {
		name               string
		balance            float64
		annualInterestRate float64
		expected           float64
	}{
		{"Jumbo loan first year", 1200000, 5.75, 69000},
		{"Standard mortgage", 200000, 6.0, 12000},
		{"Zero interest", 10000, 0, 0},
		{"Paid off", 0, 6.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnnualInterest(tt.balance, tt.annualInterestRate)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("AnnualInterest() = %.4f, expected %.4f", result, tt.expected)
			}
		})
	}
}

func TestAmortizeYear(t *testing.T) {
	tests := []struct {
		name              string
		balance           float64
		annualPayment     float64
		rate              float64
		expectedInterest  float64
		expectedPrincipal float64
		expectedRemaining float64
	}{
		{
			name:              "Regular year",
			balance:           100000,
			annualPayment:     12000,
			rate:              5,
			expectedInterest:  5000,
			expectedPrincipal: 7000,
			expectedRemaining: 93000,
		},
		{
			name:              "Final payoff year",
			balance:           3000,
			annualPayment:     12000,
			rate:              5,
			expectedInterest:  150,
			expectedPrincipal: 3000,
			expectedRemaining: 0,
		},
		{
			name:              "Already paid off",
			balance:           0,
			annualPayment:     12000,
			rate:              5,
			expectedInterest:  0,
			expectedPrincipal: 0,
			expectedRemaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := AmortizeYear(tt.balance, tt.annualPayment, tt.rate)
			if math.Abs(step.Interest-tt.expectedInterest) > 1e-9 {
				t.Errorf("Interest = %.2f, expected %.2f", step.Interest, tt.expectedInterest)
			}
			if math.Abs(step.Principal-tt.expectedPrincipal) > 1e-9 {
				t.Errorf("Principal = %.2f, expected %.2f", step.Principal, tt.expectedPrincipal)
			}
			if math.Abs(step.RemainingBalance-tt.expectedRemaining) > 1e-9 {
				t.Errorf("RemainingBalance = %.2f, expected %.2f", step.RemainingBalance, tt.expectedRemaining)
			}
			if step.RemainingBalance < 0 {
				t.Errorf("RemainingBalance went negative: %.2f", step.RemainingBalance)
			}
		})
	}
}

func TestDeductibleInterest(t *testing.T) {
	tests := []struct {
		name           string
		interest       float64
		principalBasis float64
		expected       float64
	}{
		{"Below cap deducts everything", 30000, 600000, 30000},
		{"At cap deducts everything", 43125, 750000, 43125},
		{"Above cap is prorated", 69000, 1200000, 43125},
		{"Zero basis falls back to full interest", 1234, 0, 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DeductibleInterest(tt.interest, tt.principalBasis, constants.DeductiblePrincipalLimit)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("DeductibleInterest() = %.4f, expected %.4f", result, tt.expected)
			}
		})
	}
}
