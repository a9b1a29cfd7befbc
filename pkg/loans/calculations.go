// Package loans provides common loan processing utilities.
package loans

import (
	"math"

	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/iwvelando/rent-or-own/pkg/mathutil"
	"github.com/iwvelando/rent-or-own/pkg/validation"
)

// YearStep holds the outcome of applying one year of payments to a loan.
type YearStep struct {
	Interest         float64
	Principal        float64
	RemainingBalance float64
}

// MonthlyPayment calculates the fixed monthly payment for a loan using the
// standard amortization formula. A zero rate spreads the principal evenly over
// the term. Negative principal or rate and a non-positive term are rejected
// with validation.ErrInvalidInput; values are never clamped.
func MonthlyPayment(principal, annualInterestRate float64, termYears int) (float64, error) {
	if err := validation.CheckNonNegative("principal", principal); err != nil {
		return 0, err
	}
	if err := validation.CheckNonNegative("annualInterestRate", annualInterestRate); err != nil {
		return 0, err
	}
	if err := validation.CheckPositiveInt("termYears", termYears); err != nil {
		return 0, err
	}

	termMonths := float64(termYears * constants.MonthsPerYear)
	if principal == 0 {
		return 0, nil
	}
	if annualInterestRate == 0 {
		return principal / termMonths, nil
	}

	periodicInterestRate := annualInterestRate / constants.PercentageMultiplier / constants.MonthsPerYear
	power := math.Pow(1+periodicInterestRate, termMonths)
	return principal * (periodicInterestRate * power) / (power - 1), nil
}

// AnnualInterest is the interest charged once on the start-of-year balance.
func AnnualInterest(balance, annualInterestRate float64) float64 {
	return mathutil.ApplyPercentage(balance, annualInterestRate)
}

// AmortizeYear applies a year of payments to balance. Interest accrues once
// on the start-of-year balance rather than compounding monthly. Principal never
// exceeds the outstanding balance and the remaining balance is floored at 0.
func AmortizeYear(balance, annualPayment, annualInterestRate float64) YearStep {
	interest := AnnualInterest(balance, annualInterestRate)
	principal := mathutil.Min(annualPayment-interest, balance)
	return YearStep{
		Interest:         interest,
		Principal:        principal,
		RemainingBalance: mathutil.Max(0, balance-principal),
	}
}

// DeductibleInterest returns the part of interest attributable to the first
// limit dollars of principalBasis. A zero basis deducts the full interest.
func DeductibleInterest(interest, principalBasis, limit float64) float64 {
	if principalBasis <= 0 || principalBasis <= limit {
		return interest
	}
	return interest * (limit / principalBasis)
}
