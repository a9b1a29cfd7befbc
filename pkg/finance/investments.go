// Package finance models the investment side of the rent-and-invest
// alternative: the invested down payment and the yearly contributions made
// from the mortgage-payment-minus-rent differential.
package finance

import (
	"math"

	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/iwvelando/rent-or-own/pkg/mathutil"
)

// DownPaymentValue returns the value of the invested down payment at the end
// of the given year. With growth excluded the value stays frozen at the
// original amount; it is never dropped from the total.
func DownPaymentValue(downPayment, annualReturnRate float64, year int, includeGrowth bool) float64 {
	if !includeGrowth {
		return downPayment
	}
	return downPayment * math.Pow(mathutil.GrowthFactor(annualReturnRate), float64(year))
}

// InvestableContribution converts a signed monthly differential into the
// annual amount that gets invested. Only the positive part is invested.
func InvestableContribution(monthlyDifferential float64) float64 {
	return mathutil.Max(0, monthlyDifferential) * constants.MonthsPerYear
}

// ContributionAccount accumulates yearly contributions that compound annually.
// A contribution earns no growth in the year it is made.
type ContributionAccount struct {
	annualReturnRate float64
	value            float64
}

// NewContributionAccount creates an empty account growing at annualReturnRate percent.
func NewContributionAccount(annualReturnRate float64) *ContributionAccount {
	return &ContributionAccount{annualReturnRate: annualReturnRate}
}

// Advance closes out one year: the existing balance grows, then contribution
// is added. It returns the year-end value.
func (a *ContributionAccount) Advance(contribution float64) float64 {
	a.value = a.value*mathutil.GrowthFactor(a.annualReturnRate) + contribution
	return a.value
}
