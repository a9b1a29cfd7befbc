package analysis

import (
	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/iwvelando/rent-or-own/pkg/loans"
	"github.com/iwvelando/rent-or-own/pkg/mathutil"
)

// GenerateMortgageSchedule produces one MortgageRecord per year of the
// analysis horizon. The payment is always computed over the fixed 30-year term
// even when the horizon is shorter or longer; after payoff the balance stays at
// zero and no further principal or interest is recorded.
func GenerateMortgageSchedule(inputs Inputs) ([]MortgageRecord, error) {
	loanAmount := inputs.LoanAmount()
	monthlyPayment, err := loans.MonthlyPayment(loanAmount, inputs.APR, constants.MortgageTermYears)
	if err != nil {
		return nil, err
	}
	annualPayment := monthlyPayment * constants.MonthsPerYear

	balance := loanAmount
	homeValue := inputs.HomePrice
	// Property tax compounds from the purchase price, independently of the
	// home's appreciation.
	taxBase := inputs.HomePrice

	schedule := make([]MortgageRecord, 0, inputs.Years)
	for year := 1; year <= inputs.Years; year++ {
		step := loans.AmortizeYear(balance, annualPayment, inputs.APR)
		startBalance := balance
		balance = step.RemainingBalance

		homeValue *= mathutil.GrowthFactor(inputs.HouseGrowthPct)
		taxBase *= mathutil.GrowthFactor(inputs.PropertyTaxGrowthPct)

		deductible := loans.DeductibleInterest(step.Interest, startBalance, constants.DeductiblePrincipalLimit)

		schedule = append(schedule, MortgageRecord{
			Year:                      year,
			MonthlyPayment:            monthlyPayment,
			PrincipalPaid:             step.Principal,
			InterestPaid:              step.Interest,
			DeductibleInterest:        deductible,
			InterestTaxSavings:        mathutil.ApplyPercentage(deductible, inputs.TaxRatePct),
			TotalPrincipalAndInterest: step.Principal + step.Interest,
			PropertyTax:               mathutil.ApplyPercentage(taxBase, inputs.PropertyTaxRatePct),
			RemainingBalance:          balance,
			HomeValue:                 homeValue,
		})
	}

	return schedule, nil
}
