package analysis

import (
	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/iwvelando/rent-or-own/pkg/finance"
	"github.com/iwvelando/rent-or-own/pkg/mathutil"
)

// GenerateRentSchedule produces one RentRecord per year. monthlyPayment is the
// mortgage payment the renter would otherwise make; the positive part of the
// difference to rent is invested when stocks are enabled. Records are
// InvestedRentRecord values in that case and BasicRentRecord values otherwise.
func GenerateRentSchedule(inputs Inputs, monthlyPayment float64) []RentRecord {
	downPayment := inputs.DownPayment()
	account := finance.NewContributionAccount(inputs.StockGrowthPct)
	currentRent := inputs.MonthlyRent

	schedule := make([]RentRecord, 0, inputs.Years)
	for year := 1; year <= inputs.Years; year++ {
		diff := monthlyPayment - currentRent
		base := RentYear{
			Year:              year,
			MonthlyRent:       currentRent,
			AnnualRent:        currentRent * constants.MonthsPerYear,
			EMIRentDiff:       diff,
			AnnualEMIRentDiff: diff * constants.MonthsPerYear,
		}

		if !inputs.StocksEnabled {
			schedule = append(schedule, BasicRentRecord{RentYear: base})
		} else {
			contribution := finance.InvestableContribution(diff)
			dpValue := finance.DownPaymentValue(downPayment, inputs.StockGrowthPct, year, inputs.IncludeDownPaymentGrowth)
			emiValue := account.Advance(contribution)
			schedule = append(schedule, InvestedRentRecord{
				RentYear:               base,
				Contribution:           contribution,
				DownPaymentValue:       dpValue,
				EMIDiffInvestmentValue: emiValue,
				TotalInvestmentValue:   dpValue + emiValue,
			})
		}

		currentRent *= mathutil.GrowthFactor(inputs.RentGrowthPct)
	}

	return schedule
}
