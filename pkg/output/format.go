// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/rent-or-own/internal/analysis"
	"github.com/iwvelando/rent-or-own/internal/forecast"
	"github.com/iwvelando/rent-or-own/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes human-readable tables and a verdict for each scenario.
func PrettyFormat(w io.Writer, results []forecast.Forecast) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name)

		fmt.Fprintf(w, "Mortgage\n")
		fmt.Fprintf(w, "Year | Principal | Interest | Deductible Interest | Tax Savings | Property Tax | Balance | Home Value\n")
		fmt.Fprintf(w, "____ | _________ | ________ | ___________________ | ___________ | ____________ | _______ | __________\n")
		for _, rec := range result.Mortgage {
			_, _ = p.Fprintf(w, "%d | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
				rec.Year, rec.PrincipalPaid, rec.InterestPaid, rec.DeductibleInterest, rec.InterestTaxSavings,
				rec.PropertyTax, rec.RemainingBalance, rec.HomeValue)
		}

		fmt.Fprintf(w, "\nRent\n")
		if hasInvestments(result.Rent) {
			fmt.Fprintf(w, "Year | Monthly Rent | Annual Rent | EMI-Rent Diff | Down Payment Value | EMI Diff Investment | Total Investment\n")
			fmt.Fprintf(w, "____ | ____________ | ___________ | _____________ | __________________ | ___________________ | ________________\n")
		} else {
			fmt.Fprintf(w, "Year | Monthly Rent | Annual Rent | EMI-Rent Diff\n")
			fmt.Fprintf(w, "____ | ____________ | ___________ | _____________\n")
		}
		for _, rec := range result.Rent {
			switch r := rec.(type) {
			case analysis.InvestedRentRecord:
				_, _ = p.Fprintf(w, "%d | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
					r.Year, r.MonthlyRent, r.AnnualRent, r.EMIRentDiff, r.DownPaymentValue,
					r.EMIDiffInvestmentValue, r.TotalInvestmentValue)
			default:
				base := rec.Base()
				_, _ = p.Fprintf(w, "%d | $%.2f | $%.2f | $%.2f\n",
					base.Year, base.MonthlyRent, base.AnnualRent, base.EMIRentDiff)
			}
		}

		writeSummary(w, result.Summary)
	}
}

func writeSummary(w io.Writer, s analysis.Summary) {
	fmt.Fprintf(w, "\nSummary\n")
	for _, line := range summaryLines(s) {
		fmt.Fprintf(w, "%-34s %s\n", line.label+":", format.Currency(line.value))
	}
	fmt.Fprintf(w, "%-34s %s\n", "Deduction strategy:", s.DeductionStrategy)
	fmt.Fprintf(w, "\n%s is cheaper by %s\n", s.Winner, format.Currency(s.Savings))
}

type summaryLine struct {
	label string
	value float64
}

func summaryLines(s analysis.Summary) []summaryLine {
	return []summaryLine{
		{"Total rent", s.TotalRent},
		{"Total interest", s.TotalInterest},
		{"Total principal", s.TotalPrincipal},
		{"Total property tax", s.TotalPropertyTax},
		{"Total maintenance", s.TotalMaintenance},
		{"Total selling costs", s.TotalSellingCosts},
		{"Final home value", s.FinalHomeValue},
		{"Home sale gains", s.HomeSaleGains},
		{"Net sale proceeds", s.NetSaleProceeds},
		{"Interest tax savings", s.TotalInterestTaxSavings},
		{"Home capital gains exemption", s.CapitalGainsTaxSavings},
		{"Stock investment gains", s.StockInvestmentGains},
		{"Capital gains tax owed", s.CapitalGainsTaxOwed},
		{"Rental standard deduction benefit", s.RentalStandardDeductionBenefit},
		{"Deduction benefit", s.DeductionBenefit},
		{"Ownership net cost", s.OwnershipNetCost},
		{"Rent net cost", s.RentNetCost},
	}
}

func hasInvestments(records []analysis.RentRecord) bool {
	return len(records) > 0 && records[0].Kind() == analysis.RentRecordInvested
}

var csvHeader = []string{
	"year", "monthly payment", "principal", "interest", "deductible interest",
	"interest tax savings", "property tax", "remaining balance", "home value",
	"monthly rent", "annual rent", "emi-rent diff", "contribution",
	"down payment value", "emi diff investment", "total investment",
}

// CsvFormat writes one comma-separated block per scenario: a yearly table
// followed by the summary metrics.
func CsvFormat(w io.Writer, results []forecast.Forecast) {
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, `"scenario","%s"`+"\n", escape(result.Name))
		fmt.Fprintln(w, quoteAll(csvHeader))

		for j, rec := range result.Mortgage {
			row := []string{
				fmt.Sprintf("%d", rec.Year),
				format.Fixed(rec.MonthlyPayment),
				format.Fixed(rec.PrincipalPaid),
				format.Fixed(rec.InterestPaid),
				format.Fixed(rec.DeductibleInterest),
				format.Fixed(rec.InterestTaxSavings),
				format.Fixed(rec.PropertyTax),
				format.Fixed(rec.RemainingBalance),
				format.Fixed(rec.HomeValue),
			}
			row = append(row, rentColumns(result.Rent, j)...)
			fmt.Fprintln(w, quoteAll(row))
		}

		fmt.Fprintln(w, quoteAll([]string{"metric", "value"}))
		for _, line := range summaryLines(result.Summary) {
			fmt.Fprintln(w, quoteAll([]string{strings.ToLower(line.label), format.Fixed(line.value)}))
		}
		fmt.Fprintln(w, quoteAll([]string{"deduction strategy", string(result.Summary.DeductionStrategy)}))
		fmt.Fprintln(w, quoteAll([]string{"winner", string(result.Summary.Winner)}))
		fmt.Fprintln(w, quoteAll([]string{"savings", format.Fixed(result.Summary.Savings)}))
	}
}

func rentColumns(records []analysis.RentRecord, i int) []string {
	if i >= len(records) {
		return make([]string, 7)
	}
	switch r := records[i].(type) {
	case analysis.InvestedRentRecord:
		return []string{
			format.Fixed(r.MonthlyRent), format.Fixed(r.AnnualRent), format.Fixed(r.EMIRentDiff),
			format.Fixed(r.Contribution), format.Fixed(r.DownPaymentValue),
			format.Fixed(r.EMIDiffInvestmentValue), format.Fixed(r.TotalInvestmentValue),
		}
	default:
		base := r.Base()
		return []string{
			format.Fixed(base.MonthlyRent), format.Fixed(base.AnnualRent), format.Fixed(base.EMIRentDiff),
			"", "", "", "",
		}
	}
}

// CsvString returns the CSV rendering of results as a string.
func CsvString(results []forecast.Forecast) string {
	var builder strings.Builder
	CsvFormat(&builder, results)
	return builder.String()
}

// JSONFormat writes results as indented JSON.
func JSONFormat(w io.Writer, results []forecast.Forecast) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if results == nil {
		results = []forecast.Forecast{}
	}
	return encoder.Encode(results)
}

func quoteAll(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + escape(field) + `"`
	}
	return strings.Join(quoted, ",")
}

func escape(field string) string {
	return strings.ReplaceAll(field, `"`, `""`)
}
