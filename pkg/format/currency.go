// Package format renders monetary values for display.
package format

import (
	"strconv"
	"strings"

	"github.com/iwvelando/rent-or-own/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	sign, formatted := split(amount)
	return sign + "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign, formatted := split(amount)
	return sign + formatted
}

// Fixed returns amount rounded half away from zero to two decimals with no
// separators (e.g., "-1234.56"), suitable for machine-readable output.
func Fixed(amount float64) string {
	if !mathutil.IsFinite(amount) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// Percent renders a percent value such as 5.75 as "5.75%".
func Percent(pct float64) string {
	return Fixed(pct) + "%"
}

func split(amount float64) (string, string) {
	if !mathutil.IsFinite(amount) {
		return "", strconv.FormatFloat(amount, 'f', -1, 64)
	}

	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign, group(d.Abs().StringFixed(2))
}

func group(fixed string) string {
	intPart, decPart, _ := strings.Cut(fixed, ".")
	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}
	return intPart + "." + decPart
}
