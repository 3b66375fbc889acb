package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// DefaultAssumptions lists the modelling assumptions behind the built-in rates.
var DefaultAssumptions = GenerateAssumptions(domain.DefaultRateTable())

// GenerateAssumptions describes the assumptions a rate table implies.
func GenerateAssumptions(rates domain.RateTable) []string {
	return []string{
		fmt.Sprintf("Rates: %s tax year, rest-of-UK income tax bands", rates.TaxYear),
		fmt.Sprintf("Past %d years: current annual total held flat", rates.Projection.Years),
		fmt.Sprintf("Next %d years: %s%% annual growth, compounded", rates.Projection.Years, percent(rates.Projection.GrowthRate)),
		fmt.Sprintf("VAT: %s%% standard, %s%% reduced on domestic energy", percent(rates.VAT.Standard), percent(rates.VAT.Reduced)),
		fmt.Sprintf("Landlord pass-through: %s%% of rent", percent(rates.LandlordPassthrough.Rate)),
		"Stamp duty is a one-off charge and is excluded from annual totals",
	}
}

func percent(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).String()
}

var decimalHundred = decimal.NewFromInt(100)
