package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
	"github.com/taxfootprint/footprint-calculator/pkg/dateutil"
	money "github.com/taxfootprint/footprint-calculator/pkg/decimal"
)

// DisplayFunc derives a read-only display value from the current form. The
// presentation layer calls it again whenever any answer changes.
type DisplayFunc func(domain.FormInput) domain.DisplayValue

// Display keys.
const (
	DisplayLandlordTax = "landlordTaxPassthrough"
	DisplayLiveTax     = "liveTax"
)

// LandlordTaxDisplay explains how much of the monthly rent is estimated to
// cover taxes the landlord passes on. Amount is the annual figure.
func (e *Engine) LandlordTaxDisplay(f domain.FormInput) domain.DisplayValue {
	rent := positive(f.Decimal("monthlyRent"))
	monthly := money.NewMoneyFromDecimal(e.Landlord.Monthly(rent)).Round()
	annual := monthly.Annual()
	return domain.DisplayValue{
		Key:    DisplayLandlordTax,
		Amount: annual.Decimal,
		Text: fmt.Sprintf("Approximately %s per month (%s per year) of your rent is estimated "+
			"to cover taxes your landlord pays and passes on through the rent.",
			monthly.Format(), annual.Format()),
	}
}

// LiveTaxDisplay summarises the live estimate as a single line. Amount is the
// tax percentage.
func (e *Engine) LiveTaxDisplay(f domain.FormInput) domain.DisplayValue {
	live := e.LiveTaxPercentage(f)
	text := "Enter your income to see an estimate."
	if live.GrossIncome.IsPositive() {
		text = fmt.Sprintf("%s%% of your income goes on tax: %s of %s (net %s).",
			live.TaxPercentage.StringFixed(1),
			money.NewMoneyFromDecimal(live.TotalTax).FormatWhole(),
			money.NewMoneyFromDecimal(live.GrossIncome).FormatWhole(),
			money.NewMoneyFromDecimal(live.NetIncome).FormatWhole())
	}
	return domain.DisplayValue{Key: DisplayLiveTax, Amount: live.TaxPercentage, Text: text}
}

// DisplayBindings maps form field names to the functions that compute their
// display values.
func (e *Engine) DisplayBindings() map[string]DisplayFunc {
	return map[string]DisplayFunc{
		DisplayLandlordTax: e.LandlordTaxDisplay,
		DisplayLiveTax:     e.LiveTaxDisplay,
	}
}

// IncomeFromHours converts a working pattern to pay. Monthly pay spreads
// 52 weeks over 12 months; annual pay is rounded to the pound. Non-positive
// hours or rates give zeros.
func IncomeFromHours(hoursPerWeek, hourlyRate decimal.Decimal) domain.IncomeEstimate {
	if !hoursPerWeek.IsPositive() || !hourlyRate.IsPositive() {
		return domain.IncomeEstimate{Weekly: decimal.Zero, Monthly: decimal.Zero, Annual: decimal.Zero}
	}
	weekly := hoursPerWeek.Mul(hourlyRate)
	annual := weekly.Mul(decimal.NewFromInt(dateutil.WeeksPerYear))
	return domain.IncomeEstimate{
		Weekly:  weekly.Round(2),
		Monthly: annual.Div(decimal.NewFromInt(dateutil.MonthsPerYear)).Round(2),
		Annual:  annual.Round(0),
	}
}
