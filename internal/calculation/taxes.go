package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// INCOME TAX ASSUMPTIONS:
//
// 1. Rest-of-UK bands only. Scottish rates are not modelled.
// 2. The personal allowance is not tapered above £100,000.
// 3. National Insurance for people who are both employed and self-employed
//    treats half of the income as self-employment profit.
// 4. Dividend tax is banded on total income rather than stacked on top of it.

// Employment statuses understood by the National Insurance calculator.
const (
	StatusEmployed     = "employed"
	StatusSelfEmployed = "selfEmployed"
	StatusBoth         = "both"
	StatusRetired      = "retired"
	StatusUnemployed   = "unemployed"
)

// StudentLoanNone is the plan identifier for no student loan.
const StudentLoanNone = "none"

// IncomeTaxCalculator handles income tax on employment and pension income
type IncomeTaxCalculator struct {
	Rates domain.IncomeTaxRates
}

// NewIncomeTaxCalculator creates an income tax calculator for the given bands
func NewIncomeTaxCalculator(rates domain.IncomeTaxRates) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{Rates: rates}
}

// bands expresses the rate bands as tiers over taxable income (income above
// the personal allowance).
func (c *IncomeTaxCalculator) bands() domain.Tiers {
	basicBand := c.Rates.BasicRateThreshold.Sub(c.Rates.PersonalAllowance)
	higherBand := c.Rates.AdditionalRateThreshold.Sub(c.Rates.BasicRateThreshold)
	return domain.Tiers{
		{Threshold: basicBand, Rate: c.Rates.BasicRate},
		{Threshold: basicBand.Add(higherBand), Rate: c.Rates.HigherRate},
		{Rate: c.Rates.AdditionalRate, Unbounded: true},
	}
}

// Calculate returns annual income tax. Income at or below the personal
// allowance is untaxed.
func (c *IncomeTaxCalculator) Calculate(income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(c.Rates.PersonalAllowance) {
		return decimal.Zero
	}
	return ApplyTiers(income.Sub(c.Rates.PersonalAllowance), c.bands())
}

// IsHigherRateTaxpayer reports whether any income falls in the higher band.
func (c *IncomeTaxCalculator) IsHigherRateTaxpayer(income decimal.Decimal) bool {
	return income.GreaterThan(c.Rates.BasicRateThreshold)
}

// NationalInsuranceCalculator handles Class 1 and Class 4 contributions
type NationalInsuranceCalculator struct {
	Rates domain.NationalInsuranceRates
}

// NewNationalInsuranceCalculator creates a National Insurance calculator
func NewNationalInsuranceCalculator(rates domain.NationalInsuranceRates) *NationalInsuranceCalculator {
	return &NationalInsuranceCalculator{Rates: rates}
}

func (c *NationalInsuranceCalculator) tiers(band domain.NIBand) domain.Tiers {
	return domain.Tiers{
		{Threshold: c.Rates.PrimaryThreshold, Rate: decimal.Zero},
		{Threshold: c.Rates.UpperEarningsLimit, Rate: band.MainRate},
		{Rate: band.UpperRate, Unbounded: true},
	}
}

// Calculate returns annual contributions for the employment status. Statuses
// other than employed, selfEmployed and both pay nothing.
func (c *NationalInsuranceCalculator) Calculate(income decimal.Decimal, status string) decimal.Decimal {
	ni := decimal.Zero
	if status == StatusEmployed || status == StatusBoth {
		ni = ni.Add(ApplyTiers(income, c.tiers(c.Rates.Employee)))
	}
	if status == StatusSelfEmployed || status == StatusBoth {
		profits := income
		if status == StatusBoth {
			profits = income.Div(decimal.NewFromInt(2))
		}
		ni = ni.Add(ApplyTiers(profits, c.tiers(c.Rates.SelfEmployed)))
	}
	return ni
}

// StudentLoanCalculator handles income-contingent student loan repayments
type StudentLoanCalculator struct {
	Rates domain.StudentLoanRates
}

// NewStudentLoanCalculator creates a student loan calculator
func NewStudentLoanCalculator(rates domain.StudentLoanRates) *StudentLoanCalculator {
	return &StudentLoanCalculator{Rates: rates}
}

// Calculate returns the annual repayment. "none" and unrecognised plans repay nothing.
func (c *StudentLoanCalculator) Calculate(income decimal.Decimal, plan string) decimal.Decimal {
	if plan == StudentLoanNone {
		return decimal.Zero
	}
	terms, ok := c.Rates.Plans[plan]
	if !ok {
		return decimal.Zero
	}
	return marginal(income, terms.Threshold, terms.Rate)
}

// DividendTaxCalculator handles tax on dividend income above the allowance
type DividendTaxCalculator struct {
	Rates  domain.DividendTaxRates
	Income domain.IncomeTaxRates
}

// NewDividendTaxCalculator creates a dividend tax calculator. The income tax
// bands decide which dividend rate applies.
func NewDividendTaxCalculator(rates domain.DividendTaxRates, income domain.IncomeTaxRates) *DividendTaxCalculator {
	return &DividendTaxCalculator{Rates: rates, Income: income}
}

// Calculate returns dividend tax for the year.
func (c *DividendTaxCalculator) Calculate(dividends, otherIncome decimal.Decimal) decimal.Decimal {
	taxable := positive(dividends.Sub(c.Rates.Allowance))
	if taxable.IsZero() {
		return decimal.Zero
	}
	rate := c.Rates.BasicRate
	switch {
	case otherIncome.GreaterThan(c.Income.AdditionalRateThreshold):
		rate = c.Rates.AdditionalRate
	case otherIncome.GreaterThan(c.Income.BasicRateThreshold):
		rate = c.Rates.HigherRate
	}
	return taxable.Mul(rate)
}

// CapitalGainsTaxCalculator handles tax on disposals above the annual exempt amount
type CapitalGainsTaxCalculator struct {
	Rates domain.CapitalGainsTaxRates
}

// NewCapitalGainsTaxCalculator creates a capital gains tax calculator
func NewCapitalGainsTaxCalculator(rates domain.CapitalGainsTaxRates) *CapitalGainsTaxCalculator {
	return &CapitalGainsTaxCalculator{Rates: rates}
}

// Calculate returns CGT on a year's gains.
func (c *CapitalGainsTaxCalculator) Calculate(gain decimal.Decimal, higherRateTaxpayer, residentialProperty bool) decimal.Decimal {
	taxable := positive(gain.Sub(c.Rates.AnnualExemptAmount))
	if taxable.IsZero() {
		return decimal.Zero
	}
	var rate decimal.Decimal
	switch {
	case residentialProperty && higherRateTaxpayer:
		rate = c.Rates.ResidentialHigherRate
	case residentialProperty:
		rate = c.Rates.ResidentialBasicRate
	case higherRateTaxpayer:
		rate = c.Rates.HigherRate
	default:
		rate = c.Rates.BasicRate
	}
	return taxable.Mul(rate)
}
