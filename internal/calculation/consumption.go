package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// VAT spending categories. Only energy uses the reduced rate.
const (
	CategoryStandard = "standard"
	CategoryEnergy   = "energy"
)

// VATCalculator extracts VAT from VAT-inclusive household spending
type VATCalculator struct {
	Rates domain.VATRates
}

// NewVATCalculator creates a VAT calculator
func NewVATCalculator(rates domain.VATRates) *VATCalculator {
	return &VATCalculator{Rates: rates}
}

// RateFor returns the VAT rate applied to a spending category.
func (c *VATCalculator) RateFor(category string) decimal.Decimal {
	if category == CategoryEnergy {
		return c.Rates.Reduced
	}
	return c.Rates.Standard
}

// Calculate returns the VAT contained in a year of monthlySpend.
func (c *VATCalculator) Calculate(monthlySpend decimal.Decimal, category string) decimal.Decimal {
	return c.Included(monthlySpend.Mul(twelve), category)
}

// Included returns the VAT contained in an annual VAT-inclusive amount.
func (c *VATCalculator) Included(annualSpend decimal.Decimal, category string) decimal.Decimal {
	return taxIncluded(annualSpend, c.RateFor(category))
}

// ExciseDutyCalculator estimates alcohol and tobacco duty from spending
type ExciseDutyCalculator struct {
	Alcohol domain.SpendShareRate
	Tobacco domain.SpendShareRate
}

// NewExciseDutyCalculator creates an excise duty calculator
func NewExciseDutyCalculator(alcohol, tobacco domain.SpendShareRate) *ExciseDutyCalculator {
	return &ExciseDutyCalculator{Alcohol: alcohol, Tobacco: tobacco}
}

// AlcoholDuty returns the annual duty share of monthly alcohol spending.
func (c *ExciseDutyCalculator) AlcoholDuty(monthlySpend decimal.Decimal) decimal.Decimal {
	return monthlySpend.Mul(twelve).Mul(c.Alcohol.Rate)
}

// TobaccoDuty returns the annual duty share of monthly tobacco spending.
func (c *ExciseDutyCalculator) TobaccoDuty(monthlySpend decimal.Decimal) decimal.Decimal {
	return monthlySpend.Mul(twelve).Mul(c.Tobacco.Rate)
}

// TVLicence returns the annual licence fee when one is held.
func TVLicence(rates domain.FlatRate, held bool) decimal.Decimal {
	if !held {
		return decimal.Zero
	}
	return rates.Amount
}

// InsurancePremiumTaxCalculator handles IPT on general insurance
type InsurancePremiumTaxCalculator struct {
	Rates domain.InsurancePremiumTaxRates
}

// NewInsurancePremiumTaxCalculator creates an IPT calculator
func NewInsurancePremiumTaxCalculator(rates domain.InsurancePremiumTaxRates) *InsurancePremiumTaxCalculator {
	return &InsurancePremiumTaxCalculator{Rates: rates}
}

// OnPremiums returns standard-rate IPT charged on top of net annual premiums.
func (c *InsurancePremiumTaxCalculator) OnPremiums(annualPremiums decimal.Decimal) decimal.Decimal {
	return positive(annualPremiums).Mul(c.Rates.Standard)
}

// Included returns the standard-rate IPT contained in a gross annual premium.
func (c *InsurancePremiumTaxCalculator) Included(annualPremium decimal.Decimal) decimal.Decimal {
	return taxIncluded(positive(annualPremium), c.Rates.Standard)
}
