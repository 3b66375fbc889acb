package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// BusinessTaxCalculator covers taxes levied on businesses whose cost is
// ultimately borne by households through prices.
type BusinessTaxCalculator struct {
	Corporation domain.CorporationTaxRates
	Gambling    domain.GamblingDutyRates
	Plastic     domain.PlasticPackagingTaxRates
	Landfill    domain.LandfillTaxRates
}

// NewBusinessTaxCalculator creates a business tax calculator from the rate table
func NewBusinessTaxCalculator(rates domain.RateTable) *BusinessTaxCalculator {
	return &BusinessTaxCalculator{
		Corporation: rates.CorporationTax,
		Gambling:    rates.GamblingDuty,
		Plastic:     rates.PlasticPackagingTax,
		Landfill:    rates.LandfillTax,
	}
}

// CorporationTax applies the small profits rate below the threshold and the
// main rate otherwise. Marginal relief is not modelled.
func (c *BusinessTaxCalculator) CorporationTax(profits decimal.Decimal) decimal.Decimal {
	if !profits.IsPositive() {
		return decimal.Zero
	}
	if profits.LessThan(c.Corporation.SmallProfitsThreshold) {
		return profits.Mul(c.Corporation.SmallProfitsRate)
	}
	return profits.Mul(c.Corporation.Rate)
}

// GamingDuty applies the progressive gaming duty bands to gross gaming yield.
func (c *BusinessTaxCalculator) GamingDuty(grossGamingYield decimal.Decimal) decimal.Decimal {
	return ApplyTiers(grossGamingYield, c.Gambling.GamingDuty)
}

// BettingDuty applies general or remote betting duty to gross profits.
func (c *BusinessTaxCalculator) BettingDuty(grossProfits decimal.Decimal, remote bool) decimal.Decimal {
	rate := c.Gambling.GeneralBetting
	if remote {
		rate = c.Gambling.RemoteBetting
	}
	return positive(grossProfits).Mul(rate)
}

// PlasticPackagingTax charges non-recycled plastic packaging per tonne.
func (c *BusinessTaxCalculator) PlasticPackagingTax(tonnes decimal.Decimal) decimal.Decimal {
	return positive(tonnes).Mul(c.Plastic.RatePerTonne)
}

// LandfillTax charges waste sent to landfill per tonne; inert material pays
// the lower rate.
func (c *BusinessTaxCalculator) LandfillTax(tonnes decimal.Decimal, lowerRate bool) decimal.Decimal {
	rate := c.Landfill.StandardRate
	if lowerRate {
		rate = c.Landfill.LowerRate
	}
	return positive(tonnes).Mul(rate)
}
