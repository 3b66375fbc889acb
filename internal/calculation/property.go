package calculation

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// StampDutyCalculator handles Stamp Duty Land Tax on residential purchases
type StampDutyCalculator struct {
	Rates domain.StampDutyRates
}

// NewStampDutyCalculator creates a stamp duty calculator
func NewStampDutyCalculator(rates domain.StampDutyRates) *StampDutyCalculator {
	return &StampDutyCalculator{Rates: rates}
}

// Calculate returns SDLT due on a purchase at propertyValue.
func (c *StampDutyCalculator) Calculate(propertyValue decimal.Decimal, firstTimeBuyer bool) decimal.Decimal {
	schedule := c.Rates.Standard
	if firstTimeBuyer {
		schedule = c.Rates.FirstTimeBuyer
	}
	return ApplyTiers(propertyValue, schedule)
}

// InheritanceTaxCalculator handles tax on an estate above the nil-rate bands
type InheritanceTaxCalculator struct {
	Rates domain.InheritanceTaxRates
}

// NewInheritanceTaxCalculator creates an inheritance tax calculator
func NewInheritanceTaxCalculator(rates domain.InheritanceTaxRates) *InheritanceTaxCalculator {
	return &InheritanceTaxCalculator{Rates: rates}
}

// Calculate returns inheritance tax on an estate. The residence nil-rate band
// applies only when a main residence passes to direct descendants.
func (c *InheritanceTaxCalculator) Calculate(estateValue decimal.Decimal, includesMainResidence, toDirectDescendants bool) decimal.Decimal {
	threshold := c.Rates.Threshold
	if includesMainResidence && toDirectDescendants {
		threshold = threshold.Add(c.Rates.ResidenceNilRateBand)
	}
	return marginal(estateValue, threshold, c.Rates.Rate)
}

// CouncilTaxCalculator looks up annual council tax by property band
type CouncilTaxCalculator struct {
	Rates domain.CouncilTaxRates
}

// NewCouncilTaxCalculator creates a council tax calculator
func NewCouncilTaxCalculator(rates domain.CouncilTaxRates) *CouncilTaxCalculator {
	return &CouncilTaxCalculator{Rates: rates}
}

// Calculate returns the charge for band; missing or unrecognised bands use the
// national band D average.
func (c *CouncilTaxCalculator) Calculate(band string) decimal.Decimal {
	if amount, ok := c.Rates.Bands[strings.ToUpper(strings.TrimSpace(band))]; ok {
		return amount
	}
	return c.Rates.Unknown
}

// LandlordPassthroughCalculator estimates landlord taxes passed on through rent
type LandlordPassthroughCalculator struct {
	Rates domain.SpendShareRate
}

// NewLandlordPassthroughCalculator creates a landlord pass-through calculator
func NewLandlordPassthroughCalculator(rates domain.SpendShareRate) *LandlordPassthroughCalculator {
	return &LandlordPassthroughCalculator{Rates: rates}
}

// Calculate returns the annual share of rent attributed to landlord taxes.
func (c *LandlordPassthroughCalculator) Calculate(monthlyRent decimal.Decimal) decimal.Decimal {
	if !monthlyRent.IsPositive() {
		return decimal.Zero
	}
	return monthlyRent.Mul(twelve).Mul(c.Rates.Rate)
}

// Monthly returns the monthly share of rent attributed to landlord taxes.
func (c *LandlordPassthroughCalculator) Monthly(monthlyRent decimal.Decimal) decimal.Decimal {
	if !monthlyRent.IsPositive() {
		return decimal.Zero
	}
	return monthlyRent.Mul(c.Rates.Rate)
}
