package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// householdIncome resolves the income answer, preferring the direct "income"
// field over the legacy "incomeRange" dropdown.
func householdIncome(f domain.FormInput) decimal.Decimal {
	if f.Has("income") {
		return IncomeFromInput(f["income"])
	}
	return IncomeFromInput(f["incomeRange"])
}

// TaxFootprint computes the full annual tax footprint for a questionnaire
// snapshot. Every component is computed; absent answers fall back to
// representative defaults so the result is always complete.
func (e *Engine) TaxFootprint(f domain.FormInput) *domain.FootprintResult {
	rates := e.Rates
	income := householdIncome(f)

	incomeTax := e.IncomeTax.Calculate(income)
	ni := e.NationalInsurance.Calculate(income, f.String("employmentStatus"))
	studentLoan := e.StudentLoan.Calculate(income, f.String("studentLoan"))
	councilTax := e.CouncilTax.Calculate(f.String("councilTaxBand"))

	energyVAT := e.VAT.Calculate(SpendFromRange(SpendEnergy, f["energyBillMonthly"]), CategoryEnergy)
	groceriesVAT := e.VAT.Calculate(SpendFromRange(SpendGroceries, f["groceriesMonthly"]), CategoryStandard)
	subscriptionsVAT := e.VAT.Calculate(SpendFromRange(SpendSubscriptions, f["subscriptions"]), CategoryStandard)

	transportInput := e.ParseTransport(f)
	transport := e.Transport.Calculate(transportInput)
	split := e.Transport.Split(transport)

	tvLicence := TVLicence(rates.TVLicence, f.Is("tvLicence", "yes"))

	alcoholDuty, tobaccoDuty := decimal.Zero, decimal.Zero
	switch f.String("alcoholTobacco") {
	case "alcohol":
		alcoholDuty = e.ExciseDuty.AlcoholDuty(SpendFromRange(SpendAlcohol, f["alcoholSpend"]))
	case "tobacco":
		tobaccoDuty = e.ExciseDuty.TobaccoDuty(SpendFromRange(SpendTobacco, f["tobaccoSpend"]))
	case "both":
		alcoholDuty = e.ExciseDuty.AlcoholDuty(SpendFromRange(SpendAlcohol, f["alcoholSpend"]))
		tobaccoDuty = e.ExciseDuty.TobaccoDuty(SpendFromRange(SpendTobacco, f["tobaccoSpend"]))
	}

	premiums := SpendFromRange(SpendInsurance, f["homeInsurance"]).
		Add(SpendFromRange(SpendInsurance, f["otherInsurance"]))
	ipt := e.IPT.OnPremiums(premiums.Mul(twelve))

	landlord := decimal.Zero
	if f.Is("housingStatus", "rent") {
		landlord = e.Landlord.Calculate(f.Decimal("monthlyRent"))
	}

	capitalGains := decimal.Zero
	if f.Is("hasInvestments", "yes") {
		capitalGains = e.CapitalGainsTax.Calculate(
			f.Decimal("capitalGains"),
			e.IncomeTax.IsHigherRateTaxpayer(income),
			f.Is("investmentType", "property"),
		)
	}
	dividendTax := decimal.Zero
	if f.Is("receiveDividends", "yes") {
		dividendTax = e.DividendTax.Calculate(f.Decimal("dividendIncome"), income)
	}

	breakdown := domain.TaxBreakdown{
		domain.KeyIncomeTax:         domain.NewEntry(rates.IncomeTax.Type, incomeTax),
		domain.KeyNationalInsurance: domain.NewEntry(rates.NationalInsurance.Type, ni),
		domain.KeyStudentLoan:       domain.NewEntry(rates.StudentLoan.Type, studentLoan),
		domain.KeyCouncilTax:        domain.NewEntry(rates.CouncilTax.Type, councilTax),
		domain.KeyVAT:               domain.NewEntry(rates.VAT.Type, energyVAT.Add(groceriesVAT).Add(subscriptionsVAT)),
		domain.KeyTransport: domain.MixedEntry{
			DirectAmount:   split.Direct,
			IndirectAmount: split.Indirect,
			Transport:      &transport,
		},
		domain.KeyTVLicence:              domain.NewEntry(rates.TVLicence.Type, tvLicence),
		domain.KeyAlcoholTobaccoDuty:     domain.NewEntry(rates.AlcoholDuty.Type, alcoholDuty.Add(tobaccoDuty)),
		domain.KeyInsurancePremiumTax:    domain.NewEntry(rates.InsurancePremiumTax.Type, ipt),
		domain.KeyLandlordTaxPassthrough: domain.NewEntry(rates.LandlordPassthrough.Type, landlord),
		domain.KeyCapitalGainsTax:        domain.NewEntry(rates.CapitalGainsTax.Type, capitalGains),
		domain.KeyDividendTax:            domain.NewEntry(rates.DividendTax.Type, dividendTax),
	}

	total := breakdown.Total()
	years := rates.Projection.Years
	transportProjection := e.Transport.Project(transport)

	result := &domain.FootprintResult{
		TaxYear:                rates.TaxYear,
		AnnualIncome:           income,
		TotalAnnualTax:         total,
		NetIncome:              income.Sub(total),
		DirectTaxTotal:         TotalByType(breakdown, domain.TaxTypeDirect),
		IndirectTaxTotal:       TotalByType(breakdown, domain.TaxTypeIndirect),
		DirectTaxPercentage:    PercentageByType(breakdown, total, domain.TaxTypeDirect),
		IndirectTaxPercentage:  PercentageByType(breakdown, total, domain.TaxTypeIndirect),
		PastFiveYearsTax:       total.Mul(decimal.NewFromInt(int64(years))),
		FutureFiveYearsTax:     SumDecimals(ProjectGrowth(total, rates.Projection.GrowthRate, years)),
		EffectiveTaxRate:       effectiveRate(total, income),
		TaxBreakdown:           breakdown,
		TransportTaxes:         transport,
		TransportTaxProjection: transportProjection,
		TransportFutureTax:     SumDecimals(transportProjection),
		TransportSplit:         split,
		TransportShares:        e.Transport.ModeShares(transport),
		TransportByTaxType:     e.Transport.ByTaxType(transport),
		Categories:             CategoryBreakdown(breakdown),
	}
	if f.Is("propertyBought", "yes") {
		result.OneOff.StampDuty = e.StampDuty.Calculate(f.Decimal("propertyValue"), f.Bool("firstTimeBuyer"))
	}

	e.Logger.Debugf("footprint: income=%s total=%s vehicles=%d flights=%d",
		income.StringFixed(2), total.StringFixed(2), len(transportInput.Vehicles), len(transportInput.Flights))
	return result
}

// effectiveRate is total as an unrounded percentage of income. Zero income
// yields zero rather than an undefined rate.
func effectiveRate(total, income decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return total.Div(income).Mul(hundred)
}
