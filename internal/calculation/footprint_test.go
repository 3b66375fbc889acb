package calculation

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

func richForm() domain.FormInput {
	return domain.FormInput{
		"income":            "60000",
		"employmentStatus":  "employed",
		"studentLoan":       "plan2",
		"councilTaxBand":    "C",
		"energyBillMonthly": "100to150",
		"groceriesMonthly":  "200to300",
		"subscriptions":     "30to50",
		"tvLicence":         "yes",
		"alcoholTobacco":    "both",
		"alcoholSpend":      "20to50",
		"tobaccoSpend":      "under20",
		"homeInsurance":     "20to50",
		"otherInsurance":    "under20",
		"housingStatus":     "rent",
		"monthlyRent":       "1000",
		"vehicleType_1":     "car",
		"fuelType_1":        "petrol",
		"monthlyFuel_1":     "100to150",
		"insuranceCost_1":   "500to800",
		"congestionCharge":  "occasionally",
		"longHaulFlights":   "1to2",
		"taxiMonthly":       "20to50",
	}
}

func TestTaxFootprintDefaults(t *testing.T) {
	result := NewEngine().TaxFootprint(domain.FormInput{})

	assertDecimal(t, "30000", result.AnnualIncome)
	assertDecimal(t, "5286", result.TotalAnnualTax) // income tax 3486 + band D council tax 1800
	assertDecimal(t, "24714", result.NetIncome)
	assertDecimal(t, "5286", result.DirectTaxTotal)
	assertDecimal(t, "0", result.IndirectTaxTotal)
	assertDecimal(t, "100", result.DirectTaxPercentage)
	assertDecimal(t, "0", result.IndirectTaxPercentage)
	assertDecimal(t, "26430", result.PastFiveYearsTax)
	assertDecimal(t, "28058.7274114752", result.FutureFiveYearsTax)
	assertDecimal(t, "17.62", result.EffectiveTaxRate)
	assert.Equal(t, domain.DefaultTaxYear, result.TaxYear)

	for _, key := range domain.BreakdownOrder {
		assert.Contains(t, result.TaxBreakdown, key)
	}
	assert.Equal(t, domain.TaxTypeMixed, result.TaxBreakdown[domain.KeyTransport].Kind())
	assert.Len(t, result.TransportTaxProjection, 5)
	assert.True(t, result.TransportFutureTax.IsZero())
	assert.True(t, result.OneOff.StampDuty.IsZero())
}

func TestTaxFootprintTransportFutureTax(t *testing.T) {
	// £60 a month on taxis carries £120 of VAT a year
	result := NewEngine().TaxFootprint(domain.FormInput{"taxiMonthly": 60})

	assertDecimal(t, "120", result.TransportTaxes.Total)
	require.Len(t, result.TransportTaxProjection, 5)
	assertDecimal(t, "122.4", result.TransportTaxProjection[0])
	assertDecimal(t, "132.489696384", result.TransportTaxProjection[4])
	// 120 x (1.02 + 1.02^2 + ... + 1.02^5)
	assertDecimal(t, "636.974515584", result.TransportFutureTax)
}

func TestTaxFootprintComponents(t *testing.T) {
	result := NewEngine().TaxFootprint(richForm())
	b := result.TaxBreakdown

	assertDecimal(t, "11432", b[domain.KeyIncomeTax].Total())
	assertDecimal(t, "3210.6", b[domain.KeyNationalInsurance].Total())
	assertDecimal(t, "2943.45", b[domain.KeyStudentLoan].Total())
	assertDecimal(t, "1600", b[domain.KeyCouncilTax].Total())
	assertDecimalNear(t, "651.43", b[domain.KeyVAT].Total()) // energy 71.43 + groceries 500 + subscriptions 80
	assertDecimal(t, "174.50", b[domain.KeyTVLicence].Total())
	assertDecimal(t, "201", b[domain.KeyAlcoholTobaccoDuty].Total())
	assertDecimal(t, "64.8", b[domain.KeyInsurancePremiumTax].Total())
	assertDecimal(t, "1800", b[domain.KeyLandlordTaxPassthrough].Total())
	assertDecimal(t, "0", b[domain.KeyCapitalGainsTax].Total())
	assertDecimal(t, "0", b[domain.KeyDividendTax].Total())

	require.Len(t, result.TransportTaxes.Vehicles, 1)
	assertDecimal(t, "360", result.TransportTaxes.FlightTaxes) // 2 long haul returns
	assertDecimal(t, "70", result.TransportTaxes.PublicTransport.Total)
	assert.Equal(t, domain.IndirectEntry{Amount: b[domain.KeyVAT].Total()}, b[domain.KeyVAT])
}

func TestTaxFootprintDirectIndirectSplitMatchesTotal(t *testing.T) {
	engine := NewEngine()
	forms := []domain.FormInput{
		{},
		richForm(),
		{"income": "0"},
		{"incomeRange": "over150000", "employmentStatus": "both", "hasInvestments": "yes", "capitalGains": 50000},
		{"income": 20000, "vehicles": []domain.VehicleRecord{{FuelType: domain.FuelElectric, ListPrice: d("60000")}}},
	}

	for i, form := range forms {
		result := engine.TaxFootprint(form)
		sum := result.DirectTaxTotal.Add(result.IndirectTaxTotal)
		assert.True(t, sum.Equal(result.TotalAnnualTax), "form %d: %s + %s != %s",
			i, result.DirectTaxTotal, result.IndirectTaxTotal, result.TotalAnnualTax)
		assert.True(t, result.NetIncome.Equal(result.AnnualIncome.Sub(result.TotalAnnualTax)), "form %d", i)
	}
}

func TestTaxFootprintIsIdempotent(t *testing.T) {
	engine := NewEngine()
	form := richForm()

	first := engine.TaxFootprint(form)
	second := engine.TaxFootprint(form)
	assert.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestTaxFootprintRentIsMonotonic(t *testing.T) {
	engine := NewEngine()
	previous := decimal.Zero
	for _, rent := range []int{500, 1000, 1500, 2500} {
		form := richForm()
		form["monthlyRent"] = rent
		result := engine.TaxFootprint(form)
		landlord := result.TaxBreakdown[domain.KeyLandlordTaxPassthrough].Total()
		assert.True(t, landlord.GreaterThan(previous), "rent %d", rent)
		previous = landlord
	}

	owner := richForm()
	owner["housingStatus"] = "own"
	assert.True(t, NewEngine().TaxFootprint(owner).TaxBreakdown[domain.KeyLandlordTaxPassthrough].Total().IsZero())
}

func TestTaxFootprintZeroIncome(t *testing.T) {
	result := NewEngine().TaxFootprint(domain.FormInput{"income": "0"})

	assertDecimal(t, "0", result.AnnualIncome)
	assertDecimal(t, "0", result.EffectiveTaxRate)
	assertDecimal(t, "-1800", result.NetIncome)
}

func TestTaxFootprintInvestments(t *testing.T) {
	form := richForm()
	form["hasInvestments"] = "yes"
	form["capitalGains"] = 13000
	form["investmentType"] = "property"
	form["receiveDividends"] = "yes"
	form["dividendIncome"] = "2000"

	result := NewEngine().TaxFootprint(form)
	assertDecimal(t, "2800", result.TaxBreakdown[domain.KeyCapitalGainsTax].Total())
	assertDecimal(t, "506.25", result.TaxBreakdown[domain.KeyDividendTax].Total())
	// income tax, NI, student loan, CGT and dividend tax
	assertDecimal(t, "20892.3", result.Categories.Income)
}

func TestTaxFootprintStampDutyIsOneOff(t *testing.T) {
	engine := NewEngine()
	without := engine.TaxFootprint(richForm())

	form := richForm()
	form["propertyBought"] = "yes"
	form["propertyValue"] = 300000
	with := engine.TaxFootprint(form)

	assertDecimal(t, "2500", with.OneOff.StampDuty)
	assert.True(t, with.TotalAnnualTax.Equal(without.TotalAnnualTax))

	form["firstTimeBuyer"] = "yes"
	assertDecimal(t, "0", engine.TaxFootprint(form).OneOff.StampDuty)
}

func TestCalculateTaxFootprintUsesDefaultRates(t *testing.T) {
	assert.Equal(t, NewEngine().TaxFootprint(richForm()), CalculateTaxFootprint(richForm()))
}
