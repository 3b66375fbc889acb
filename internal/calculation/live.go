package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// Live estimate component keys.
const (
	LiveIncomeTax           = "incomeTax"
	LiveNationalInsurance   = "nationalInsurance"
	LiveStudentLoan         = "studentLoan"
	LiveCouncilTax          = "councilTax"
	LiveVED                 = "ved"
	LiveFuelDuty            = "fuelDuty"
	LiveVATOnFuel           = "vatOnFuel"
	LiveVATOnEnergy         = "vatOnEnergy"
	LiveTVLicence           = "tvLicense"
	LiveVATOnSubscriptions  = "vatOnSubscriptions"
	LiveVATOnGroceries      = "vatOnGroceries"
	LiveAlcoholDuty         = "alcoholDuty"
	LiveTobaccoDuty         = "tobaccoDuty"
	LiveAirPassengerDuty    = "airPassengerDuty"
	LiveLandlordPassthrough = "landlordTaxPassthrough"
)

// liveTally accumulates components in the order they are added.
type liveTally struct {
	result *domain.LiveResult
}

func (t *liveTally) add(key string, amount decimal.Decimal) {
	t.result.Components = append(t.result.Components, domain.LiveComponent{Key: key, Amount: amount})
	t.result.TotalTax = t.result.TotalTax.Add(amount)
	t.result.NetIncome = t.result.NetIncome.Sub(amount)
}

// LiveTaxPercentage estimates the tax burden from a partially completed
// questionnaire. Nothing is computed until an income answer is present; after
// that each component is added only once the answers it depends on exist.
// Net income is allowed to go negative.
func (e *Engine) LiveTaxPercentage(f domain.FormInput) *domain.LiveResult {
	result := &domain.LiveResult{
		GrossIncome:   decimal.Zero,
		TotalTax:      decimal.Zero,
		NetIncome:     decimal.Zero,
		TaxPercentage: decimal.Zero,
	}
	if !f.Has("income") && !f.Has("incomeRange") {
		return result
	}

	est := e.Rates.LiveEstimates
	gross := householdIncome(f)
	result.GrossIncome = gross
	result.NetIncome = gross
	tally := &liveTally{result: result}

	tally.add(LiveIncomeTax, e.IncomeTax.Calculate(gross))
	if f.Has("employmentStatus") {
		tally.add(LiveNationalInsurance, e.NationalInsurance.Calculate(gross, f.String("employmentStatus")))
	}
	if f.Has("studentLoan") {
		tally.add(LiveStudentLoan, e.StudentLoan.Calculate(gross, f.String("studentLoan")))
	}
	if f.Has("councilTaxBand") {
		tally.add(LiveCouncilTax, e.CouncilTax.Calculate(f.String("councilTaxBand")))
	}

	if vehicleType := f.String("vehicleType"); vehicleType != "" && vehicleType != "none" {
		vehicle := domain.VehicleRecord{
			VehicleType: vehicleType,
			FuelType:    f.StringOr("fuelType", vehicleType),
		}
		tally.add(LiveVED, e.Transport.Vehicles.VEDFor(vehicle))

		if fuel := f.String("fuelSpend"); fuel != "" && fuel != "none" {
			monthly := SpendFromRange(SpendFuel, f["fuelSpend"])
			tally.add(LiveFuelDuty, monthly.Mul(twelve).Mul(est.FuelDutyShare))
			tally.add(LiveVATOnFuel, e.VAT.Calculate(monthly, CategoryStandard))
		}
	}

	if f.Has("energyBillMonthly") {
		tally.add(LiveVATOnEnergy, e.VAT.Calculate(SpendFromRange(SpendEnergy, f["energyBillMonthly"]), CategoryEnergy))
	}
	if f.Is("tvLicence", "yes") {
		tally.add(LiveTVLicence, TVLicence(e.Rates.TVLicence, true))
	}
	if f.Has("subscriptions") {
		tally.add(LiveVATOnSubscriptions, e.VAT.Calculate(SpendFromRange(SpendSubscriptions, f["subscriptions"]), CategoryStandard))
	}
	if f.Has("groceriesMonthly") {
		vatable := SpendFromRange(SpendGroceries, f["groceriesMonthly"]).Mul(est.VATableGroceries)
		tally.add(LiveVATOnGroceries, e.VAT.Calculate(vatable, CategoryStandard))
	}

	switch f.String("alcoholTobacco") {
	case "alcohol":
		tally.add(LiveAlcoholDuty, est.AlcoholDutyAnnual)
	case "tobacco":
		tally.add(LiveTobaccoDuty, est.TobaccoDutyAnnual)
	case "both":
		tally.add(LiveAlcoholDuty, est.AlcoholDutyAnnual)
		tally.add(LiveTobaccoDuty, est.TobaccoDutyAnnual)
	}

	if holidays := f.String("holidaysYearly"); holidays != "" && holidays != "none" {
		tally.add(LiveAirPassengerDuty, e.Transport.Flights.Calculate(domain.FlightRecord{
			FlightsPerYear: f.DecimalOr("holidaysYearly", decimal.NewFromInt(flightCounts[holidays])),
			FlightType:     domain.FlightShortHaul,
			CabinClass:     domain.CabinEconomy,
			IsReturn:       true,
			Passengers:     1,
		}))
	}

	if f.Is("housingStatus", "rent") {
		if rent := f.Decimal("monthlyRent"); rent.IsPositive() {
			tally.add(LiveLandlordPassthrough, e.Landlord.Calculate(rent))
		}
	}

	if gross.IsPositive() {
		result.TaxPercentage = percentOf(result.TotalTax, gross, 1)
	}
	e.Logger.Debugf("live: gross=%s total=%s components=%d",
		gross.StringFixed(2), result.TotalTax.StringFixed(2), len(result.Components))
	return result
}

// LiveComponentAmount returns the amount recorded for key, if any.
func LiveComponentAmount(r *domain.LiveResult, key string) (decimal.Decimal, bool) {
	for _, c := range r.Components {
		if c.Key == key {
			return c.Amount, true
		}
	}
	return decimal.Zero, false
}
