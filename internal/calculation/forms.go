package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// MaxVehicles is the number of indexed vehicle slots on the questionnaire.
const MaxVehicles = 5

var (
	listPriceRanges = map[string]int64{
		"under15k": 12000,
		"15kto25k": 20000,
		"25kto40k": 32500,
		"over40k":  50000,
	}
	co2Ranges = map[string]int64{
		"under75":  60,
		"75to90":   83,
		"91to100":  95,
		"101to110": 105,
		"111to130": 120,
		"131to150": 140,
		"151to170": 160,
		"171to190": 180,
		"191to225": 208,
		"226to255": 240,
		"over255":  270,
	}
	annualMileageRanges = map[string]int64{
		"under5k":  4000,
		"5kto10k":  7500,
		"10kto15k": 12500,
		"15kto20k": 17500,
		"over20k":  25000,
	}
	mpgRanges = map[string]int64{
		"under20": 18,
		"20to30":  25,
		"30to40":  35,
		"40to50":  45,
		"50to60":  55,
		"over60":  65,
	}
	vehicleInsuranceRanges = map[string]int64{
		"under300":  250,
		"300to500":  400,
		"500to800":  650,
		"800to1200": 1000,
		"over1200":  1500,
	}
	// days per month on which a charge is incurred
	frequencyDays = map[string]int64{
		"never":        0,
		"occasionally": 2,
		"weekly":       4,
		"daily":        20,
	}
	flightCounts = map[string]int64{
		"none":   0,
		"1to2":   2,
		"3to5":   4,
		"6to10":  8,
		"over5":  7,
		"over10": 12,
	}
)

// rangeValue resolves a numeric answer or a range key against table.
func rangeValue(f domain.FormInput, key string, table map[string]int64) decimal.Decimal {
	if d, ok := f.Number(key); ok {
		return positive(d)
	}
	return decimal.NewFromInt(table[f.String(key)])
}

// ParseVehicles reads the household's vehicles. An explicit "vehicles" list
// wins; otherwise up to MaxVehicles records are assembled from the indexed
// questionnaire fields (fuelType_1, listPrice_1, ...). Household-wide road
// charges, parking and penalties are attributed to the first vehicle.
func (e *Engine) ParseVehicles(f domain.FormInput) []domain.VehicleRecord {
	if typed, ok := f["vehicles"].([]domain.VehicleRecord); ok {
		return typed
	}
	if records := f.Records("vehicles"); len(records) > 0 {
		out := make([]domain.VehicleRecord, 0, len(records))
		for _, r := range records {
			out = append(out, vehicleFromRecord(r))
		}
		return out
	}
	if f.Is("ownVehicle", "no") {
		return nil
	}

	var out []domain.VehicleRecord
	for i := 1; i <= MaxVehicles; i++ {
		field := func(name string) string { return fmt.Sprintf("%s_%d", name, i) }
		vehicleType := f.String(field("vehicleType"))
		if vehicleType == "" && !f.Has(field("fuelType")) {
			continue
		}
		if vehicleType == "none" {
			continue
		}
		annualMileage := rangeValue(f, field("annualMileage"), annualMileageRanges)
		out = append(out, domain.VehicleRecord{
			VehicleType:      vehicleType,
			FuelType:         f.String(field("fuelType")),
			NewVehicle:       f.Bool(field("newVehicle")),
			ListPrice:        rangeValue(f, field("listPrice"), listPriceRanges),
			CO2Emissions:     rangeValue(f, field("co2Emissions"), co2Ranges),
			VEDAmount:        positive(f.Decimal(field("vedAmount"))),
			MonthlyFuelSpend: SpendFromRange(SpendFuel, f[field("monthlyFuel")]),
			WeeklyMileage:    annualMileage.Div(decimal.NewFromInt(52)),
			MPG:              rangeValue(f, field("mpg"), mpgRanges),
			AnnualInsurance:  rangeValue(f, field("insuranceCost"), vehicleInsuranceRanges),
		})
	}
	if len(out) > 0 {
		e.applyHouseholdCharges(f, &out[0])
	}
	return out
}

func (e *Engine) applyHouseholdCharges(f domain.FormInput, v *domain.VehicleRecord) {
	charges := e.Rates.TransportCharges
	v.DaysPerMonthCongestion = decimal.NewFromInt(frequencyDays[f.String("congestionCharge")])
	tollDays := decimal.NewFromInt(frequencyDays[f.String("roadTolls")])
	v.AnnualTollCharges = tollDays.Mul(charges.Tolls["dartford"]).Mul(twelve)
	v.MonthlyParkingCharges = SpendFromRange(SpendParking, f["parkingCosts"])

	fines := decimal.Zero
	switch f.String("motorPenalties") {
	case "parking":
		fines = charges.ParkingFine.Discounted
	case "traffic":
		fines = charges.BusLaneFine.Discounted
	case "both":
		fines = charges.ParkingFine.Discounted.Add(charges.BusLaneFine.Discounted)
	}
	v.AnnualParkingFines = fines
}

func vehicleFromRecord(r domain.FormInput) domain.VehicleRecord {
	return domain.VehicleRecord{
		VehicleType:            r.String("vehicleType"),
		FuelType:               r.String("fuelType"),
		NewVehicle:             r.Bool("newVehicle"),
		ListPrice:              r.Decimal("listPrice"),
		CO2Emissions:           r.Decimal("co2Emissions"),
		VEDAmount:              r.Decimal("vedAmount"),
		MonthlyFuelSpend:       r.Decimal("monthlyFuelSpend"),
		WeeklyMileage:          r.Decimal("weeklyMileage"),
		MPG:                    r.Decimal("mpg"),
		AnnualInsurance:        r.Decimal("annualInsurance"),
		DaysPerMonthCongestion: r.Decimal("daysPerMonthCongestion"),
		CongestionCharge:       r.Decimal("congestionCharge"),
		DaysPerMonthULEZ:       r.Decimal("daysPerMonthULEZ"),
		ULEZCharge:             r.Decimal("ulezCharge"),
		MonthlyParkingCharges:  r.Decimal("monthlyParkingCharges"),
		AnnualParkingFines:     r.Decimal("annualParkingFines"),
		AnnualTollCharges:      r.Decimal("annualTollCharges"),
	}
}

// cabinClass folds the questionnaire's cabin answers onto the two APD classes.
func cabinClass(answer string) string {
	switch answer {
	case domain.CabinPremium, "business", "first":
		return domain.CabinPremium
	}
	return domain.CabinEconomy
}

// ParseFlights reads the household's flights. An explicit "flights" list wins;
// otherwise return trips are assembled from the per-distance flight counts,
// falling back to the overall airTravel answer as short-haul trips.
func ParseFlights(f domain.FormInput) []domain.FlightRecord {
	if typed, ok := f["flights"].([]domain.FlightRecord); ok {
		return typed
	}
	if records := f.Records("flights"); len(records) > 0 {
		out := make([]domain.FlightRecord, 0, len(records))
		for _, r := range records {
			out = append(out, domain.FlightRecord{
				FlightsPerYear: r.Decimal("flightsPerYear"),
				FlightType:     r.String("flightType"),
				CabinClass:     r.String("cabinClass"),
				IsReturn:       r.Bool("isReturn"),
				Passengers:     r.Int("passengers", 1),
			})
		}
		return out
	}

	cabin := cabinClass(f.String("cabinClass"))
	var out []domain.FlightRecord
	for _, group := range []struct{ field, flightType string }{
		{"domesticFlights", domain.FlightDomestic},
		{"europeanFlights", domain.FlightShortHaul},
		{"longHaulFlights", domain.FlightLongHaul},
	} {
		count := f.DecimalOr(group.field, decimal.NewFromInt(flightCounts[f.String(group.field)]))
		if !count.IsPositive() {
			continue
		}
		out = append(out, domain.FlightRecord{
			FlightsPerYear: count,
			FlightType:     group.flightType,
			CabinClass:     cabin,
			IsReturn:       true,
			Passengers:     1,
		})
	}
	if len(out) == 0 {
		if count := flightCounts[f.String("airTravel")]; count > 0 {
			out = append(out, domain.FlightRecord{
				FlightsPerYear: decimal.NewFromInt(count),
				FlightType:     domain.FlightShortHaul,
				CabinClass:     cabin,
				IsReturn:       true,
				Passengers:     1,
			})
		}
	}
	return out
}

// ParsePublicTransport reads monthly public transport spending.
func ParsePublicTransport(f domain.FormInput) domain.PublicTransportSpend {
	return domain.PublicTransportSpend{
		TrainMonthly:   SpendFromRange(SpendTrain, f["trainMonthly"]),
		BusMonthly:     SpendFromRange(SpendBus, f["busMonthly"]),
		TaxiMonthly:    SpendFromRange(SpendTaxi, f["taxiMonthly"]),
		RailTicketType: f.String("railTicketType"),
	}
}

// ParseTransport assembles all transport inputs from a form.
func (e *Engine) ParseTransport(f domain.FormInput) domain.TransportInput {
	return domain.TransportInput{
		Vehicles:        e.ParseVehicles(f),
		Flights:         ParseFlights(f),
		PublicTransport: ParsePublicTransport(f),
	}
}
