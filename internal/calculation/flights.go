package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

var flightDescriptions = map[string]string{
	domain.FlightDomestic:      "UK Domestic Flight",
	domain.FlightShortHaul:     "Short Haul (Europe, up to 2,000 miles)",
	domain.FlightLongHaul:      "Long Haul (2,001-5,500 miles)",
	domain.FlightUltraLongHaul: "Ultra Long Haul (over 5,500 miles)",
}

// FlightTypeDescription returns a human-readable label for a flight type.
func FlightTypeDescription(flightType string) string {
	if d, ok := flightDescriptions[flightType]; ok {
		return d
	}
	return "Unknown Flight Type"
}

// AirPassengerDutyCalculator handles APD on departures from UK airports
type AirPassengerDutyCalculator struct {
	Rates domain.AirPassengerDutyRates
}

// NewAirPassengerDutyCalculator creates an APD calculator
func NewAirPassengerDutyCalculator(rates domain.AirPassengerDutyRates) *AirPassengerDutyCalculator {
	return &AirPassengerDutyCalculator{Rates: rates}
}

// PerPassenger returns the duty for one passenger on one flight. Unknown
// flight types owe nothing; unknown cabin classes are treated as economy.
func (c *AirPassengerDutyCalculator) PerPassenger(flightType, cabinClass string) decimal.Decimal {
	band, ok := c.Rates.Bands[flightType]
	if !ok {
		return decimal.Zero
	}
	if cabinClass == domain.CabinPremium {
		return band.Premium
	}
	return band.Economy
}

// Calculate returns annual APD for a group of flights. Return trips count
// twice; flight type defaults to domestic and passengers to one. Fractional
// counts are averages over several years and are charged pro rata.
func (c *AirPassengerDutyCalculator) Calculate(f domain.FlightRecord) decimal.Decimal {
	if !f.FlightsPerYear.IsPositive() {
		return decimal.Zero
	}
	flightType := f.FlightType
	if flightType == "" {
		flightType = domain.FlightDomestic
	}
	passengers := f.Passengers
	if passengers <= 0 {
		passengers = 1
	}
	legs := f.FlightsPerYear.Mul(decimal.NewFromInt(int64(passengers)))
	if f.IsReturn {
		legs = legs.Mul(decimal.NewFromInt(2))
	}
	return c.PerPassenger(flightType, f.CabinClass).Mul(legs)
}

// CalculateAll sums APD over every flight group.
func (c *AirPassengerDutyCalculator) CalculateAll(flights []domain.FlightRecord) decimal.Decimal {
	total := decimal.Zero
	for _, f := range flights {
		total = total.Add(c.Calculate(f))
	}
	return total
}
