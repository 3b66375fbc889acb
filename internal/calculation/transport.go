package calculation

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// TransportTaxCalculator aggregates vehicle, flight and public transport taxes
type TransportTaxCalculator struct {
	Vehicles        *VehicleTaxCalculator
	Flights         *AirPassengerDutyCalculator
	PublicTransport *PublicTransportTaxCalculator
	Projection      domain.ProjectionRates
}

// NewTransportTaxCalculator creates a transport tax calculator from the rate table
func NewTransportTaxCalculator(rates domain.RateTable) *TransportTaxCalculator {
	return &TransportTaxCalculator{
		Vehicles:        NewVehicleTaxCalculator(rates),
		Flights:         NewAirPassengerDutyCalculator(rates.AirPassengerDuty),
		PublicTransport: NewPublicTransportTaxCalculator(rates.VAT),
		Projection:      rates.Projection,
	}
}

// Calculate returns the transport tax aggregate for a household.
func (c *TransportTaxCalculator) Calculate(in domain.TransportInput) domain.TransportTaxes {
	vehicles := lo.Map(in.Vehicles, func(v domain.VehicleRecord, _ int) domain.VehicleTaxes {
		return c.Vehicles.Calculate(v)
	})
	vehicleTotal := lo.Reduce(vehicles, func(acc decimal.Decimal, v domain.VehicleTaxes, _ int) decimal.Decimal {
		return acc.Add(v.Total)
	}, decimal.Zero)
	flights := c.Flights.CalculateAll(in.Flights)
	public := c.PublicTransport.Calculate(in.PublicTransport)

	return domain.TransportTaxes{
		Vehicles:        vehicles,
		VehicleTotal:    vehicleTotal,
		FlightTaxes:     flights,
		PublicTransport: public,
		Total:           vehicleTotal.Add(flights).Add(public.Total),
	}
}

// Split divides transport taxes into direct (VED, road charges, parking and
// tolls) and indirect (fuel duty, fuel VAT, IPT, APD, fares VAT) portions.
func (c *TransportTaxCalculator) Split(t domain.TransportTaxes) domain.TransportSplit {
	split := domain.TransportSplit{Direct: decimal.Zero, Indirect: decimal.Zero}
	for _, v := range t.Vehicles {
		split.Direct = split.Direct.Add(v.VED).Add(v.CongestionCharges).Add(v.ParkingCharges).Add(v.RoadTolls)
		split.Indirect = split.Indirect.Add(v.FuelDuty).Add(v.FuelVAT).Add(v.InsuranceIPT)
	}
	split.Indirect = split.Indirect.Add(t.FlightTaxes).Add(t.PublicTransport.Total)
	return split
}

// ModeShares returns each travel mode's whole-number percentage of the
// transport total. All shares are zero when there is no transport tax.
func (c *TransportTaxCalculator) ModeShares(t domain.TransportTaxes) domain.TransportModeShares {
	return domain.TransportModeShares{
		Vehicles:        percentOf(t.VehicleTotal, t.Total, 0),
		Flights:         percentOf(t.FlightTaxes, t.Total, 0),
		PublicTransport: percentOf(t.PublicTransport.Total, t.Total, 0),
	}
}

// ByTaxType regroups transport taxes by the tax levied.
func (c *TransportTaxCalculator) ByTaxType(t domain.TransportTaxes) domain.TransportTaxTypeBreakdown {
	var b domain.TransportTaxTypeBreakdown
	for _, v := range t.Vehicles {
		b.VED = b.VED.Add(v.VED)
		b.FuelDuty = b.FuelDuty.Add(v.FuelDuty)
		b.FuelVAT = b.FuelVAT.Add(v.FuelVAT)
		b.InsuranceIPT = b.InsuranceIPT.Add(v.InsuranceIPT)
		b.CongestionCharges = b.CongestionCharges.Add(v.CongestionCharges)
		b.ParkingAndTolls = b.ParkingAndTolls.Add(v.ParkingCharges).Add(v.RoadTolls)
	}
	b.AirPassengerDuty = t.FlightTaxes
	b.PublicTransportVAT = t.PublicTransport.Total
	return b
}

// Project returns the transport total for each of the coming years, growing
// at the projection rate.
func (c *TransportTaxCalculator) Project(t domain.TransportTaxes) []decimal.Decimal {
	return ProjectGrowth(t.Total, c.Projection.GrowthRate, c.Projection.Years)
}

// ProjectGrowth returns amount×(1+rate)^i for i = 1..years.
func ProjectGrowth(amount, rate decimal.Decimal, years int) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, years)
	factor := one
	for i := 1; i <= years; i++ {
		factor = factor.Mul(one.Add(rate))
		out = append(out, amount.Mul(factor))
	}
	return out
}

// SumDecimals adds up a slice of amounts.
func SumDecimals(values []decimal.Decimal) decimal.Decimal {
	return lo.Reduce(values, func(acc, v decimal.Decimal, _ int) decimal.Decimal {
		return acc.Add(v)
	}, decimal.Zero)
}
