package domain

import "github.com/shopspring/decimal"

// VehicleTaxes is the annual tax attributable to one vehicle.
type VehicleTaxes struct {
	VED               decimal.Decimal `json:"ved"`
	FuelDuty          decimal.Decimal `json:"fuel_duty"`
	FuelVAT           decimal.Decimal `json:"fuel_vat"`
	InsuranceIPT      decimal.Decimal `json:"insurance_ipt"`
	CongestionCharges decimal.Decimal `json:"congestion_charges"`
	ParkingCharges    decimal.Decimal `json:"parking_charges"`
	RoadTolls         decimal.Decimal `json:"road_tolls"`
	Total             decimal.Decimal `json:"total"`
}

// PublicTransportTaxes is the VAT embedded in public transport fares.
type PublicTransportTaxes struct {
	RailVAT decimal.Decimal `json:"rail_vat"`
	BusVAT  decimal.Decimal `json:"bus_vat"`
	TaxiVAT decimal.Decimal `json:"taxi_vat"`
	Total   decimal.Decimal `json:"total"`
}

// TransportTaxes aggregates every transport-related tax.
type TransportTaxes struct {
	Vehicles        []VehicleTaxes       `json:"vehicles"`
	VehicleTotal    decimal.Decimal      `json:"vehicle_total"`
	FlightTaxes     decimal.Decimal      `json:"flight_taxes"`
	PublicTransport PublicTransportTaxes `json:"public_transport"`
	Total           decimal.Decimal      `json:"total"`
}

// TransportSplit divides transport taxes into direct and indirect portions.
type TransportSplit struct {
	Direct   decimal.Decimal `json:"direct"`
	Indirect decimal.Decimal `json:"indirect"`
}

// TransportModeShares gives each travel mode's whole-number share of transport tax.
type TransportModeShares struct {
	Vehicles        decimal.Decimal `json:"vehicles"`
	Flights         decimal.Decimal `json:"flights"`
	PublicTransport decimal.Decimal `json:"public_transport"`
}

// TransportTaxTypeBreakdown regroups transport taxes by tax rather than vehicle.
type TransportTaxTypeBreakdown struct {
	VED                decimal.Decimal `json:"ved"`
	FuelDuty           decimal.Decimal `json:"fuel_duty"`
	FuelVAT            decimal.Decimal `json:"fuel_vat"`
	InsuranceIPT       decimal.Decimal `json:"insurance_ipt"`
	CongestionCharges  decimal.Decimal `json:"congestion_charges"`
	ParkingAndTolls    decimal.Decimal `json:"parking_and_tolls"`
	AirPassengerDuty   decimal.Decimal `json:"air_passenger_duty"`
	PublicTransportVAT decimal.Decimal `json:"public_transport_vat"`
}

// CategoryBreakdown groups the annual total by what the tax is levied on.
type CategoryBreakdown struct {
	Income      decimal.Decimal `json:"income"`
	Consumption decimal.Decimal `json:"consumption"`
	Property    decimal.Decimal `json:"property"`
	Transport   decimal.Decimal `json:"transport"`
	Other       decimal.Decimal `json:"other"`
}

// OneOffTaxes are charges that do not recur annually and are kept out of the
// annual total.
type OneOffTaxes struct {
	StampDuty decimal.Decimal `json:"stamp_duty"`
}

// FootprintResult is the full annual tax footprint of a household.
type FootprintResult struct {
	TaxYear                string                    `json:"tax_year"`
	AnnualIncome           decimal.Decimal           `json:"annual_income"`
	TotalAnnualTax         decimal.Decimal           `json:"total_annual_tax"`
	NetIncome              decimal.Decimal           `json:"net_income"`
	DirectTaxTotal         decimal.Decimal           `json:"direct_tax_total"`
	IndirectTaxTotal       decimal.Decimal           `json:"indirect_tax_total"`
	DirectTaxPercentage    decimal.Decimal           `json:"direct_tax_percentage"`
	IndirectTaxPercentage  decimal.Decimal           `json:"indirect_tax_percentage"`
	PastFiveYearsTax       decimal.Decimal           `json:"past_five_years_tax"`
	FutureFiveYearsTax     decimal.Decimal           `json:"future_five_years_tax"`
	EffectiveTaxRate       decimal.Decimal           `json:"effective_tax_rate"`
	TaxBreakdown           TaxBreakdown              `json:"tax_breakdown"`
	TransportTaxes         TransportTaxes            `json:"transport_taxes"`
	TransportTaxProjection []decimal.Decimal         `json:"transport_tax_projection"`
	TransportFutureTax     decimal.Decimal           `json:"transport_future_tax"`
	TransportSplit         TransportSplit            `json:"transport_split"`
	TransportShares        TransportModeShares       `json:"transport_shares"`
	TransportByTaxType     TransportTaxTypeBreakdown `json:"transport_by_tax_type"`
	Categories             CategoryBreakdown         `json:"categories"`
	OneOff                 OneOffTaxes               `json:"one_off"`
}

// LiveComponent is one contribution to a live estimate.
type LiveComponent struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// LiveResult is the running estimate shown while a form is being filled in.
type LiveResult struct {
	GrossIncome   decimal.Decimal `json:"gross_income"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	NetIncome     decimal.Decimal `json:"net_income"`
	TaxPercentage decimal.Decimal `json:"tax_percentage"`
	Components    []LiveComponent `json:"components"`
}

// DisplayValue is a derived value rendered next to a form field.
type DisplayValue struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
	Text   string          `json:"text"`
}

// IncomeEstimate converts an hourly wage into weekly, monthly and annual pay.
type IncomeEstimate struct {
	Weekly  decimal.Decimal `json:"weekly"`
	Monthly decimal.Decimal `json:"monthly"`
	Annual  decimal.Decimal `json:"annual"`
}
