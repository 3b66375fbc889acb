package domain

import "github.com/shopspring/decimal"

// Fuel types recognised by the vehicle calculators.
const (
	FuelPetrol   = "petrol"
	FuelDiesel   = "diesel"
	FuelHybrid   = "hybrid"
	FuelPHEV     = "phev"
	FuelElectric = "electric"
	FuelOther    = "other"
)

// Flight distance bands.
const (
	FlightDomestic      = "domestic"
	FlightShortHaul     = "shortHaul"
	FlightLongHaul      = "longHaul"
	FlightUltraLongHaul = "ultraLongHaul"
)

// Cabin classes.
const (
	CabinEconomy = "economy"
	CabinPremium = "premium"
)

// VehicleRecord describes one household vehicle. Zero values mean "not
// supplied" and are treated as such by the calculators.
type VehicleRecord struct {
	VehicleType            string          `yaml:"vehicle_type" json:"vehicle_type"`
	FuelType               string          `yaml:"fuel_type" json:"fuel_type"`
	NewVehicle             bool            `yaml:"new_vehicle,omitempty" json:"new_vehicle,omitempty"`
	ListPrice              decimal.Decimal `yaml:"list_price" json:"list_price"`
	CO2Emissions           decimal.Decimal `yaml:"co2_emissions" json:"co2_emissions"`
	VEDAmount              decimal.Decimal `yaml:"ved_amount" json:"ved_amount"`
	MonthlyFuelSpend       decimal.Decimal `yaml:"monthly_fuel_spend" json:"monthly_fuel_spend"`
	WeeklyMileage          decimal.Decimal `yaml:"weekly_mileage" json:"weekly_mileage"`
	MPG                    decimal.Decimal `yaml:"mpg" json:"mpg"`
	AnnualInsurance        decimal.Decimal `yaml:"annual_insurance" json:"annual_insurance"`
	DaysPerMonthCongestion decimal.Decimal `yaml:"days_per_month_congestion" json:"days_per_month_congestion"`
	CongestionCharge       decimal.Decimal `yaml:"congestion_charge" json:"congestion_charge"`
	DaysPerMonthULEZ       decimal.Decimal `yaml:"days_per_month_ulez" json:"days_per_month_ulez"`
	ULEZCharge             decimal.Decimal `yaml:"ulez_charge" json:"ulez_charge"`
	MonthlyParkingCharges  decimal.Decimal `yaml:"monthly_parking_charges" json:"monthly_parking_charges"`
	AnnualParkingFines     decimal.Decimal `yaml:"annual_parking_fines" json:"annual_parking_fines"`
	AnnualTollCharges      decimal.Decimal `yaml:"annual_toll_charges" json:"annual_toll_charges"`
}

// FlightRecord describes a group of identical flights taken in a year.
type FlightRecord struct {
	FlightsPerYear decimal.Decimal `yaml:"flights_per_year" json:"flights_per_year"`
	FlightType     string          `yaml:"flight_type" json:"flight_type"`
	CabinClass     string          `yaml:"cabin_class" json:"cabin_class"`
	IsReturn       bool            `yaml:"is_return" json:"is_return"`
	Passengers     int             `yaml:"passengers" json:"passengers"`
}

// PublicTransportSpend holds monthly spend per public transport mode.
type PublicTransportSpend struct {
	TrainMonthly   decimal.Decimal `yaml:"train_monthly" json:"train_monthly"`
	BusMonthly     decimal.Decimal `yaml:"bus_monthly" json:"bus_monthly"`
	TaxiMonthly    decimal.Decimal `yaml:"taxi_monthly" json:"taxi_monthly"`
	RailTicketType string          `yaml:"rail_ticket_type,omitempty" json:"rail_ticket_type,omitempty"`
}

// TransportInput bundles everything the transport aggregate needs.
type TransportInput struct {
	Vehicles        []VehicleRecord      `yaml:"vehicles" json:"vehicles"`
	Flights         []FlightRecord       `yaml:"flights" json:"flights"`
	PublicTransport PublicTransportSpend `yaml:"public_transport" json:"public_transport"`
}
