package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

func TestParseVehiclesFromIndexedFields(t *testing.T) {
	engine := NewEngine()
	form := domain.FormInput{
		"vehicleType_1":    "car",
		"fuelType_1":       "diesel",
		"listPrice_1":      "over40k",
		"co2Emissions_1":   "111to130",
		"annualMileage_1":  "10kto15k",
		"mpg_1":            "40to50",
		"monthlyFuel_1":    "100to150",
		"insuranceCost_1":  "300to500",
		"vehicleType_2":    "motorcycle",
		"fuelType_2":       "petrol",
		"insuranceCost_2":  250,
		"vehicleType_3":    "none",
		"congestionCharge": "weekly",
		"roadTolls":        "occasionally",
		"parkingCosts":     "20to50",
		"motorPenalties":   "both",
	}

	vehicles := engine.ParseVehicles(form)
	require.Len(t, vehicles, 2)

	first := vehicles[0]
	assert.Equal(t, "car", first.VehicleType)
	assert.Equal(t, domain.FuelDiesel, first.FuelType)
	assertDecimal(t, "50000", first.ListPrice)
	assertDecimal(t, "120", first.CO2Emissions)
	assertDecimal(t, "45", first.MPG)
	assertDecimal(t, "125", first.MonthlyFuelSpend)
	assertDecimal(t, "400", first.AnnualInsurance)
	assertDecimalNear(t, "240.38", first.WeeklyMileage)
	assertDecimal(t, "4", first.DaysPerMonthCongestion)
	assertDecimal(t, "60", first.AnnualTollCharges) // 2 days x 2.50 x 12
	assertDecimal(t, "35", first.MonthlyParkingCharges)
	assertDecimal(t, "150", first.AnnualParkingFines)

	second := vehicles[1]
	assert.Equal(t, VehicleTypeMotorcycle, second.VehicleType)
	assertDecimal(t, "250", second.AnnualInsurance)
	assert.True(t, second.DaysPerMonthCongestion.IsZero(), "household charges go to the first vehicle only")
}

func TestParseVehiclesFromList(t *testing.T) {
	engine := NewEngine()
	form := domain.FormInput{
		"vehicles": []any{
			map[string]any{"fuelType": "petrol", "monthlyFuelSpend": 150, "newVehicle": true, "co2Emissions": "95"},
			"not a vehicle",
			map[string]any{"fuelType": "electric", "listPrice": 45000},
		},
	}

	vehicles := engine.ParseVehicles(form)
	require.Len(t, vehicles, 2)
	assert.True(t, vehicles[0].NewVehicle)
	assertDecimal(t, "95", vehicles[0].CO2Emissions)
	assertDecimal(t, "45000", vehicles[1].ListPrice)
}

func TestParseVehiclesTypedAndEmpty(t *testing.T) {
	engine := NewEngine()
	typed := []domain.VehicleRecord{{FuelType: domain.FuelHybrid}}
	assert.Equal(t, typed, engine.ParseVehicles(domain.FormInput{"vehicles": typed}))
	assert.Empty(t, engine.ParseVehicles(domain.FormInput{}))
	assert.Empty(t, engine.ParseVehicles(domain.FormInput{"ownVehicle": "no", "vehicleType_1": "car"}))
}

func TestParseFlights(t *testing.T) {
	t.Run("per distance counts", func(t *testing.T) {
		flights := ParseFlights(domain.FormInput{
			"domesticFlights": "1to2",
			"longHaulFlights": 3,
			"cabinClass":      "business",
		})
		require.Len(t, flights, 2)
		assert.Equal(t, domain.FlightDomestic, flights[0].FlightType)
		assertDecimal(t, "2", flights[0].FlightsPerYear)
		assert.Equal(t, domain.FlightLongHaul, flights[1].FlightType)
		assertDecimal(t, "3", flights[1].FlightsPerYear)
		assert.Equal(t, domain.CabinPremium, flights[1].CabinClass)
		assert.True(t, flights[1].IsReturn)
	})

	t.Run("overall air travel answer", func(t *testing.T) {
		flights := ParseFlights(domain.FormInput{"airTravel": "3to5"})
		require.Len(t, flights, 1)
		assert.Equal(t, domain.FlightShortHaul, flights[0].FlightType)
		assertDecimal(t, "4", flights[0].FlightsPerYear)
		assert.Equal(t, domain.CabinEconomy, flights[0].CabinClass)
	})

	t.Run("explicit list", func(t *testing.T) {
		flights := ParseFlights(domain.FormInput{"flights": []any{
			map[string]any{"flightType": "longHaul", "flightsPerYear": 2, "isReturn": true},
		}})
		require.Len(t, flights, 1)
		assertDecimal(t, "2", flights[0].FlightsPerYear)
		assert.Equal(t, 1, flights[0].Passengers)
		assert.True(t, flights[0].IsReturn)
	})

	t.Run("fractional counts are kept", func(t *testing.T) {
		flights := ParseFlights(domain.FormInput{"flights": []any{
			map[string]any{"flightType": "longHaul", "flightsPerYear": "1.5"},
		}})
		require.Len(t, flights, 1)
		assertDecimal(t, "1.5", flights[0].FlightsPerYear)
		assertDecimal(t, "135", NewAirPassengerDutyCalculator(domain.DefaultRateTable().AirPassengerDuty).CalculateAll(flights))

		flights = ParseFlights(domain.FormInput{"longHaulFlights": 0.5})
		require.Len(t, flights, 1)
		assertDecimal(t, "0.5", flights[0].FlightsPerYear)
	})

	t.Run("nothing", func(t *testing.T) {
		assert.Empty(t, ParseFlights(domain.FormInput{"airTravel": "none"}))
	})
}

func TestParsePublicTransport(t *testing.T) {
	spend := ParsePublicTransport(domain.FormInput{
		"trainMonthly":   "100to200",
		"busMonthly":     40,
		"taxiMonthly":    "nonsense",
		"railTicketType": "season",
	})
	assertDecimal(t, "150", spend.TrainMonthly)
	assertDecimal(t, "40", spend.BusMonthly)
	assertDecimal(t, "0", spend.TaxiMonthly)
	assert.Equal(t, "season", spend.RailTicketType)
}
