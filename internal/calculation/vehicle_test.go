package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

func TestVEDFor(t *testing.T) {
	calculator := NewVehicleTaxCalculator(domain.DefaultRateTable())

	tests := []struct {
		name    string
		vehicle domain.VehicleRecord
		want    string
	}{
		{"explicit amount wins", domain.VehicleRecord{FuelType: domain.FuelPetrol, VEDAmount: d("300"), ListPrice: d("90000")}, "300"},
		{"standard rate", domain.VehicleRecord{FuelType: domain.FuelDiesel}, "165"},
		{"expensive car supplement", domain.VehicleRecord{FuelType: domain.FuelPetrol, ListPrice: d("50000")}, "590"},
		{"at threshold no supplement", domain.VehicleRecord{FuelType: domain.FuelPetrol, ListPrice: d("40000")}, "165"},
		{"unknown fuel defaults to petrol", domain.VehicleRecord{FuelType: "steam"}, "165"},
		{"motorcycle", domain.VehicleRecord{VehicleType: VehicleTypeMotorcycle, FuelType: domain.FuelPetrol}, "101"},
		{"new vehicle first year rate", domain.VehicleRecord{FuelType: domain.FuelPetrol, NewVehicle: true, CO2Emissions: d("120")}, "240"},
		{"new vehicle without CO2", domain.VehicleRecord{FuelType: domain.FuelPetrol, NewVehicle: true}, "165"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, calculator.VEDFor(tt.vehicle))
		})
	}
}

func TestFuelDutyAndVAT(t *testing.T) {
	calculator := NewVehicleTaxCalculator(domain.DefaultRateTable())

	t.Run("spend mode", func(t *testing.T) {
		v := domain.VehicleRecord{FuelType: domain.FuelPetrol, MonthlyFuelSpend: d("150")}
		// 1800 / 1.50 = 1200 litres
		assertDecimal(t, "635.4", calculator.FuelDutyFor(v))
		assertDecimal(t, "300", calculator.FuelVATFor(v))
	})

	t.Run("spend mode preferred over mileage", func(t *testing.T) {
		v := domain.VehicleRecord{FuelType: domain.FuelPetrol, MonthlyFuelSpend: d("150"), WeeklyMileage: d("100"), MPG: d("40")}
		assertDecimal(t, "635.4", calculator.FuelDutyFor(v))
	})

	t.Run("mileage mode", func(t *testing.T) {
		v := domain.VehicleRecord{FuelType: domain.FuelDiesel, WeeklyMileage: d("100"), MPG: d("40")}
		// 5200 miles / 40 mpg = 130 gallons = 590.9917 litres
		assertDecimal(t, "312.93010515", calculator.FuelDutyFor(v))
		assertDecimal(t, "147.747925", calculator.FuelVATFor(v))
	})

	t.Run("electric pays no fuel taxes", func(t *testing.T) {
		v := domain.VehicleRecord{FuelType: domain.FuelElectric, MonthlyFuelSpend: d("150")}
		assert.True(t, calculator.FuelDutyFor(v).IsZero())
		assert.True(t, calculator.FuelVATFor(v).IsZero())
	})

	t.Run("no usage data", func(t *testing.T) {
		v := domain.VehicleRecord{FuelType: domain.FuelPetrol, WeeklyMileage: d("100")}
		assert.True(t, calculator.FuelDutyFor(v).IsZero())
	})
}

func TestVehicleTaxBundle(t *testing.T) {
	calculator := NewVehicleTaxCalculator(domain.DefaultRateTable())
	v := domain.VehicleRecord{
		FuelType:               domain.FuelPetrol,
		MonthlyFuelSpend:       d("150"),
		AnnualInsurance:        d("560"),
		DaysPerMonthCongestion: d("4"),
		DaysPerMonthULEZ:       d("2"),
		MonthlyParkingCharges:  d("20"),
		AnnualParkingFines:     d("80"),
		AnnualTollCharges:      d("60"),
	}

	taxes := calculator.Calculate(v)
	assertDecimal(t, "165", taxes.VED)
	assertDecimal(t, "635.4", taxes.FuelDuty)
	assertDecimal(t, "300", taxes.FuelVAT)
	assertDecimal(t, "60", taxes.InsuranceIPT)
	assertDecimal(t, "1020", taxes.CongestionCharges) // 4*15*12 + 2*12.50*12
	assertDecimal(t, "320", taxes.ParkingCharges)
	assertDecimal(t, "60", taxes.RoadTolls)
	assertDecimal(t, "2560.4", taxes.Total)
}

func TestCongestionChargesUseRecordRates(t *testing.T) {
	calculator := NewVehicleTaxCalculator(domain.DefaultRateTable())
	v := domain.VehicleRecord{DaysPerMonthULEZ: d("10"), ULEZCharge: d("8")}
	assertDecimal(t, "960", calculator.CongestionChargesFor(v))
}
