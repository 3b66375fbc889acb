package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
	"github.com/taxfootprint/footprint-calculator/pkg/dateutil"
)

// VehicleTypeMotorcycle selects the motorcycle VED rate regardless of fuel.
const VehicleTypeMotorcycle = "motorcycle"

// VehicleTaxCalculator handles every tax attributable to running a vehicle
type VehicleTaxCalculator struct {
	VED     domain.VEDRates
	Fuel    domain.FuelDutyRates
	VAT     domain.VATRates
	IPT     domain.InsurancePremiumTaxRates
	Charges domain.TransportChargeRates
}

// NewVehicleTaxCalculator creates a vehicle tax calculator from the rate table
func NewVehicleTaxCalculator(rates domain.RateTable) *VehicleTaxCalculator {
	return &VehicleTaxCalculator{
		VED:     rates.VED,
		Fuel:    rates.FuelDuty,
		VAT:     rates.VAT,
		IPT:     rates.InsurancePremiumTax,
		Charges: rates.TransportCharges,
	}
}

// VEDFor returns annual Vehicle Excise Duty. A positive VEDAmount on the
// record is used verbatim. New vehicles pay the first-year rate for their CO2
// band; otherwise the standard rate for the fuel type applies, plus the
// expensive car supplement above the list price threshold.
func (c *VehicleTaxCalculator) VEDFor(v domain.VehicleRecord) decimal.Decimal {
	if v.VEDAmount.IsPositive() {
		return v.VEDAmount
	}
	if v.NewVehicle && v.CO2Emissions.IsPositive() {
		if rate, ok := c.FirstYearVED(v.CO2Emissions); ok {
			return rate
		}
	}

	key := v.FuelType
	if v.VehicleType == VehicleTypeMotorcycle {
		key = VehicleTypeMotorcycle
	}
	base, ok := c.VED.Standard[key]
	if !ok {
		base = c.VED.Standard[domain.FuelPetrol]
	}
	if v.ListPrice.GreaterThan(c.VED.ExpensiveThreshold) {
		base = base.Add(c.VED.ExpensiveSurcharge)
	}
	return base
}

// FirstYearVED returns the first-year rate for a CO2 figure in g/km.
func (c *VehicleTaxCalculator) FirstYearVED(co2 decimal.Decimal) (decimal.Decimal, bool) {
	return LookupTier(co2, c.VED.FirstYear)
}

func (c *VehicleTaxCalculator) dutyPerLitre(fuelType string) decimal.Decimal {
	if rate, ok := c.Fuel.PerLitre[fuelType]; ok {
		return rate
	}
	return c.Fuel.PerLitre[domain.FuelPetrol]
}

// annualLitres estimates fuel use, preferring monthly spend over mileage.
// spendMode reports which estimate was used.
func (c *VehicleTaxCalculator) annualLitres(v domain.VehicleRecord) (litres decimal.Decimal, spendMode bool) {
	if v.MonthlyFuelSpend.IsPositive() {
		if c.Fuel.PricePerLitre.IsZero() {
			return decimal.Zero, true
		}
		return v.MonthlyFuelSpend.Mul(twelve).Div(c.Fuel.PricePerLitre), true
	}
	if v.WeeklyMileage.IsPositive() && v.MPG.IsPositive() {
		gallons := v.WeeklyMileage.Mul(decimal.NewFromInt(dateutil.WeeksPerYear)).Div(v.MPG)
		return gallons.Mul(c.Fuel.LitresPerGallon), false
	}
	return decimal.Zero, false
}

// FuelDutyFor returns annual fuel duty. Electric vehicles pay none.
func (c *VehicleTaxCalculator) FuelDutyFor(v domain.VehicleRecord) decimal.Decimal {
	if v.FuelType == domain.FuelElectric {
		return decimal.Zero
	}
	litres, _ := c.annualLitres(v)
	return litres.Mul(c.dutyPerLitre(v.FuelType))
}

// FuelVATFor returns the VAT contained in a year of fuel purchases. In mileage
// mode the fuel cost is estimated at the assumed pump price.
func (c *VehicleTaxCalculator) FuelVATFor(v domain.VehicleRecord) decimal.Decimal {
	if v.FuelType == domain.FuelElectric {
		return decimal.Zero
	}
	litres, spendMode := c.annualLitres(v)
	var annualCost decimal.Decimal
	if spendMode {
		annualCost = v.MonthlyFuelSpend.Mul(twelve)
	} else {
		annualCost = litres.Mul(c.Fuel.PricePerLitre)
	}
	return taxIncluded(annualCost, c.VAT.Standard)
}

// InsuranceIPTFor returns the IPT contained in the annual premium.
func (c *VehicleTaxCalculator) InsuranceIPTFor(v domain.VehicleRecord) decimal.Decimal {
	return taxIncluded(positive(v.AnnualInsurance), c.IPT.Standard)
}

// CongestionChargesFor returns annual congestion and ULEZ charges. Unset
// daily charges fall back to the London rates.
func (c *VehicleTaxCalculator) CongestionChargesFor(v domain.VehicleRecord) decimal.Decimal {
	congestion := v.CongestionCharge
	if !congestion.IsPositive() {
		congestion = c.Charges.CongestionDaily
	}
	ulez := v.ULEZCharge
	if !ulez.IsPositive() {
		ulez = c.Charges.ULEZDaily
	}
	annualCongestion := positive(v.DaysPerMonthCongestion).Mul(congestion).Mul(twelve)
	annualULEZ := positive(v.DaysPerMonthULEZ).Mul(ulez).Mul(twelve)
	return annualCongestion.Add(annualULEZ)
}

// ParkingChargesFor returns annual parking charges plus fines.
func (c *VehicleTaxCalculator) ParkingChargesFor(v domain.VehicleRecord) decimal.Decimal {
	return positive(v.MonthlyParkingCharges).Mul(twelve).Add(positive(v.AnnualParkingFines))
}

// RoadTollsFor returns annual toll charges.
func (c *VehicleTaxCalculator) RoadTollsFor(v domain.VehicleRecord) decimal.Decimal {
	return positive(v.AnnualTollCharges)
}

// Calculate returns every vehicle tax for one vehicle.
func (c *VehicleTaxCalculator) Calculate(v domain.VehicleRecord) domain.VehicleTaxes {
	taxes := domain.VehicleTaxes{
		VED:               c.VEDFor(v),
		FuelDuty:          c.FuelDutyFor(v),
		FuelVAT:           c.FuelVATFor(v),
		InsuranceIPT:      c.InsuranceIPTFor(v),
		CongestionCharges: c.CongestionChargesFor(v),
		ParkingCharges:    c.ParkingChargesFor(v),
		RoadTolls:         c.RoadTollsFor(v),
	}
	taxes.Total = taxes.VED.
		Add(taxes.FuelDuty).
		Add(taxes.FuelVAT).
		Add(taxes.InsuranceIPT).
		Add(taxes.CongestionCharges).
		Add(taxes.ParkingCharges).
		Add(taxes.RoadTolls)
	return taxes
}
