package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxYear is the tax year the built-in rates describe.
const DefaultTaxYear = "2025/26"

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func bounded(threshold, rate float64) Tier {
	return Tier{Threshold: dec(threshold), Rate: dec(rate)}
}

func unbounded(rate float64) Tier {
	return Tier{Rate: dec(rate), Unbounded: true}
}

// DefaultRateTable returns the built-in 2025/26 rates. Each call builds a fresh
// table, so callers may modify the result without affecting anyone else.
func DefaultRateTable() RateTable {
	return RateTable{
		TaxYear: DefaultTaxYear,
		IncomeTax: IncomeTaxRates{
			Type:                    TaxTypeDirect,
			PersonalAllowance:       dec(12570),
			BasicRate:               dec(0.20),
			HigherRate:              dec(0.40),
			AdditionalRate:          dec(0.45),
			BasicRateThreshold:      dec(50270),
			AdditionalRateThreshold: dec(125140),
		},
		NationalInsurance: NationalInsuranceRates{
			Type:               TaxTypeDirect,
			PrimaryThreshold:   dec(12570),
			UpperEarningsLimit: dec(50270),
			Employee:           NIBand{MainRate: dec(0.08), UpperRate: dec(0.02)},
			SelfEmployed:       NIBand{MainRate: dec(0.06), UpperRate: dec(0.02)},
		},
		VAT: VATRates{
			Type:     TaxTypeIndirect,
			Standard: dec(0.20),
			Reduced:  dec(0.05),
		},
		CouncilTax: CouncilTaxRates{
			Type: TaxTypeDirect,
			Bands: map[string]decimal.Decimal{
				"A": dec(1200),
				"B": dec(1400),
				"C": dec(1600),
				"D": dec(1800),
				"E": dec(2200),
				"F": dec(2600),
				"G": dec(3000),
				"H": dec(3600),
			},
			Unknown: dec(1800),
		},
		FuelDuty: FuelDutyRates{
			Type: TaxTypeIndirect,
			PerLitre: map[string]decimal.Decimal{
				"petrol":  dec(0.5295),
				"diesel":  dec(0.5295),
				"biofuel": dec(0.5295),
				"lpg":     dec(0.3161),
			},
			PricePerLitre:   dec(1.50),
			LitresPerGallon: dec(4.54609),
		},
		VED: VEDRates{
			Type: TaxTypeDirect,
			Standard: map[string]decimal.Decimal{
				"petrol":     dec(165),
				"diesel":     dec(165),
				"hybrid":     dec(165),
				"phev":       dec(165),
				"electric":   dec(165),
				"motorcycle": dec(101),
			},
			ExpensiveSurcharge: dec(425),
			ExpensiveThreshold: dec(40000),
			FirstYear: Tiers{
				bounded(0, 10),
				bounded(50, 30),
				bounded(75, 130),
				bounded(90, 165),
				bounded(100, 185),
				bounded(110, 205),
				bounded(130, 240),
				bounded(150, 260),
				bounded(170, 570),
				bounded(190, 955),
				bounded(225, 1420),
				bounded(255, 2015),
				unbounded(2365),
			},
		},
		TVLicence: FlatRate{Type: TaxTypeDirect, Amount: dec(174.50)},
		InsurancePremiumTax: InsurancePremiumTaxRates{
			Type:     TaxTypeIndirect,
			Standard: dec(0.12),
			Higher:   dec(0.20),
		},
		AirPassengerDuty: AirPassengerDutyRates{
			Type: TaxTypeIndirect,
			Bands: map[string]APDBand{
				"domestic":      {Economy: dec(7), Premium: dec(14)},
				"shortHaul":     {Economy: dec(13), Premium: dec(28)},
				"longHaul":      {Economy: dec(90), Premium: dec(216)},
				"ultraLongHaul": {Economy: dec(94), Premium: dec(224)},
			},
		},
		TransportCharges: TransportChargeRates{
			Type:            TaxTypeDirect,
			CongestionDaily: dec(15),
			ULEZDaily:       dec(12.50),
			CleanAirZones: map[string]decimal.Decimal{
				"birmingham": dec(8),
				"bath":       dec(9),
				"bradford":   dec(9),
				"bristol":    dec(9),
				"portsmouth": dec(10),
				"sheffield":  dec(10),
				"newcastle":  dec(12.50),
			},
			Tolls: map[string]decimal.Decimal{
				"dartford": dec(2.50),
				"m6":       dec(7.10),
				"mersey":   dec(2.00),
				"clifton":  dec(1.00),
			},
			ParkingFine:     PenaltyRate{Discounted: dec(80), Full: dec(130)},
			BusLaneFine:     PenaltyRate{Discounted: dec(70), Full: dec(160)},
			SpeedingFine:    dec(100),
			NoInsuranceFine: dec(300),
		},
		AlcoholDuty: SpendShareRate{Type: TaxTypeIndirect, Rate: dec(0.25)},
		TobaccoDuty: SpendShareRate{Type: TaxTypeIndirect, Rate: dec(0.80)},
		StudentLoan: StudentLoanRates{
			Type: TaxTypeDirect,
			Plans: map[string]StudentLoanPlan{
				"plan1": {Threshold: dec(22015), Rate: dec(0.09)},
				"plan2": {Threshold: dec(27295), Rate: dec(0.09)},
				"plan4": {Threshold: dec(27660), Rate: dec(0.09)},
				"plan5": {Threshold: dec(21000), Rate: dec(0.06)},
			},
		},
		StampDuty: StampDutyRates{
			Type: TaxTypeDirect,
			Standard: Tiers{
				bounded(250000, 0),
				bounded(925000, 0.05),
				bounded(1500000, 0.10),
				unbounded(0.12),
			},
			FirstTimeBuyer: Tiers{
				bounded(425000, 0),
				bounded(625000, 0.05),
				bounded(925000, 0.05),
				bounded(1500000, 0.10),
				unbounded(0.12),
			},
		},
		CapitalGainsTax: CapitalGainsTaxRates{
			Type:                  TaxTypeDirect,
			BasicRate:             dec(0.10),
			HigherRate:            dec(0.20),
			ResidentialBasicRate:  dec(0.18),
			ResidentialHigherRate: dec(0.28),
			AnnualExemptAmount:    dec(3000),
		},
		InheritanceTax: InheritanceTaxRates{
			Type:                 TaxTypeDirect,
			Threshold:            dec(325000),
			ResidenceNilRateBand: dec(175000),
			Rate:                 dec(0.40),
		},
		CorporationTax: CorporationTaxRates{
			Type:                  TaxTypeDirect,
			Rate:                  dec(0.25),
			SmallProfitsRate:      dec(0.19),
			SmallProfitsThreshold: dec(50000),
		},
		DividendTax: DividendTaxRates{
			Type:           TaxTypeDirect,
			Allowance:      dec(500),
			BasicRate:      dec(0.0875),
			HigherRate:     dec(0.3375),
			AdditionalRate: dec(0.3935),
		},
		PlasticPackagingTax: PlasticPackagingTaxRates{Type: TaxTypeIndirect, RatePerTonne: dec(210.82)},
		LandfillTax: LandfillTaxRates{
			Type:         TaxTypeIndirect,
			StandardRate: dec(102.10),
			LowerRate:    dec(3.25),
		},
		GamblingDuty: GamblingDutyRates{
			Type:           TaxTypeIndirect,
			GeneralBetting: dec(0.15),
			RemoteBetting:  dec(0.21),
			GamingDuty: Tiers{
				bounded(2584000, 0.15),
				bounded(4436000, 0.20),
				bounded(7513000, 0.30),
				bounded(14340000, 0.40),
				unbounded(0.50),
			},
		},
		LandlordPassthrough: SpendShareRate{Type: TaxTypeIndirect, Rate: dec(0.15)},
		Projection:          ProjectionRates{GrowthRate: dec(0.02), Years: 5},
		LiveEstimates: LiveEstimateRates{
			FuelDutyShare:     dec(0.4),
			VATableGroceries:  dec(0.3),
			AlcoholDutyAnnual: dec(500),
			TobaccoDutyAnnual: dec(2000),
		},
	}
}
