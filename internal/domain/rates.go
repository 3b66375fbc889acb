package domain

import (
	"github.com/shopspring/decimal"
)

// TaxType classifies a tax as paid straight to the state or embedded in prices.
type TaxType string

const (
	TaxTypeDirect   TaxType = "direct"
	TaxTypeIndirect TaxType = "indirect"
	TaxTypeMixed    TaxType = "mixed"
)

// Tier is one band of a tiered schedule. The band covers values up to and
// including Threshold; an unbounded tier has no upper limit.
type Tier struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Unbounded bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
}

// Tiers is an ascending tier schedule whose final tier is unbounded.
type Tiers []Tier

// Contains reports whether value falls at or below the tier's upper bound.
func (t Tier) Contains(value decimal.Decimal) bool {
	return t.Unbounded || value.LessThanOrEqual(t.Threshold)
}

// IncomeTaxRates holds the rest-of-UK income tax bands.
type IncomeTaxRates struct {
	Type                    TaxType         `yaml:"type" json:"type"`
	PersonalAllowance       decimal.Decimal `yaml:"personal_allowance" json:"personal_allowance"`
	BasicRate               decimal.Decimal `yaml:"basic_rate" json:"basic_rate"`
	HigherRate              decimal.Decimal `yaml:"higher_rate" json:"higher_rate"`
	AdditionalRate          decimal.Decimal `yaml:"additional_rate" json:"additional_rate"`
	BasicRateThreshold      decimal.Decimal `yaml:"basic_rate_threshold" json:"basic_rate_threshold"`
	AdditionalRateThreshold decimal.Decimal `yaml:"additional_rate_threshold" json:"additional_rate_threshold"`
}

// NIBand is the pair of marginal rates applied to one class of National Insurance.
type NIBand struct {
	MainRate  decimal.Decimal `yaml:"main_rate" json:"main_rate"`
	UpperRate decimal.Decimal `yaml:"upper_rate" json:"upper_rate"`
}

// NationalInsuranceRates holds Class 1 employee and Class 4 self-employed rates.
type NationalInsuranceRates struct {
	Type               TaxType         `yaml:"type" json:"type"`
	PrimaryThreshold   decimal.Decimal `yaml:"primary_threshold" json:"primary_threshold"`
	UpperEarningsLimit decimal.Decimal `yaml:"upper_earnings_limit" json:"upper_earnings_limit"`
	Employee           NIBand          `yaml:"employee" json:"employee"`
	SelfEmployed       NIBand          `yaml:"self_employed" json:"self_employed"`
}

// VATRates holds the standard and reduced VAT rates.
type VATRates struct {
	Type     TaxType         `yaml:"type" json:"type"`
	Standard decimal.Decimal `yaml:"standard" json:"standard"`
	Reduced  decimal.Decimal `yaml:"reduced" json:"reduced"`
}

// CouncilTaxRates maps property bands A-H to annual charges.
type CouncilTaxRates struct {
	Type    TaxType                    `yaml:"type" json:"type"`
	Bands   map[string]decimal.Decimal `yaml:"bands" json:"bands"`
	Unknown decimal.Decimal            `yaml:"unknown" json:"unknown"`
}

// FuelDutyRates holds per-litre duty and the conversions used to derive litres.
type FuelDutyRates struct {
	Type            TaxType                    `yaml:"type" json:"type"`
	PerLitre        map[string]decimal.Decimal `yaml:"per_litre" json:"per_litre"`
	PricePerLitre   decimal.Decimal            `yaml:"price_per_litre" json:"price_per_litre"`
	LitresPerGallon decimal.Decimal            `yaml:"litres_per_gallon" json:"litres_per_gallon"`
}

// VEDRates holds Vehicle Excise Duty standard rates and the first-year CO2 bands.
type VEDRates struct {
	Type               TaxType                    `yaml:"type" json:"type"`
	Standard           map[string]decimal.Decimal `yaml:"standard" json:"standard"`
	ExpensiveSurcharge decimal.Decimal            `yaml:"expensive_surcharge" json:"expensive_surcharge"`
	ExpensiveThreshold decimal.Decimal            `yaml:"expensive_threshold" json:"expensive_threshold"`
	FirstYear          Tiers                      `yaml:"first_year" json:"first_year"`
}

// FlatRate is a single-amount charge such as the TV licence.
type FlatRate struct {
	Type   TaxType         `yaml:"type" json:"type"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// InsurancePremiumTaxRates holds the standard and higher IPT rates.
type InsurancePremiumTaxRates struct {
	Type     TaxType         `yaml:"type" json:"type"`
	Standard decimal.Decimal `yaml:"standard" json:"standard"`
	Higher   decimal.Decimal `yaml:"higher" json:"higher"`
}

// APDBand holds the per-passenger duty for each cabin class of one distance band.
type APDBand struct {
	Economy decimal.Decimal `yaml:"economy" json:"economy"`
	Premium decimal.Decimal `yaml:"premium" json:"premium"`
}

// AirPassengerDutyRates maps flight types to duty bands.
type AirPassengerDutyRates struct {
	Type  TaxType            `yaml:"type" json:"type"`
	Bands map[string]APDBand `yaml:"bands" json:"bands"`
}

// PenaltyRate holds a discounted (early payment) and full penalty charge.
type PenaltyRate struct {
	Discounted decimal.Decimal `yaml:"discounted" json:"discounted"`
	Full       decimal.Decimal `yaml:"full" json:"full"`
}

// TransportChargeRates holds road user charges and penalty amounts.
type TransportChargeRates struct {
	Type            TaxType                    `yaml:"type" json:"type"`
	CongestionDaily decimal.Decimal            `yaml:"congestion_daily" json:"congestion_daily"`
	ULEZDaily       decimal.Decimal            `yaml:"ulez_daily" json:"ulez_daily"`
	CleanAirZones   map[string]decimal.Decimal `yaml:"clean_air_zones" json:"clean_air_zones"`
	Tolls           map[string]decimal.Decimal `yaml:"tolls" json:"tolls"`
	ParkingFine     PenaltyRate                `yaml:"parking_fine" json:"parking_fine"`
	BusLaneFine     PenaltyRate                `yaml:"bus_lane_fine" json:"bus_lane_fine"`
	SpeedingFine    decimal.Decimal            `yaml:"speeding_fine" json:"speeding_fine"`
	NoInsuranceFine decimal.Decimal            `yaml:"no_insurance_fine" json:"no_insurance_fine"`
}

// SpendShareRate is a duty modelled as a share of consumer spend.
type SpendShareRate struct {
	Type TaxType         `yaml:"type" json:"type"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// StudentLoanPlan is a repayment threshold with a flat marginal rate.
type StudentLoanPlan struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// StudentLoanRates maps plan identifiers to repayment terms.
type StudentLoanRates struct {
	Type  TaxType                    `yaml:"type" json:"type"`
	Plans map[string]StudentLoanPlan `yaml:"plans" json:"plans"`
}

// StampDutyRates holds the residential SDLT schedules.
type StampDutyRates struct {
	Type           TaxType `yaml:"type" json:"type"`
	Standard       Tiers   `yaml:"standard" json:"standard"`
	FirstTimeBuyer Tiers   `yaml:"first_time_buyer" json:"first_time_buyer"`
}

// CapitalGainsTaxRates holds CGT rates by taxpayer band and asset class.
type CapitalGainsTaxRates struct {
	Type                  TaxType         `yaml:"type" json:"type"`
	BasicRate             decimal.Decimal `yaml:"basic_rate" json:"basic_rate"`
	HigherRate            decimal.Decimal `yaml:"higher_rate" json:"higher_rate"`
	ResidentialBasicRate  decimal.Decimal `yaml:"residential_basic_rate" json:"residential_basic_rate"`
	ResidentialHigherRate decimal.Decimal `yaml:"residential_higher_rate" json:"residential_higher_rate"`
	AnnualExemptAmount    decimal.Decimal `yaml:"annual_exempt_amount" json:"annual_exempt_amount"`
}

// InheritanceTaxRates holds the nil-rate bands and the charge above them.
type InheritanceTaxRates struct {
	Type                 TaxType         `yaml:"type" json:"type"`
	Threshold            decimal.Decimal `yaml:"threshold" json:"threshold"`
	ResidenceNilRateBand decimal.Decimal `yaml:"residence_nil_rate_band" json:"residence_nil_rate_band"`
	Rate                 decimal.Decimal `yaml:"rate" json:"rate"`
}

// CorporationTaxRates holds the main and small profits rates.
type CorporationTaxRates struct {
	Type                  TaxType         `yaml:"type" json:"type"`
	Rate                  decimal.Decimal `yaml:"rate" json:"rate"`
	SmallProfitsRate      decimal.Decimal `yaml:"small_profits_rate" json:"small_profits_rate"`
	SmallProfitsThreshold decimal.Decimal `yaml:"small_profits_threshold" json:"small_profits_threshold"`
}

// DividendTaxRates holds the dividend allowance and band rates.
type DividendTaxRates struct {
	Type           TaxType         `yaml:"type" json:"type"`
	Allowance      decimal.Decimal `yaml:"allowance" json:"allowance"`
	BasicRate      decimal.Decimal `yaml:"basic_rate" json:"basic_rate"`
	HigherRate     decimal.Decimal `yaml:"higher_rate" json:"higher_rate"`
	AdditionalRate decimal.Decimal `yaml:"additional_rate" json:"additional_rate"`
}

// PlasticPackagingTaxRates holds the per-tonne charge on non-recycled packaging.
type PlasticPackagingTaxRates struct {
	Type         TaxType         `yaml:"type" json:"type"`
	RatePerTonne decimal.Decimal `yaml:"rate_per_tonne" json:"rate_per_tonne"`
}

// LandfillTaxRates holds the standard and lower per-tonne rates.
type LandfillTaxRates struct {
	Type         TaxType         `yaml:"type" json:"type"`
	StandardRate decimal.Decimal `yaml:"standard_rate" json:"standard_rate"`
	LowerRate    decimal.Decimal `yaml:"lower_rate" json:"lower_rate"`
}

// GamblingDutyRates holds betting duties and the progressive gaming duty schedule.
type GamblingDutyRates struct {
	Type           TaxType         `yaml:"type" json:"type"`
	GeneralBetting decimal.Decimal `yaml:"general_betting" json:"general_betting"`
	RemoteBetting  decimal.Decimal `yaml:"remote_betting" json:"remote_betting"`
	GamingDuty     Tiers           `yaml:"gaming_duty" json:"gaming_duty"`
}

// ProjectionRates holds the growth assumption for multi-year totals.
type ProjectionRates struct {
	GrowthRate decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
	Years      int             `yaml:"years" json:"years"`
}

// LiveEstimateRates holds the coarse assumptions the live estimator uses in
// place of the full per-vehicle and per-product models.
type LiveEstimateRates struct {
	FuelDutyShare     decimal.Decimal `yaml:"fuel_duty_share" json:"fuel_duty_share"`
	VATableGroceries  decimal.Decimal `yaml:"vatable_groceries_share" json:"vatable_groceries_share"`
	AlcoholDutyAnnual decimal.Decimal `yaml:"alcohol_duty_annual" json:"alcohol_duty_annual"`
	TobaccoDutyAnnual decimal.Decimal `yaml:"tobacco_duty_annual" json:"tobacco_duty_annual"`
}

// RateTable is the full set of tax rates for one tax year.
type RateTable struct {
	TaxYear             string                   `yaml:"tax_year" json:"tax_year"`
	IncomeTax           IncomeTaxRates           `yaml:"income_tax" json:"income_tax"`
	NationalInsurance   NationalInsuranceRates   `yaml:"national_insurance" json:"national_insurance"`
	VAT                 VATRates                 `yaml:"vat" json:"vat"`
	CouncilTax          CouncilTaxRates          `yaml:"council_tax" json:"council_tax"`
	FuelDuty            FuelDutyRates            `yaml:"fuel_duty" json:"fuel_duty"`
	VED                 VEDRates                 `yaml:"ved" json:"ved"`
	TVLicence           FlatRate                 `yaml:"tv_licence" json:"tv_licence"`
	InsurancePremiumTax InsurancePremiumTaxRates `yaml:"insurance_premium_tax" json:"insurance_premium_tax"`
	AirPassengerDuty    AirPassengerDutyRates    `yaml:"air_passenger_duty" json:"air_passenger_duty"`
	TransportCharges    TransportChargeRates     `yaml:"transport_charges" json:"transport_charges"`
	AlcoholDuty         SpendShareRate           `yaml:"alcohol_duty" json:"alcohol_duty"`
	TobaccoDuty         SpendShareRate           `yaml:"tobacco_duty" json:"tobacco_duty"`
	StudentLoan         StudentLoanRates         `yaml:"student_loan" json:"student_loan"`
	StampDuty           StampDutyRates           `yaml:"stamp_duty" json:"stamp_duty"`
	CapitalGainsTax     CapitalGainsTaxRates     `yaml:"capital_gains_tax" json:"capital_gains_tax"`
	InheritanceTax      InheritanceTaxRates      `yaml:"inheritance_tax" json:"inheritance_tax"`
	CorporationTax      CorporationTaxRates      `yaml:"corporation_tax" json:"corporation_tax"`
	DividendTax         DividendTaxRates         `yaml:"dividend_tax" json:"dividend_tax"`
	PlasticPackagingTax PlasticPackagingTaxRates `yaml:"plastic_packaging_tax" json:"plastic_packaging_tax"`
	LandfillTax         LandfillTaxRates         `yaml:"landfill_tax" json:"landfill_tax"`
	GamblingDuty        GamblingDutyRates        `yaml:"gambling_duty" json:"gambling_duty"`
	LandlordPassthrough SpendShareRate           `yaml:"landlord_passthrough" json:"landlord_passthrough"`
	Projection          ProjectionRates          `yaml:"projection" json:"projection"`
	LiveEstimates       LiveEstimateRates        `yaml:"live_estimates" json:"live_estimates"`
}
