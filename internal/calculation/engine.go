package calculation

import (
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// Engine computes household tax footprints from a single rate table. It holds
// no per-request state, so one Engine may serve concurrent callers.
type Engine struct {
	Rates domain.RateTable

	IncomeTax         *IncomeTaxCalculator
	NationalInsurance *NationalInsuranceCalculator
	StudentLoan       *StudentLoanCalculator
	DividendTax       *DividendTaxCalculator
	CapitalGainsTax   *CapitalGainsTaxCalculator
	StampDuty         *StampDutyCalculator
	InheritanceTax    *InheritanceTaxCalculator
	CouncilTax        *CouncilTaxCalculator
	Landlord          *LandlordPassthroughCalculator
	VAT               *VATCalculator
	ExciseDuty        *ExciseDutyCalculator
	IPT               *InsurancePremiumTaxCalculator
	Transport         *TransportTaxCalculator
	Business          *BusinessTaxCalculator

	Logger Logger
}

// NewEngine creates an engine using the built-in rates
func NewEngine() *Engine {
	return NewEngineWithRates(domain.DefaultRateTable())
}

// NewEngineWithRates creates an engine for a specific rate table
func NewEngineWithRates(rates domain.RateTable) *Engine {
	return &Engine{
		Rates:             rates,
		IncomeTax:         NewIncomeTaxCalculator(rates.IncomeTax),
		NationalInsurance: NewNationalInsuranceCalculator(rates.NationalInsurance),
		StudentLoan:       NewStudentLoanCalculator(rates.StudentLoan),
		DividendTax:       NewDividendTaxCalculator(rates.DividendTax, rates.IncomeTax),
		CapitalGainsTax:   NewCapitalGainsTaxCalculator(rates.CapitalGainsTax),
		StampDuty:         NewStampDutyCalculator(rates.StampDuty),
		InheritanceTax:    NewInheritanceTaxCalculator(rates.InheritanceTax),
		CouncilTax:        NewCouncilTaxCalculator(rates.CouncilTax),
		Landlord:          NewLandlordPassthroughCalculator(rates.LandlordPassthrough),
		VAT:               NewVATCalculator(rates.VAT),
		ExciseDuty:        NewExciseDutyCalculator(rates.AlcoholDuty, rates.TobaccoDuty),
		IPT:               NewInsurancePremiumTaxCalculator(rates.InsurancePremiumTax),
		Transport:         NewTransportTaxCalculator(rates),
		Business:          NewBusinessTaxCalculator(rates),
		Logger:            NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

var defaultEngine = NewEngine()

// CalculateTaxFootprint computes a full footprint with the built-in rates.
func CalculateTaxFootprint(form domain.FormInput) *domain.FootprintResult {
	return defaultEngine.TaxFootprint(form)
}

// CalculateLiveTaxPercentage computes a live estimate with the built-in rates.
func CalculateLiveTaxPercentage(form domain.FormInput) *domain.LiveResult {
	return defaultEngine.LiveTaxPercentage(form)
}
