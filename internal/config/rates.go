package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
	"github.com/taxfootprint/footprint-calculator/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRates is wrapped by every rate table validation failure.
var ErrInvalidRates = errors.New("invalid rate table")

// councilBands are the property bands every rate table must price.
var councilBands = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// RatesLoader reads rate tables from YAML files
type RatesLoader struct{}

// NewRatesLoader creates a new rates loader
func NewRatesLoader() *RatesLoader {
	return &RatesLoader{}
}

// LoadFromFile overlays the YAML file at path onto the built-in rate table and
// validates the result. Keys absent from the file keep their built-in values,
// so a file may override a single rate.
func (rl *RatesLoader) LoadFromFile(path string) (*domain.RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return rl.Parse(data)
}

// Parse overlays YAML data onto the built-in rate table and validates it.
func (rl *RatesLoader) Parse(data []byte) (*domain.RateTable, error) {
	rates := domain.DefaultRateTable()
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := rl.ValidateRates(&rates); err != nil {
		return nil, fmt.Errorf("rate validation failed: %w", err)
	}
	return &rates, nil
}

// SaveRates writes rates to path as YAML.
func (rl *RatesLoader) SaveRates(rates *domain.RateTable, path string) error {
	data, err := yaml.Marshal(rates)
	if err != nil {
		return fmt.Errorf("failed to marshal rates: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// ValidateRates checks the structural invariants the calculators rely on.
func (rl *RatesLoader) ValidateRates(rates *domain.RateTable) error {
	if rates.TaxYear == "" {
		return fmt.Errorf("%w: tax year is required", ErrInvalidRates)
	}
	if _, err := dateutil.ParseTaxYearLabel(rates.TaxYear); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRates, err)
	}

	fractions := map[string]decimal.Decimal{
		"income_tax.basic_rate":                 rates.IncomeTax.BasicRate,
		"income_tax.higher_rate":                rates.IncomeTax.HigherRate,
		"income_tax.additional_rate":            rates.IncomeTax.AdditionalRate,
		"national_insurance.employee.main":      rates.NationalInsurance.Employee.MainRate,
		"national_insurance.employee.upper":     rates.NationalInsurance.Employee.UpperRate,
		"national_insurance.self_employed.main": rates.NationalInsurance.SelfEmployed.MainRate,
		"vat.standard":                          rates.VAT.Standard,
		"vat.reduced":                           rates.VAT.Reduced,
		"insurance_premium_tax.standard":        rates.InsurancePremiumTax.Standard,
		"insurance_premium_tax.higher":          rates.InsurancePremiumTax.Higher,
		"alcohol_duty.rate":                     rates.AlcoholDuty.Rate,
		"tobacco_duty.rate":                     rates.TobaccoDuty.Rate,
		"landlord_passthrough.rate":             rates.LandlordPassthrough.Rate,
		"capital_gains_tax.basic_rate":          rates.CapitalGainsTax.BasicRate,
		"capital_gains_tax.higher_rate":         rates.CapitalGainsTax.HigherRate,
		"inheritance_tax.rate":                  rates.InheritanceTax.Rate,
		"corporation_tax.rate":                  rates.CorporationTax.Rate,
		"dividend_tax.additional_rate":          rates.DividendTax.AdditionalRate,
		"live_estimates.fuel_duty_share":        rates.LiveEstimates.FuelDutyShare,
		"live_estimates.vatable_groceries":      rates.LiveEstimates.VATableGroceries,
	}
	for name, rate := range fractions {
		if err := validateFraction(name, rate); err != nil {
			return err
		}
	}

	if rates.IncomeTax.BasicRateThreshold.LessThanOrEqual(rates.IncomeTax.PersonalAllowance) {
		return fmt.Errorf("%w: income_tax.basic_rate_threshold must exceed the personal allowance", ErrInvalidRates)
	}
	if rates.IncomeTax.AdditionalRateThreshold.LessThanOrEqual(rates.IncomeTax.BasicRateThreshold) {
		return fmt.Errorf("%w: income_tax.additional_rate_threshold must exceed the basic rate threshold", ErrInvalidRates)
	}
	if rates.NationalInsurance.UpperEarningsLimit.LessThan(rates.NationalInsurance.PrimaryThreshold) {
		return fmt.Errorf("%w: national_insurance.upper_earnings_limit is below the primary threshold", ErrInvalidRates)
	}

	for _, band := range councilBands {
		amount, ok := rates.CouncilTax.Bands[band]
		if !ok {
			return fmt.Errorf("%w: council_tax.bands is missing band %s", ErrInvalidRates, band)
		}
		if amount.IsNegative() {
			return fmt.Errorf("%w: council_tax.bands.%s cannot be negative", ErrInvalidRates, band)
		}
	}

	for plan, terms := range rates.StudentLoan.Plans {
		if err := validateFraction("student_loan.plans."+plan+".rate", terms.Rate); err != nil {
			return err
		}
	}

	// VED first-year tiers carry flat amounts rather than rates.
	if err := validateTiers("ved.first_year", rates.VED.FirstYear, false); err != nil {
		return err
	}
	if err := validateTiers("stamp_duty.standard", rates.StampDuty.Standard, true); err != nil {
		return err
	}
	if err := validateTiers("stamp_duty.first_time_buyer", rates.StampDuty.FirstTimeBuyer, true); err != nil {
		return err
	}
	if err := validateTiers("gambling_duty.gaming_duty", rates.GamblingDuty.GamingDuty, true); err != nil {
		return err
	}

	if rates.Projection.Years <= 0 || rates.Projection.Years > 50 {
		return fmt.Errorf("%w: projection.years must be between 1 and 50", ErrInvalidRates)
	}
	if rates.Projection.GrowthRate.LessThan(decimal.NewFromFloat(-1)) {
		return fmt.Errorf("%w: projection.growth_rate cannot be less than -100%%", ErrInvalidRates)
	}

	return nil
}

func validateFraction(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s must be between 0 and 1, got %s", ErrInvalidRates, name, rate.String())
	}
	return nil
}

// validateTiers requires a non-empty schedule with strictly ascending bounded
// thresholds and a single unbounded final tier.
func validateTiers(name string, tiers domain.Tiers, fractional bool) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: %s has no tiers", ErrInvalidRates, name)
	}
	last := len(tiers) - 1
	for i, tier := range tiers {
		if tier.Unbounded != (i == last) {
			return fmt.Errorf("%w: %s: only the final tier may be unbounded and it must be", ErrInvalidRates, name)
		}
		if i > 0 && i < last && !tier.Threshold.GreaterThan(tiers[i-1].Threshold) {
			return fmt.Errorf("%w: %s: tier %d threshold is not ascending", ErrInvalidRates, name, i)
		}
		if tier.Rate.IsNegative() {
			return fmt.Errorf("%w: %s: tier %d rate cannot be negative", ErrInvalidRates, name, i)
		}
		if fractional {
			if err := validateFraction(fmt.Sprintf("%s[%d].rate", name, i), tier.Rate); err != nil {
				return err
			}
		}
	}
	return nil
}
