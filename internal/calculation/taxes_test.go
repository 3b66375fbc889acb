package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

func TestIncomeTaxCalculation(t *testing.T) {
	calculator := NewIncomeTaxCalculator(domain.DefaultRateTable().IncomeTax)

	tests := []struct {
		name   string
		income string
		want   string
	}{
		{"no income", "0", "0"},
		{"below personal allowance", "10000", "0"},
		{"at personal allowance", "12570", "0"},
		{"basic rate only", "30000", "3486"},
		{"at basic rate threshold", "50270", "7540"},
		{"higher rate", "60000", "11432"}, // 37700*0.20 + 9730*0.40
		{"additional rate", "150000", "48675"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, calculator.Calculate(d(tt.income)))
		})
	}
}

func TestIncomeTaxNeverPositiveBelowAllowance(t *testing.T) {
	calculator := NewIncomeTaxCalculator(domain.DefaultRateTable().IncomeTax)
	for income := int64(0); income <= 12570; income += 419 {
		assert.True(t, calculator.Calculate(decimal.NewFromInt(income)).IsZero(), "income %d", income)
	}
}

func TestIsHigherRateTaxpayer(t *testing.T) {
	calculator := NewIncomeTaxCalculator(domain.DefaultRateTable().IncomeTax)
	assert.False(t, calculator.IsHigherRateTaxpayer(d("50270")))
	assert.True(t, calculator.IsHigherRateTaxpayer(d("50271")))
}

func TestNationalInsuranceCalculation(t *testing.T) {
	calculator := NewNationalInsuranceCalculator(domain.DefaultRateTable().NationalInsurance)

	tests := []struct {
		name   string
		income string
		status string
		want   string
	}{
		{"employed below threshold", "12000", StatusEmployed, "0"},
		{"employed main rate", "30000", StatusEmployed, "1394.4"},
		{"employed above upper limit", "60000", StatusEmployed, "3210.6"},
		{"self-employed", "30000", StatusSelfEmployed, "1045.8"},
		{"both halves the self-employed base", "40000", StatusBoth, "2640.2"},
		{"retired", "40000", StatusRetired, "0"},
		{"unemployed", "40000", StatusUnemployed, "0"},
		{"missing status", "40000", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, calculator.Calculate(d(tt.income), tt.status))
		})
	}
}

func TestStudentLoanCalculation(t *testing.T) {
	calculator := NewStudentLoanCalculator(domain.DefaultRateTable().StudentLoan)

	tests := []struct {
		name   string
		income string
		plan   string
		want   string
	}{
		{"plan 2", "40000", "plan2", "1143.45"},
		{"plan 5 uses 6%", "30000", "plan5", "540"},
		{"below threshold", "20000", "plan1", "0"},
		{"no loan", "40000", StudentLoanNone, "0"},
		{"unknown plan", "40000", "plan9", "0"},
		{"empty plan", "40000", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, calculator.Calculate(d(tt.income), tt.plan))
		})
	}
}

func TestDividendTaxCalculation(t *testing.T) {
	rates := domain.DefaultRateTable()
	calculator := NewDividendTaxCalculator(rates.DividendTax, rates.IncomeTax)

	assertDecimal(t, "0", calculator.Calculate(d("400"), d("30000")), "within allowance")
	assertDecimal(t, "131.25", calculator.Calculate(d("2000"), d("30000")))
	assertDecimal(t, "506.25", calculator.Calculate(d("2000"), d("60000")))
	assertDecimal(t, "590.25", calculator.Calculate(d("2000"), d("130000")))
}

func TestCapitalGainsTaxCalculation(t *testing.T) {
	calculator := NewCapitalGainsTaxCalculator(domain.DefaultRateTable().CapitalGainsTax)

	tests := []struct {
		name        string
		gain        string
		higher      bool
		residential bool
		want        string
	}{
		{"within exempt amount", "2000", false, false, "0"},
		{"basic rate", "13000", false, false, "1000"},
		{"higher rate", "13000", true, false, "2000"},
		{"basic rate residential", "13000", false, true, "1800"},
		{"higher rate residential", "13000", true, true, "2800"},
		{"loss", "-5000", true, true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, calculator.Calculate(d(tt.gain), tt.higher, tt.residential))
		})
	}
}
