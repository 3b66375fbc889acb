package calculation

import (
	"encoding/json"
	"testing"
)

func TestIncomeFromInput(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "30000"},
		{"empty string", "", "30000"},
		{"unknown key", "nonexistent-key", "30000"},
		{"legacy bracket", "under15000", "12000"},
		{"top bracket", "over150000", "175000"},
		{"numeric string", "45000", "45000"},
		{"padded numeric string", " 40000 ", "40000"},
		{"string zero", "0", "0"},
		{"int", 52000, "52000"},
		{"float", 52000.5, "52000.5"},
		{"numeric zero", 0, "30000"},
		{"json number", json.Number("61000"), "61000"},
		{"bool", true, "30000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, IncomeFromInput(tt.value))
		})
	}
}

func TestMonthlySpendFromRange(t *testing.T) {
	assertDecimal(t, "0", MonthlySpendFromRange("nonexistent-key"))
	assertDecimal(t, "5", MonthlySpendFromRange("under10"))
	assertDecimal(t, "25", MonthlySpendFromRange("under50"))
	assertDecimal(t, "150", MonthlySpendFromRange("100to200"))
}

func TestSpendFromRangeIsPerDomain(t *testing.T) {
	// "under50" means different things to different questions
	assertDecimal(t, "25", SpendFromRange(SpendFuel, "under50"))
	assertDecimal(t, "0", SpendFromRange(SpendGroceries, "under50"))
	assertDecimal(t, "35", SpendFromRange(SpendTaxi, "20to50"))
	assertDecimal(t, "35", SpendFromRange(SpendAlcohol, "20to50"))
	assertDecimal(t, "150", SpendFromRange(SpendFuel, "100to200"))
	assertDecimal(t, "150", SpendFromRange(SpendGroceries, "100to200"))
}

func TestSpendFromRangeFallbacks(t *testing.T) {
	assertDecimal(t, "80", SpendFromRange(SpendFuel, 80))
	assertDecimal(t, "80.5", SpendFromRange(SpendFuel, "80.5"))
	assertDecimal(t, "0", SpendFromRange(SpendFuel, -5))
	assertDecimal(t, "0", SpendFromRange(SpendFuel, "nonexistent-key"))
	assertDecimal(t, "0", SpendFromRange(SpendFuel, nil))
	assertDecimal(t, "0", SpendFromRange(SpendDomain("unknown"), "under50"))
}
