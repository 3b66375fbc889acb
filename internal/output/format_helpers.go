package output

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
	money "github.com/taxfootprint/footprint-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as GBP with pence and thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// breakdownLabels are the human names of breakdown keys.
var breakdownLabels = map[string]string{
	domain.KeyIncomeTax:              "Income Tax",
	domain.KeyNationalInsurance:      "National Insurance",
	domain.KeyStudentLoan:            "Student Loan",
	domain.KeyCouncilTax:             "Council Tax",
	domain.KeyVAT:                    "VAT",
	domain.KeyTransport:              "Transport",
	domain.KeyTVLicence:              "TV Licence",
	domain.KeyAlcoholTobaccoDuty:     "Alcohol & Tobacco Duty",
	domain.KeyInsurancePremiumTax:    "Insurance Premium Tax",
	domain.KeyLandlordTaxPassthrough: "Landlord Tax Pass-through",
	domain.KeyCapitalGainsTax:        "Capital Gains Tax",
	domain.KeyDividendTax:            "Dividend Tax",
}

// BreakdownLabel returns the display name for a breakdown key, or the key
// itself when it has none.
func BreakdownLabel(key string) string {
	if label, ok := breakdownLabels[key]; ok {
		return label
	}
	return key
}
