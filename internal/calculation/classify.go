package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// SplitByType separates a breakdown into its direct and indirect parts. Mixed
// entries contribute their direct portion to one side and their indirect
// portion to the other.
func SplitByType(b domain.TaxBreakdown) (direct, indirect domain.TaxBreakdown) {
	direct = make(domain.TaxBreakdown)
	indirect = make(domain.TaxBreakdown)
	for key, entry := range b {
		switch e := entry.(type) {
		case domain.DirectEntry:
			direct[key] = e
		case domain.IndirectEntry:
			indirect[key] = e
		case domain.MixedEntry:
			direct[key] = domain.DirectEntry{Amount: e.DirectAmount}
			indirect[key] = domain.IndirectEntry{Amount: e.IndirectAmount}
		}
	}
	return direct, indirect
}

// TotalByType sums the portion of every entry that is of kind. Asking for
// TaxTypeMixed sums whole mixed entries.
func TotalByType(b domain.TaxBreakdown, kind domain.TaxType) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range b {
		switch kind {
		case domain.TaxTypeDirect:
			d, _ := entry.Split()
			total = total.Add(d)
		case domain.TaxTypeIndirect:
			_, i := entry.Split()
			total = total.Add(i)
		case domain.TaxTypeMixed:
			if entry.Kind() == domain.TaxTypeMixed {
				total = total.Add(entry.Total())
			}
		}
	}
	return total
}

// PercentageByType returns kind's whole-number share of total, or zero when
// total is zero.
func PercentageByType(b domain.TaxBreakdown, total decimal.Decimal, kind domain.TaxType) decimal.Decimal {
	return percentOf(TotalByType(b, kind), total, 0)
}

// CategoryBreakdown groups breakdown entries by what the tax is levied on.
// Keys not listed in any category are ignored.
func CategoryBreakdown(b domain.TaxBreakdown) domain.CategoryBreakdown {
	amount := func(keys ...string) decimal.Decimal {
		sum := decimal.Zero
		for _, k := range keys {
			if e, ok := b[k]; ok {
				sum = sum.Add(e.Total())
			}
		}
		return sum
	}
	return domain.CategoryBreakdown{
		Income: amount(domain.KeyIncomeTax, domain.KeyNationalInsurance, domain.KeyStudentLoan,
			domain.KeyCapitalGainsTax, domain.KeyDividendTax),
		Property:    amount(domain.KeyCouncilTax, domain.KeyLandlordTaxPassthrough),
		Consumption: amount(domain.KeyVAT, domain.KeyAlcoholTobaccoDuty, domain.KeyInsurancePremiumTax),
		Transport:   amount(domain.KeyTransport),
		Other:       amount(domain.KeyTVLicence),
	}
}
