package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

func sampleBreakdown() domain.TaxBreakdown {
	return domain.TaxBreakdown{
		domain.KeyIncomeTax:  domain.DirectEntry{Amount: d("100")},
		domain.KeyVAT:        domain.IndirectEntry{Amount: d("50")},
		domain.KeyTransport:  domain.MixedEntry{DirectAmount: d("30"), IndirectAmount: d("20")},
		domain.KeyTVLicence:  domain.DirectEntry{Amount: d("0")},
		domain.KeyCouncilTax: domain.DirectEntry{Amount: d("0")},
		"somethingUnlisted":  domain.IndirectEntry{Amount: d("0")},
	}
}

func TestTotalByType(t *testing.T) {
	b := sampleBreakdown()
	assertDecimal(t, "130", TotalByType(b, domain.TaxTypeDirect))
	assertDecimal(t, "70", TotalByType(b, domain.TaxTypeIndirect))
	assertDecimal(t, "50", TotalByType(b, domain.TaxTypeMixed))
	assertDecimal(t, "200", b.Total())
}

func TestPercentageByType(t *testing.T) {
	b := sampleBreakdown()
	assertDecimal(t, "65", PercentageByType(b, d("200"), domain.TaxTypeDirect))
	assertDecimal(t, "35", PercentageByType(b, d("200"), domain.TaxTypeIndirect))
	assertDecimal(t, "0", PercentageByType(b, d("0"), domain.TaxTypeDirect))
}

func TestSplitByTypeUsesMixedPortions(t *testing.T) {
	direct, indirect := SplitByType(sampleBreakdown())

	assert.Contains(t, direct, domain.KeyTransport)
	assert.Contains(t, indirect, domain.KeyTransport)
	assertDecimal(t, "30", direct[domain.KeyTransport].Total())
	assertDecimal(t, "20", indirect[domain.KeyTransport].Total())
	assert.NotContains(t, direct, domain.KeyVAT)
	assert.NotContains(t, indirect, domain.KeyIncomeTax)
	assertDecimal(t, "130", direct.Total())
	assertDecimal(t, "70", indirect.Total())
}

func TestCategoryBreakdown(t *testing.T) {
	categories := CategoryBreakdown(sampleBreakdown())
	assertDecimal(t, "100", categories.Income)
	assertDecimal(t, "50", categories.Consumption)
	assertDecimal(t, "50", categories.Transport)
	assertDecimal(t, "0", categories.Property)
	assertDecimal(t, "0", categories.Other)
}
