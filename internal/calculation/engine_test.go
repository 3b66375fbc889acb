package calculation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

type recordingLogger struct {
	NopLogger
	debug []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}

func TestEngineSetLogger(t *testing.T) {
	engine := NewEngine()
	assert.IsType(t, NopLogger{}, engine.Logger)

	logger := &recordingLogger{}
	engine.SetLogger(logger)
	engine.TaxFootprint(domain.FormInput{"income": 30000})
	engine.LiveTaxPercentage(domain.FormInput{"income": 30000})
	assert.Len(t, logger.debug, 2)
	assert.Contains(t, logger.debug[0], "total=5286.00")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestEngineWithCustomRates(t *testing.T) {
	rates := domain.DefaultRateTable()
	rates.LandlordPassthrough.Rate = d("0.25")
	rates.CouncilTax.Unknown = d("2000")
	engine := NewEngineWithRates(rates)

	result := engine.TaxFootprint(domain.FormInput{"housingStatus": "rent", "monthlyRent": 1000})
	assertDecimal(t, "3000", result.TaxBreakdown[domain.KeyLandlordTaxPassthrough].Total())
	assertDecimal(t, "2000", result.TaxBreakdown[domain.KeyCouncilTax].Total())

	// the default table is untouched
	assertDecimal(t, "0.15", domain.DefaultRateTable().LandlordPassthrough.Rate)
}
