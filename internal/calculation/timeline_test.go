package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

func TestYearlyTimeline(t *testing.T) {
	SetNowFunc(func() time.Time { return time.Date(2025, time.October, 17, 12, 0, 0, 0, time.UTC) })
	defer SetNowFunc(nil)

	engine := NewEngine()
	result := engine.TaxFootprint(domain.FormInput{})
	timeline := engine.YearlyTimeline(result)

	require.Len(t, timeline.Points, 11)
	first := timeline.Points[0]
	assert.Equal(t, 2020, first.Year)
	assert.Equal(t, "2020/21", first.TaxYear)
	assert.Equal(t, domain.PhasePast, first.Phase)
	assertDecimal(t, "5286", first.Amount)
	assert.Equal(t, time.Date(2020, time.April, 6, 0, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, time.Date(2021, time.April, 5, 23, 59, 59, 999999999, time.UTC), first.End)
	assert.Equal(t, 365, first.Days)

	current, ok := timeline.Current()
	require.True(t, ok)
	assert.Equal(t, 2025, current.Year)
	assertDecimal(t, "5286", current.Amount)

	last := timeline.Points[10]
	assert.Equal(t, domain.PhaseFuture, last.Phase)
	assert.Equal(t, "2030/31", last.TaxYear)
	assert.Equal(t, 365, last.Days)
	assert.Equal(t, 366, timeline.Points[7].Days) // 2027/28 spans 29 February 2028
	assertDecimal(t, "5836.1711", last.Amount.Round(4))

	assertDecimal(t, "26430", timeline.PastTotal)
	assert.True(t, timeline.FutureTotal.Equal(result.FutureFiveYearsTax))
}

func TestYearlyTimelineBeforeAprilSixth(t *testing.T) {
	SetNowFunc(func() time.Time { return time.Date(2026, time.April, 5, 9, 0, 0, 0, time.UTC) })
	defer SetNowFunc(nil)

	engine := NewEngine()
	current, ok := engine.YearlyTimeline(engine.TaxFootprint(domain.FormInput{})).Current()
	require.True(t, ok)
	assert.Equal(t, "2025/26", current.TaxYear)
}
