package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
	"github.com/taxfootprint/footprint-calculator/pkg/dateutil"
)

// YearlyTimeline spreads a footprint over the surrounding tax years: the past
// years at the flat historical average, the current year and the projected
// years growing at the projection rate. The current tax year is taken from
// the engine clock.
func (e *Engine) YearlyTimeline(r *domain.FootprintResult) domain.TaxTimeline {
	years := e.Rates.Projection.Years
	now := nowFunc()
	current := dateutil.TaxYearOf(now)

	point := func(year int, phase domain.YearPhase, amount decimal.Decimal) domain.AnnualTax {
		return domain.AnnualTax{
			Year:    year,
			TaxYear: dateutil.TaxYearLabel(year),
			Start:   dateutil.TaxYearStart(year, now.Location()),
			End:     dateutil.TaxYearEnd(year, now.Location()),
			Days:    dateutil.DaysInTaxYear(year),
			Phase:   phase,
			Amount:  amount,
		}
	}

	timeline := domain.TaxTimeline{
		Points:      make([]domain.AnnualTax, 0, 2*years+1),
		PastTotal:   r.PastFiveYearsTax,
		FutureTotal: r.FutureFiveYearsTax,
	}
	if years <= 0 {
		timeline.Points = append(timeline.Points, point(current, domain.PhaseCurrent, r.TotalAnnualTax))
		return timeline
	}

	pastAverage := r.PastFiveYearsTax.Div(decimal.NewFromInt(int64(years)))
	for i := years; i >= 1; i-- {
		timeline.Points = append(timeline.Points, point(current-i, domain.PhasePast, pastAverage))
	}
	timeline.Points = append(timeline.Points, point(current, domain.PhaseCurrent, r.TotalAnnualTax))
	for i, amount := range ProjectGrowth(r.TotalAnnualTax, e.Rates.Projection.GrowthRate, years) {
		timeline.Points = append(timeline.Points, point(current+i+1, domain.PhaseFuture, amount))
	}
	return timeline
}
