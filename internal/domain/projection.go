package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// YearPhase places a timeline point relative to the current tax year.
type YearPhase string

const (
	PhasePast    YearPhase = "past"
	PhaseCurrent YearPhase = "current"
	PhaseFuture  YearPhase = "future"
)

// AnnualTax is one point of the multi-year tax timeline.
type AnnualTax struct {
	Year    int             `json:"year"`
	TaxYear string          `json:"tax_year"`
	Start   time.Time       `json:"start"`
	End     time.Time       `json:"end"`
	Days    int             `json:"days"`
	Phase   YearPhase       `json:"phase"`
	Amount  decimal.Decimal `json:"amount"`
}

// TaxTimeline is the past, current and projected annual tax of a household.
type TaxTimeline struct {
	Points      []AnnualTax     `json:"points"`
	PastTotal   decimal.Decimal `json:"past_total"`
	FutureTotal decimal.Decimal `json:"future_total"`
}

// Current returns the point for the current tax year, if the timeline has one.
func (t TaxTimeline) Current() (AnnualTax, bool) {
	for _, p := range t.Points {
		if p.Phase == PhaseCurrent {
			return p, true
		}
	}
	return AnnualTax{}, false
}
