package output

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// BreakdownLine is one breakdown entry prepared for display.
type BreakdownLine struct {
	Key      string
	Label    string
	Kind     domain.TaxType
	Amount   decimal.Decimal
	Direct   decimal.Decimal
	Indirect decimal.Decimal
	// Share is the entry's percentage of the annual total, to one place.
	Share decimal.Decimal
}

// AnalyzeBreakdown flattens the footprint breakdown into display lines in
// presentation order.
func AnalyzeBreakdown(result *domain.FootprintResult) []BreakdownLine {
	total := result.TotalAnnualTax
	keys := result.TaxBreakdown.Keys()
	lines := make([]BreakdownLine, 0, len(keys))
	for _, key := range keys {
		entry := result.TaxBreakdown[key]
		direct, indirect := entry.Split()
		share := decimal.Zero
		if !total.IsZero() {
			share = entry.Total().Div(total).Mul(decimalHundred).Round(1)
		}
		lines = append(lines, BreakdownLine{
			Key:      key,
			Label:    BreakdownLabel(key),
			Kind:     entry.Kind(),
			Amount:   entry.Total(),
			Direct:   direct,
			Indirect: indirect,
			Share:    share,
		})
	}
	return lines
}

// Highlights summarises a footprint for headline display.
type Highlights struct {
	Largest      BreakdownLine
	MonthlyTax   decimal.Decimal
	NonZeroCount int
}

// AnalyzeFootprint picks the largest component and the monthly equivalent of
// the annual total. Ties keep presentation order.
func AnalyzeFootprint(result *domain.FootprintResult) Highlights {
	lines := AnalyzeBreakdown(result)
	h := Highlights{MonthlyTax: result.TotalAnnualTax.Div(decimal.NewFromInt(12)).Round(2)}
	ranked := append([]BreakdownLine(nil), lines...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Amount.GreaterThan(ranked[j].Amount) })
	if len(ranked) > 0 && ranked[0].Amount.IsPositive() {
		h.Largest = ranked[0]
	}
	for _, l := range lines {
		if !l.Amount.IsZero() {
			h.NonZeroCount++
		}
	}
	return h
}
