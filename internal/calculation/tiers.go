package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
	money "github.com/taxfootprint/footprint-calculator/pkg/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// ApplyTiers taxes base progressively: each tier's rate applies only to the
// part of base between the previous tier's threshold and its own. Zero or
// negative bases owe nothing.
func ApplyTiers(base decimal.Decimal, tiers domain.Tiers) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}

	total := decimal.Zero
	lower := decimal.Zero
	for _, tier := range tiers {
		if base.LessThanOrEqual(lower) {
			break
		}
		upper := base
		if !tier.Unbounded {
			upper = decimal.Min(base, tier.Threshold)
		}
		if upper.GreaterThan(lower) {
			total = total.Add(upper.Sub(lower).Mul(tier.Rate))
		}
		if tier.Unbounded {
			break
		}
		lower = tier.Threshold
	}
	return total
}

// LookupTier returns the rate of the first tier whose threshold is at or above
// value. It reports false only when the schedule is empty or lacks an
// unbounded final tier and value exceeds every threshold.
func LookupTier(value decimal.Decimal, tiers domain.Tiers) (decimal.Decimal, bool) {
	for _, tier := range tiers {
		if tier.Contains(value) {
			return tier.Rate, true
		}
	}
	return decimal.Zero, false
}

// marginal applies a flat rate to the part of base above threshold.
func marginal(base, threshold, rate decimal.Decimal) decimal.Decimal {
	if base.LessThanOrEqual(threshold) {
		return decimal.Zero
	}
	return base.Sub(threshold).Mul(rate)
}

// taxIncluded extracts the tax already contained in a gross amount.
func taxIncluded(gross, rate decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(gross).TaxIncluded(rate).Decimal
}

// percentOf returns part/total*100 rounded to places, or zero when total is zero.
func percentOf(part, total decimal.Decimal, places int32) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(places)
}

func positive(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
