package calculation

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// DefaultRailTicketType is assumed when no ticket type is given.
const DefaultRailTicketType = "commuter"

// zeroRatedRailTickets lists ticket vocabulary for zero-rated passenger rail.
var zeroRatedRailTickets = []string{
	"train", "commuter", "season", "day", "advance", "anytime", "off-peak",
	"travelcard", "network", "railcard",
}

// IsRailFareZeroRated reports whether a rail ticket type carries no VAT.
func IsRailFareZeroRated(ticketType string) bool {
	normalized := strings.ToLower(ticketType)
	return lo.SomeBy(zeroRatedRailTickets, func(t string) bool {
		return strings.Contains(normalized, t)
	})
}

// PublicTransportTaxCalculator extracts VAT from public transport fares
type PublicTransportTaxCalculator struct {
	VAT domain.VATRates
}

// NewPublicTransportTaxCalculator creates a public transport tax calculator
func NewPublicTransportTaxCalculator(rates domain.VATRates) *PublicTransportTaxCalculator {
	return &PublicTransportTaxCalculator{VAT: rates}
}

// RailVAT returns annual VAT on rail fares, which is zero for the usual
// passenger ticket types.
func (c *PublicTransportTaxCalculator) RailVAT(monthlySpend decimal.Decimal, ticketType string) decimal.Decimal {
	if !monthlySpend.IsPositive() {
		return decimal.Zero
	}
	if ticketType == "" {
		ticketType = DefaultRailTicketType
	}
	if IsRailFareZeroRated(ticketType) {
		return decimal.Zero
	}
	return taxIncluded(monthlySpend.Mul(twelve), c.VAT.Standard)
}

// BusVAT returns annual VAT on bus fares. Local bus services are zero-rated.
func (c *PublicTransportTaxCalculator) BusVAT(decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// TaxiVAT returns annual VAT contained in taxi fares.
func (c *PublicTransportTaxCalculator) TaxiVAT(monthlySpend decimal.Decimal) decimal.Decimal {
	if !monthlySpend.IsPositive() {
		return decimal.Zero
	}
	return taxIncluded(monthlySpend.Mul(twelve), c.VAT.Standard)
}

// Calculate returns VAT per mode and in total.
func (c *PublicTransportTaxCalculator) Calculate(spend domain.PublicTransportSpend) domain.PublicTransportTaxes {
	taxes := domain.PublicTransportTaxes{
		RailVAT: c.RailVAT(spend.TrainMonthly, spend.RailTicketType),
		BusVAT:  c.BusVAT(spend.BusMonthly),
		TaxiVAT: c.TaxiVAT(spend.TaxiMonthly),
	}
	taxes.Total = taxes.RailVAT.Add(taxes.BusVAT).Add(taxes.TaxiVAT)
	return taxes
}

// AnnualCost returns total annual spending on public transport.
func (c *PublicTransportTaxCalculator) AnnualCost(spend domain.PublicTransportSpend) decimal.Decimal {
	monthly := positive(spend.TrainMonthly).Add(positive(spend.BusMonthly)).Add(positive(spend.TaxiMonthly))
	return monthly.Mul(twelve)
}

// TaxPercentage returns the whole-number share of public transport spending
// that is tax, or zero when nothing is spent.
func (c *PublicTransportTaxCalculator) TaxPercentage(spend domain.PublicTransportSpend) decimal.Decimal {
	return percentOf(c.Calculate(spend).Total, c.AnnualCost(spend), 0)
}
