package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/calculation"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	r := report.Footprint
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "UK HOUSEHOLD TAX FOOTPRINT (%s)\n", r.TaxYear)
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INCOME & TOTALS")
	fmt.Fprintln(&buf, "===============")
	fmt.Fprintf(&buf, "Annual Income:        %s\n", FormatCurrency(r.AnnualIncome))
	fmt.Fprintf(&buf, "Total Annual Tax:     %s\n", FormatCurrency(r.TotalAnnualTax))
	fmt.Fprintf(&buf, "Monthly Equivalent:   %s\n", FormatCurrency(r.TotalAnnualTax.Div(decimal.NewFromInt(12))))
	fmt.Fprintf(&buf, "Net Income:           %s\n", FormatCurrency(r.NetIncome))
	fmt.Fprintf(&buf, "Effective Tax Rate:   %s\n", FormatPercentage(r.EffectiveTaxRate))
	fmt.Fprintf(&buf, "Direct Taxes:         %s (%s%%)\n", FormatCurrency(r.DirectTaxTotal), r.DirectTaxPercentage.String())
	fmt.Fprintf(&buf, "Indirect Taxes:       %s (%s%%)\n", FormatCurrency(r.IndirectTaxTotal), r.IndirectTaxPercentage.String())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TAX BREAKDOWN:")
	fmt.Fprintf(&buf, "%-30s %-9s %15s %8s\n", "COMPONENT", "TYPE", "AMOUNT", "SHARE")
	fmt.Fprintln(&buf, strings.Repeat("-", 65))
	for _, line := range AnalyzeBreakdown(r) {
		fmt.Fprintf(&buf, "%-30s %-9s %15s %7s%%\n", line.Label, line.Kind, FormatCurrency(line.Amount), line.Share.StringFixed(1))
	}
	fmt.Fprintln(&buf, strings.Repeat("-", 65))
	fmt.Fprintf(&buf, "%-30s %-9s %15s\n", "TOTAL", "", FormatCurrency(r.TotalAnnualTax))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "BY CATEGORY:")
	categoryLine(&buf, "Income", r.Categories.Income)
	categoryLine(&buf, "Consumption", r.Categories.Consumption)
	categoryLine(&buf, "Property", r.Categories.Property)
	categoryLine(&buf, "Transport", r.Categories.Transport)
	categoryLine(&buf, "Other", r.Categories.Other)
	fmt.Fprintln(&buf)

	writeTransportDetail(&buf, r)

	if r.OneOff.StampDuty.IsPositive() {
		fmt.Fprintln(&buf, "ONE-OFF TAXES (not in annual total):")
		categoryLine(&buf, "Stamp Duty", r.OneOff.StampDuty)
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "TIMELINE:")
	fmt.Fprintln(&buf, "---------")
	for _, p := range report.Timeline.Points {
		marker := ""
		if p.Phase == domain.PhaseCurrent {
			marker = "  <- current"
		}
		fmt.Fprintf(&buf, "  %-8s %-8s %15s%s\n", p.TaxYear, p.Phase, FormatCurrency(p.Amount), marker)
	}
	fmt.Fprintf(&buf, "  Past %d years:   %s\n", len(pointsIn(report.Timeline, domain.PhasePast)), FormatCurrency(r.PastFiveYearsTax))
	fmt.Fprintf(&buf, "  Next %d years:   %s\n", len(pointsIn(report.Timeline, domain.PhaseFuture)), FormatCurrency(r.FutureFiveYearsTax))

	return buf.Bytes(), nil
}

// writeTransportDetail lists vehicle, flight and fare taxes when there are any.
func writeTransportDetail(buf *bytes.Buffer, r *domain.FootprintResult) {
	t := r.TransportTaxes
	if t.Total.IsZero() {
		return
	}
	fmt.Fprintln(buf, "TRANSPORT DETAIL:")
	fmt.Fprintln(buf, strings.Repeat("-", 65))
	for i, v := range t.Vehicles {
		fmt.Fprintf(buf, "  Vehicle %d: VED=%s FuelDuty=%s FuelVAT=%s IPT=%s Charges=%s Total=%s\n",
			i+1, FormatCurrency(v.VED), FormatCurrency(v.FuelDuty), FormatCurrency(v.FuelVAT),
			FormatCurrency(v.InsuranceIPT), FormatCurrency(v.CongestionCharges.Add(v.ParkingCharges).Add(v.RoadTolls)),
			FormatCurrency(v.Total))
	}
	categoryLine(buf, "  Air Passenger Duty", t.FlightTaxes)
	categoryLine(buf, "  Public Transport VAT", t.PublicTransport.Total)
	fmt.Fprintf(buf, "  Direct=%s Indirect=%s\n", FormatCurrency(r.TransportSplit.Direct), FormatCurrency(r.TransportSplit.Indirect))
	fmt.Fprintf(buf, "  Shares: vehicles %s%%, flights %s%%, public transport %s%%\n",
		r.TransportShares.Vehicles.String(), r.TransportShares.Flights.String(), r.TransportShares.PublicTransport.String())
	if n := len(r.TransportTaxProjection); n > 0 {
		fmt.Fprintf(buf, "  In %d years: %s per year\n", n, FormatCurrency(r.TransportTaxProjection[n-1]))
		fmt.Fprintf(buf, "  Over %d years: %s in total\n", n, FormatCurrency(r.TransportFutureTax))
	}
	fmt.Fprintln(buf)
}

func categoryLine(buf *bytes.Buffer, label string, amount decimal.Decimal) {
	fmt.Fprintf(buf, "%-30s %15s\n", label, FormatCurrency(amount))
}

func pointsIn(t domain.TaxTimeline, phase domain.YearPhase) []domain.AnnualTax {
	var out []domain.AnnualTax
	for _, p := range t.Points {
		if p.Phase == phase {
			out = append(out, p)
		}
	}
	return out
}

// FormatLive renders a live estimate as plain text, one component per line.
func FormatLive(live *domain.LiveResult) []byte {
	var buf bytes.Buffer
	if !live.GrossIncome.IsPositive() {
		fmt.Fprintln(&buf, "No income entered yet.")
		return buf.Bytes()
	}
	fmt.Fprintf(&buf, "Gross Income:   %s\n", FormatCurrency(live.GrossIncome))
	for _, c := range live.Components {
		categoryLine(&buf, "  "+LiveLabel(c.Key), c.Amount)
	}
	fmt.Fprintf(&buf, "Total Tax:      %s\n", FormatCurrency(live.TotalTax))
	fmt.Fprintf(&buf, "Net Income:     %s\n", FormatCurrency(live.NetIncome))
	fmt.Fprintf(&buf, "Tax Percentage: %s%%\n", live.TaxPercentage.StringFixed(1))
	return buf.Bytes()
}

// liveLabels are the human names of live estimate components.
var liveLabels = map[string]string{
	calculation.LiveIncomeTax:           "Income Tax",
	calculation.LiveNationalInsurance:   "National Insurance",
	calculation.LiveStudentLoan:         "Student Loan",
	calculation.LiveCouncilTax:          "Council Tax",
	calculation.LiveVED:                 "Vehicle Excise Duty",
	calculation.LiveFuelDuty:            "Fuel Duty",
	calculation.LiveVATOnFuel:           "VAT on Fuel",
	calculation.LiveVATOnEnergy:         "VAT on Energy",
	calculation.LiveTVLicence:           "TV Licence",
	calculation.LiveVATOnSubscriptions:  "VAT on Subscriptions",
	calculation.LiveVATOnGroceries:      "VAT on Groceries",
	calculation.LiveAlcoholDuty:         "Alcohol Duty",
	calculation.LiveTobaccoDuty:         "Tobacco Duty",
	calculation.LiveAirPassengerDuty:    "Air Passenger Duty",
	calculation.LiveLandlordPassthrough: "Landlord Tax Pass-through",
}

// LiveLabel returns the display name of a live component key.
func LiveLabel(key string) string {
	if label, ok := liveLabels[key]; ok {
		return label
	}
	return key
}
