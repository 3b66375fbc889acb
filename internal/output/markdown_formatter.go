package output

import (
	"bytes"
	"fmt"

	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// MarkdownFormatter renders the report as GitHub-flavoured markdown. The HTML
// formatter renders the same document.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *Report) ([]byte, error) {
	r := report.Footprint
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Household Tax Footprint (%s)\n\n", r.TaxYear)
	fmt.Fprintln(&buf, "| Summary | |")
	fmt.Fprintln(&buf, "|---|---:|")
	fmt.Fprintf(&buf, "| Annual income | %s |\n", FormatCurrency(r.AnnualIncome))
	fmt.Fprintf(&buf, "| Total annual tax | %s |\n", FormatCurrency(r.TotalAnnualTax))
	fmt.Fprintf(&buf, "| Net income | %s |\n", FormatCurrency(r.NetIncome))
	fmt.Fprintf(&buf, "| Effective tax rate | %s |\n", FormatPercentage(r.EffectiveTaxRate))
	fmt.Fprintf(&buf, "| Direct taxes | %s (%s%%) |\n", FormatCurrency(r.DirectTaxTotal), r.DirectTaxPercentage.String())
	fmt.Fprintf(&buf, "| Indirect taxes | %s (%s%%) |\n", FormatCurrency(r.IndirectTaxTotal), r.IndirectTaxPercentage.String())
	fmt.Fprintf(&buf, "| Past %d years | %s |\n", len(pointsIn(report.Timeline, domain.PhasePast)), FormatCurrency(r.PastFiveYearsTax))
	fmt.Fprintf(&buf, "| Next %d years | %s |\n\n", len(pointsIn(report.Timeline, domain.PhaseFuture)), FormatCurrency(r.FutureFiveYearsTax))

	fmt.Fprintln(&buf, "## Tax Breakdown")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "| Component | Type | Amount | Share |")
	fmt.Fprintln(&buf, "|---|---|---:|---:|")
	for _, line := range AnalyzeBreakdown(r) {
		fmt.Fprintf(&buf, "| %s | %s | %s | %s%% |\n", line.Label, line.Kind, FormatCurrency(line.Amount), line.Share.StringFixed(1))
	}
	fmt.Fprintf(&buf, "| **Total** | | **%s** | 100.0%% |\n\n", FormatCurrency(r.TotalAnnualTax))

	fmt.Fprintln(&buf, "## By Category")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "- Income: %s\n", FormatCurrency(r.Categories.Income))
	fmt.Fprintf(&buf, "- Consumption: %s\n", FormatCurrency(r.Categories.Consumption))
	fmt.Fprintf(&buf, "- Property: %s\n", FormatCurrency(r.Categories.Property))
	fmt.Fprintf(&buf, "- Transport: %s\n", FormatCurrency(r.Categories.Transport))
	fmt.Fprintf(&buf, "- Other: %s\n\n", FormatCurrency(r.Categories.Other))

	if t := r.TransportTaxes; !t.Total.IsZero() {
		fmt.Fprintln(&buf, "## Transport")
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "| Tax | Amount |")
		fmt.Fprintln(&buf, "|---|---:|")
		by := r.TransportByTaxType
		fmt.Fprintf(&buf, "| Vehicle Excise Duty | %s |\n", FormatCurrency(by.VED))
		fmt.Fprintf(&buf, "| Fuel duty | %s |\n", FormatCurrency(by.FuelDuty))
		fmt.Fprintf(&buf, "| VAT on fuel | %s |\n", FormatCurrency(by.FuelVAT))
		fmt.Fprintf(&buf, "| Insurance premium tax | %s |\n", FormatCurrency(by.InsuranceIPT))
		fmt.Fprintf(&buf, "| Congestion and clean air charges | %s |\n", FormatCurrency(by.CongestionCharges))
		fmt.Fprintf(&buf, "| Parking and tolls | %s |\n", FormatCurrency(by.ParkingAndTolls))
		fmt.Fprintf(&buf, "| Air passenger duty | %s |\n", FormatCurrency(by.AirPassengerDuty))
		fmt.Fprintf(&buf, "| VAT on fares | %s |\n\n", FormatCurrency(by.PublicTransportVAT))
	}

	if r.OneOff.StampDuty.IsPositive() {
		fmt.Fprintf(&buf, "Stamp duty of %s is a one-off charge and is not included above.\n\n", FormatCurrency(r.OneOff.StampDuty))
	}

	fmt.Fprintln(&buf, "## Timeline")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "| Tax year | Phase | Tax |")
	fmt.Fprintln(&buf, "|---|---|---:|")
	for _, p := range report.Timeline.Points {
		phase := string(p.Phase)
		if p.Phase == domain.PhaseCurrent {
			phase = "**current**"
		}
		fmt.Fprintf(&buf, "| %s | %s | %s |\n", p.TaxYear, phase, FormatCurrency(p.Amount))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Key Assumptions")
	fmt.Fprintln(&buf)
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	return buf.Bytes(), nil
}
