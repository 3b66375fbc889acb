package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	r := report.Footprint
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "TAX FOOTPRINT SUMMARY (%s)\n", r.TaxYear)
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Annual Income:    %s\n", FormatCurrency(r.AnnualIncome))
	fmt.Fprintf(&buf, "Total Annual Tax: %s (%s of income)\n", FormatCurrency(r.TotalAnnualTax), FormatPercentage(r.EffectiveTaxRate))
	fmt.Fprintf(&buf, "Net Income:       %s\n", FormatCurrency(r.NetIncome))
	fmt.Fprintf(&buf, "Direct=%s (%s%%) Indirect=%s (%s%%)\n",
		FormatCurrency(r.DirectTaxTotal), r.DirectTaxPercentage.String(),
		FormatCurrency(r.IndirectTaxTotal), r.IndirectTaxPercentage.String())

	h := AnalyzeFootprint(r)
	if h.Largest.Key != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Largest: %s (%s, %s%% of total)\n", h.Largest.Label, FormatCurrency(h.Largest.Amount), h.Largest.Share.String())
	}
	return buf.Bytes(), nil
}
