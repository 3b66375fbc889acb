package output

import (
	"bytes"
	"encoding/csv"
)

// CSVSummarizer implements the summary CSV output (one row per breakdown entry).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	r := report.Footprint
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Key", "Component", "Type", "Amount", "Direct", "Indirect", "SharePercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, line := range AnalyzeBreakdown(r) {
		row := []string{
			line.Key,
			line.Label,
			string(line.Kind),
			line.Amount.StringFixed(2),
			line.Direct.StringFixed(2),
			line.Indirect.StringFixed(2),
			line.Share.StringFixed(1),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	total := []string{
		"total",
		"Total",
		"",
		r.TotalAnnualTax.StringFixed(2),
		r.DirectTaxTotal.StringFixed(2),
		r.IndirectTaxTotal.StringFixed(2),
		"100.0",
	}
	if err := w.Write(total); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
