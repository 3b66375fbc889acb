package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// CSVDetailedExporter provides one row per tax year of the timeline.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"TaxYear", "Year", "StartDate", "EndDate", "Days", "Phase", "TotalTax", "IsCurrent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range report.Timeline.Points {
		row := []string{
			p.TaxYear,
			strconv.Itoa(p.Year),
			p.Start.Format("2006-01-02"),
			p.End.Format("2006-01-02"),
			strconv.Itoa(p.Days),
			string(p.Phase),
			p.Amount.StringFixed(2),
			strconv.FormatBool(p.Phase == domain.PhaseCurrent),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
