package output

import (
	"fmt"
	"io"
	"time"

	"github.com/taxfootprint/footprint-calculator/internal/calculation"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// Report bundles everything a formatter may render for one household.
type Report struct {
	Footprint   *domain.FootprintResult `json:"footprint"`
	Timeline    domain.TaxTimeline      `json:"timeline"`
	Assumptions []string                `json:"assumptions"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// NewReport runs the footprint for form on engine and assembles a report.
func NewReport(engine *calculation.Engine, form domain.FormInput) *Report {
	return NewReportFromResult(engine, engine.TaxFootprint(form))
}

// NewReportFromResult wraps an already computed footprint.
func NewReportFromResult(engine *calculation.Engine, result *domain.FootprintResult) *Report {
	return &Report{
		Footprint:   result,
		Timeline:    engine.YearlyTimeline(result),
		Assumptions: GenerateAssumptions(engine.Rates),
		GeneratedAt: calculation.Now(),
	}
}

// Render writes report to w in the named format.
func Render(w io.Writer, report *Report, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// GenerateReport writes report in format to a timestamped file in dir and
// returns the file name. The format "all" writes the verbose console, CSV
// and HTML reports together and returns the last file written.
func GenerateReport(report *Report, format, dir string) (string, error) {
	if format == "all" {
		var last string
		for _, name := range []string{"console", "csv", "html"} {
			file, err := WriteFormatted(GetFormatterByName(name), report, dir, ExtensionFor(name))
			if err != nil {
				return "", err
			}
			last = file
		}
		return last, nil
	}
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, dir, ExtensionFor(f.Name()))
}
