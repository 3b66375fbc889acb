package dateutil

import (
	"fmt"
	"time"
)

// UK tax years run from 6 April to 5 April the following calendar year.
const (
	taxYearStartMonth = time.April
	taxYearStartDay   = 6
)

// TaxYearOf returns the calendar year in which the tax year containing date
// began. 5 April 2026 belongs to tax year 2025; 6 April 2026 to 2026.
func TaxYearOf(date time.Time) int {
	year := date.Year()
	if date.Month() < taxYearStartMonth ||
		(date.Month() == taxYearStartMonth && date.Day() < taxYearStartDay) {
		year--
	}
	return year
}

// TaxYearStart returns 6 April of the given starting year.
func TaxYearStart(startYear int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(startYear, taxYearStartMonth, taxYearStartDay, 0, 0, 0, 0, loc)
}

// TaxYearEnd returns the last instant of the tax year beginning in startYear.
func TaxYearEnd(startYear int, loc *time.Location) time.Time {
	return TaxYearStart(startYear+1, loc).Add(-time.Nanosecond)
}

// TaxYearLabel formats a tax year as HMRC does, e.g. 2025 -> "2025/26".
func TaxYearLabel(startYear int) string {
	return fmt.Sprintf("%d/%02d", startYear, (startYear+1)%100)
}

// ParseTaxYearLabel parses a "2025/26" label back into its starting year.
func ParseTaxYearLabel(label string) (int, error) {
	var start, end int
	if _, err := fmt.Sscanf(label, "%d/%d", &start, &end); err != nil {
		return 0, fmt.Errorf("invalid tax year %q: %w", label, err)
	}
	if (start+1)%100 != end {
		return 0, fmt.Errorf("invalid tax year %q: years are not consecutive", label)
	}
	return start, nil
}

// WeeksPerYear is the number of whole weeks used to annualise weekly figures.
const WeeksPerYear = 52

// MonthsPerYear is used to annualise monthly figures.
const MonthsPerYear = 12

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInTaxYear returns the number of days in the tax year beginning in
// startYear; it contains 29 February of startYear+1 when that is a leap year.
func DaysInTaxYear(startYear int) int {
	if isLeapYear(startYear + 1) {
		return 366
	}
	return 365
}
