// Package dateutils provides the date layouts and year-resolution helpers
// used by the statement extraction engine. Statement lines frequently
// carry month/day tokens with no year; the document-scoped statement year
// supplies the missing part.
package dateutils

import (
	"fmt"
	"strings"
	"time"

	"raj/stmt-extract/internal/parsererror"
)

// FallbackYear is used when no line in the document ever established the
// statement year.
const FallbackYear = "2025"

// Layouts seen across the supported issuer formats.
const (
	LayoutUS          = "1/2/2006"    // 10/28/2025
	LayoutUSShortYear = "1/2/06"      // 10/28/25
	LayoutUSPadded    = "01/02/2006"  // 10/28/2025, zero padded
	LayoutWordMonth   = "Jan 2, 2006" // Nov 4, 2025
	LayoutMonthDay    = "Jan 2 2006"  // Nov 10 2025
	LayoutDashed      = "1-2-06"      // 10-31-25 (DCU ranges)
)

// Parse wraps time.Parse with the engine's typed error.
func Parse(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &parsererror.DateParseError{Value: value, Layout: layout, Err: err}
	}
	return t, nil
}

// ResolveMonthDay combines an "M/D" token with a four-digit year.
func ResolveMonthDay(monthDay, year string) (time.Time, error) {
	return Parse(LayoutUS, fmt.Sprintf("%s/%s", monthDay, year))
}

// ResolveWordMonthDay combines "Mon" + "D" tokens with a four-digit year.
func ResolveWordMonthDay(month, day, year string) (time.Time, error) {
	return Parse(LayoutMonthDay, fmt.Sprintf("%s %s %s", month, day, year))
}

// monthNumbers maps uppercase three-letter abbreviations to months.
var monthNumbers = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// MonthNumber resolves an uppercase abbreviation like "OCT" to its month.
func MonthNumber(abbrev string) (time.Month, bool) {
	m, ok := monthNumbers[strings.ToUpper(abbrev)]
	return m, ok
}

// ResolveAbbrevDay combines an uppercase month abbreviation and a day
// token ("OCT", "02") with a four-digit year.
func ResolveAbbrevDay(abbrev, day, year string) (time.Time, error) {
	month, ok := MonthNumber(abbrev)
	if !ok {
		return time.Time{}, &parsererror.DateParseError{
			Value:  abbrev + day,
			Layout: "MMMDD",
			Err:    fmt.Errorf("unknown month abbreviation %q", abbrev),
		}
	}
	return Parse(LayoutUS, fmt.Sprintf("%d/%s/%s", int(month), day, year))
}
