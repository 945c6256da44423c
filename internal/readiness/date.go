// Package readiness provides pure availability and match readiness
// computations over rosters, availability records and date predictions.
package readiness

import (
	"fmt"
	"time"
)

const (
	// ISODate is the canonical internal date layout (yyyy-mm-dd).
	// ISO dates sort lexicographically in chronological order, so all
	// comparisons in this package operate on normalized strings.
	ISODate = "2006-01-02"

	// DisplayDate is the day-month-year layout (dd.mm.yyyy) used by older
	// clients. It is accepted at the boundary and never compared directly:
	// lexicographic comparison of dd.mm.yyyy strings is wrong across
	// month and year boundaries.
	DisplayDate = "02.01.2006"
)

// NormalizeDate converts a date string in either ISO (yyyy-mm-dd) or display
// (dd.mm.yyyy) form to the canonical ISO representation.
func NormalizeDate(s string) (string, error) {
	if t, err := time.Parse(ISODate, s); err == nil {
		return t.Format(ISODate), nil
	}
	if t, err := time.Parse(DisplayDate, s); err == nil {
		return t.Format(ISODate), nil
	}
	return "", fmt.Errorf("unrecognized date format: %q", s)
}

// MustNormalizeDate is NormalizeDate for inputs already validated upstream.
// It returns the input unchanged if it cannot be parsed.
func MustNormalizeDate(s string) string {
	normalized, err := NormalizeDate(s)
	if err != nil {
		return s
	}
	return normalized
}

// AddDays returns the ISO date n days after the given ISO date.
func AddDays(isoDate string, n int) (string, error) {
	t, err := time.Parse(ISODate, isoDate)
	if err != nil {
		return "", fmt.Errorf("invalid ISO date %q: %w", isoDate, err)
	}
	return t.AddDate(0, 0, n).Format(ISODate), nil
}

// Before reports whether ISO date a is strictly before ISO date b.
func Before(a, b string) bool {
	return a < b
}

// FormatDisplay converts a canonical ISO date to the dd.mm.yyyy display form.
// Invalid input is returned unchanged.
func FormatDisplay(isoDate string) string {
	t, err := time.Parse(ISODate, isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format(DisplayDate)
}
