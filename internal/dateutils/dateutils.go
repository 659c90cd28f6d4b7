// Package dateutils provides the date and timestamp layouts used by the
// message encoders and the formal output renderer.
package dateutils

import (
	"strings"
	"time"
)

// Layout constants shared across the application
const (
	LayoutISO     = "2006-01-02"          // value dates (YYYY-MM-DD)
	LayoutSWIFT   = "060102"              // MT :32A: value date (YYMMDD)
	LayoutCompact = "20060102150405"      // payment info ids, file names
	LayoutInstant = "2006-01-02T15:04:05" // ISO instant, second precision
)

// ParseValueDate parses a calendar date in ISO form (YYYY-MM-DD).
// The boolean result reports whether the input was usable; callers fall
// back to the generation date when it is not.
func ParseValueDate(dateStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(LayoutISO, dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.Format(LayoutISO)
}

// ToSWIFTDate formats a time as YYMMDD for MT :32A: fields.
func ToSWIFTDate(t time.Time) string {
	return t.Format(LayoutSWIFT)
}

// CompactTimestamp formats a UTC instant as YYYYMMDDHHMMSS.
func CompactTimestamp(t time.Time) string {
	return t.UTC().Format(LayoutCompact)
}

// ISOInstant formats a UTC instant truncated to seconds with a literal
// Z suffix, as required for pain.001 CreDtTm.
func ISOInstant(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(LayoutInstant) + "Z"
}
