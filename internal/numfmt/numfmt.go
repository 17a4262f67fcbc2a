// Package numfmt converts between Brazilian-locale decimal strings
// (dot thousands separator, comma decimal separator) and float64 values.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Parse converts a locale-formatted decimal string to a float64.
// It accepts "." as a thousands separator and "," as the decimal
// separator (e.g., "1.234,56" parses to 1234.56).
//
// Returns (0, false) if the input is empty, whitespace-only, or does
// not parse to a finite number. Never panics.
func Parse(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	normalized := strings.ReplaceAll(trimmed, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseDefault converts a locale-formatted decimal string to a float64,
// returning def when the input is missing or malformed. This is the
// permissive entry point used by the phase calculators: a bad field
// degrades to its documented default, never to an error.
func ParseDefault(raw string, def float64) float64 {
	if v, ok := Parse(raw); ok {
		return v
	}
	return def
}

// Format renders a value in fixed-point notation with the given number
// of decimal digits, using a comma as the decimal separator. No
// thousands grouping is applied.
// Example: Format(1234.5, 2) returns "1234,50".
func Format(v float64, decimals int) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', decimals, 64), ".", ",")
}

// FormatScientific renders a value in two-significant-digit exponential
// notation with a comma decimal separator and an upper-case exponent
// marker, mirroring spreadsheet scientific display.
// Example: FormatScientific(0.0867) returns "8,7E-02".
func FormatScientific(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'E', 1, 64), ".", ",")
}
