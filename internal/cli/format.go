// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Money formats amounts with a currency symbol.
type Money struct {
	Symbol string
	After  bool // "1,000.00 €" instead of "€1,000.00"
}

// Format renders v with thousands separators and two decimals.
// e.g., 1234567.891 -> "1,234,567.89 €"
func (m Money) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	num := humanize.FormatFloat("#,###.##", v)
	switch {
	case m.Symbol == "":
		return num
	case m.After:
		return num + " " + m.Symbol
	case v < 0:
		return "-" + m.Symbol + num[1:]
	default:
		return m.Symbol + num
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatShare formats an optional share, "—" when absent.
func FormatShare(f *float64) string {
	if f == nil {
		return "—"
	}
	return FormatPercent(*f)
}

// FormatRate formats an annual percentage rate as given by the user (7 -> "7%").
func FormatRate(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatYears formats a horizon, e.g. 1 -> "1 year", 2.5 -> "2.5 years".
func FormatYears(y float64) string {
	s := strconv.FormatFloat(y, 'f', -1, 64)
	if y == 1 {
		return s + " year"
	}
	return s + " years"
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatMonth returns the name of a 1-based month of the year.
func FormatMonth(m int) string {
	if m >= 1 && m <= 12 {
		return monthNames[m-1]
	}
	return "???"
}
