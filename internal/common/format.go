package common

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a whole-dollar amount with thousands separators, e.g. "$1,234,567".
func FormatCurrency(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return usPrinter.Sprintf("-$%d", -rounded)
	}
	return usPrinter.Sprintf("$%d", rounded)
}

// FormatGameTime renders simulated minutes as "Day N HH:MM".
func FormatGameTime(totalMinutes float64) string {
	whole := int(math.Floor(totalMinutes))
	day := whole/1440 + 1
	hour := (whole % 1440) / 60
	minute := whole % 60
	return fmt.Sprintf("Day %d %02d:%02d", day, hour, minute)
}

// FormatDuration renders minutes as "Xh Ym", or "Ym" under an hour.
func FormatDuration(minutes float64) string {
	whole := int(math.Floor(minutes))
	h := whole / 60
	m := whole % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
