// Package valueobject provides pure display-formatting helpers shared by the
// API response layer. All amounts are Colombian Pesos (no decimal places) and
// all date formatting follows the es-CO convention (day before month).
package valueobject

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// monthNames maps months to Spanish names.
var monthNames = map[time.Month]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// FormatCurrency renders an amount as Colombian Pesos with es-CO digit
// grouping and no decimal places, e.g. "$ 5.000.000".
func FormatCurrency(amount decimal.Decimal) string {
	return copPrinter.Sprintf("$ %v", number.Decimal(amount.Round(0).IntPart()))
}

// FormatDate renders a date as DD/MM/YYYY.
func FormatDate(date time.Time) string {
	return date.Format("02/01/2006")
}

// FormatPercentage renders a percentage with one decimal and a % suffix.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatMonth renders the Spanish month name, e.g. "junio".
func FormatMonth(date time.Time) string {
	return monthNames[date.Month()]
}

// FormatMonthYear renders the Spanish month and year, e.g. "junio de 2025".
func FormatMonthYear(date time.Time) string {
	return fmt.Sprintf("%s de %d", monthNames[date.Month()], date.Year())
}
