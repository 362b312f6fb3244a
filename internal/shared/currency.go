package shared

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var trPrinter = message.NewPrinter(language.Turkish)

// FormatCurrency renders an amount as a locale-formatted lira string for CSV
// and report output, e.g. "₺1.234,56".
func FormatCurrency(amount float64) string {
	return trPrinter.Sprintf("₺%v", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
