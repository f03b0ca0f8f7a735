package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var clPrinter = message.NewPrinter(language.MustParse("es-CL"))

// FormatCLP renders an amount the way the dashboards display money:
// "$1.234.567", dot thousands separator, no decimals.
func FormatCLP(d decimal.Decimal) string {
	return "$" + clPrinter.Sprint(number.Decimal(d.Round(0).IntPart()))
}

// FormatPct renders a percentage with two decimals and a decimal comma,
// e.g. "12,34%". A nil input is an undefined ratio and renders as "—".
func FormatPct(d *decimal.Decimal) string {
	if d == nil {
		return "—"
	}
	return strings.Replace(d.Round(2).StringFixed(2), ".", ",", 1) + "%"
}
