// Package money provides the rounding and display helpers the analysis
// engine needs at its output boundary. Accumulation happens in
// shopspring/decimal for precision; values cross into float64 exactly once,
// already rounded to the currency's two decimal places.
package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// PHP is the fixed result currency (ISO-4217).
const PHP = "PHP"

// Round2 rounds a decimal to 2 places, half away from zero, and returns the
// float64 wire value.
func Round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// Round2Float rounds a float64 to 2 places via decimal, avoiding the usual
// binary-float drift of naive multiply-divide rounding.
func Round2Float(f float64) float64 {
	return Round2(decimal.NewFromFloat(f))
}

// Supported reports whether a currency code exists in the ISO-4217 registry.
func Supported(code string) bool {
	return gomoney.GetCurrency(code) != nil
}

// Display formats an amount with its currency symbol for logs and human
// output, e.g. Display(2340, "PHP") -> "₱2,340.00". Unknown codes fall back
// to a plain two-decimal rendering.
func Display(amount float64, code string) string {
	if !Supported(code) {
		code = PHP
	}
	d := decimal.NewFromFloat(amount).Round(2)
	cents := d.Shift(2).IntPart()
	return gomoney.New(cents, code).Display()
}
