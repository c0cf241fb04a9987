// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbol = "$"

// SetCurrency changes the symbol FormatMoney prefixes. Empty keeps the current one.
func SetCurrency(symbol string) {
	if symbol != "" {
		currencySymbol = symbol
	}
}

// Currency returns the active currency symbol.
func Currency() string {
	return currencySymbol
}

// FormatMoney formats an amount with the currency symbol, thousands separators
// and two decimals. e.g., 1234.5 -> "$1,234.50", -3 -> "-$3.00"
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + currencySymbol + groupDigits(whole) + "." + frac
}

// groupDigits adds comma separators to a run of digits.
// e.g., "1234567" -> "1,234,567"
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats an already-scaled percentage with two decimals.
// e.g., 75 -> "75.00%"
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// FormatRate formats an allocation percentage as entered, without padding.
// e.g., 12.5 -> "12.5%"
func FormatRate(d decimal.Decimal) string {
	return d.String() + "%"
}
