// Package currencypkg provides common currency rendering functionality for apps.
package currencypkg

import "github.com/shopspring/decimal"

// PHP is the Philippine peso sign, the default rendering symbol.
const PHP = "₱"

// Format renders the amount with the given currency symbol and exactly two
// decimal digits.
func Format(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
