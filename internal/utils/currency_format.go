package utils

import "github.com/shopspring/decimal"

// FormatINR renders an amount as rupees with paisa precision.
// Example: 118000 -> "₹118000.00"
func FormatINR(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}
