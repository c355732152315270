package payments

import "github.com/shopspring/decimal"

// formatAmount renders a minor-unit amount in the provider's decimal
// notation with two fraction digits, e.g. 200 -> "2.00".
func formatAmount(minorUnits int64) string {
	return decimal.New(minorUnits, -2).StringFixed(2)
}
