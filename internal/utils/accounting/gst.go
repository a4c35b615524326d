package accounting

import (
	"github.com/shopspring/decimal"
)

// GST is charged at 18% inclusive, split equally between CGST and SGST.
var (
	gstDivisor = decimal.NewFromFloat(1.18)
	halfGSTPct = decimal.NewFromFloat(0.09)
)

// RoundCurrency rounds an amount to 2 decimal places, half up.
// Decimal.Round is half-away-from-zero, which is identical to half-up for the
// non-negative currency values handled here.
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// GSTBreakdown is a force-balanced split of a gross (tax-inclusive) amount.
// Invariant: Base + CGST + SGST equals Total exactly, to the paisa.
type GSTBreakdown struct {
	Total decimal.Decimal `json:"total"`
	Base  decimal.Decimal `json:"base"`
	CGST  decimal.Decimal `json:"cgst"`
	SGST  decimal.Decimal `json:"sgst"`
}

// SplitInclusiveGST computes the base/CGST/SGST split of an 18%-inclusive
// gross amount. Base and CGST are rounded independently; SGST is the exact
// remainder so that independent rounding can never leave a residual.
func SplitInclusiveGST(gross decimal.Decimal) GSTBreakdown {
	base := RoundCurrency(gross.Div(gstDivisor))
	cgst := RoundCurrency(base.Mul(halfGSTPct))
	sgst := gross.Sub(base).Sub(cgst)
	return GSTBreakdown{
		Total: gross,
		Base:  base,
		CGST:  cgst,
		SGST:  sgst,
	}
}
