package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ruralbooks/entrycheck/internal/utils/accounting"
)

func TestSplitInclusiveGST(t *testing.T) {
	tests := []struct {
		name  string
		gross string
		base  string
		cgst  string
		sgst  string
	}{
		{
			name:  "clean division",
			gross: "118000",
			base:  "100000",
			cgst:  "9000",
			sgst:  "9000",
		},
		{
			name:  "non-terminating division absorbed by SGST",
			gross: "451285",
			base:  "382444.07",
			cgst:  "34419.97",
			sgst:  "34420.96",
		},
		{
			name:  "small amount",
			gross: "100",
			base:  "84.75",
			cgst:  "7.63",
			sgst:  "7.62",
		},
		{
			name:  "amount with paisa",
			gross: "1180.59",
			base:  "1000.50",
			cgst:  "90.05",
			sgst:  "90.04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gross := decimal.RequireFromString(tt.gross)
			breakdown := accounting.SplitInclusiveGST(gross)

			assert.True(t, decimal.RequireFromString(tt.base).Equal(breakdown.Base), "base: got %s", breakdown.Base)
			assert.True(t, decimal.RequireFromString(tt.cgst).Equal(breakdown.CGST), "cgst: got %s", breakdown.CGST)
			assert.True(t, decimal.RequireFromString(tt.sgst).Equal(breakdown.SGST), "sgst: got %s", breakdown.SGST)
		})
	}
}

func TestSplitInclusiveGST_AlwaysBalances(t *testing.T) {
	// The SGST leg is the exact remainder, so the components must sum to the
	// gross for every input, including ones whose division never terminates.
	amounts := []string{
		"0.01", "1", "99.99", "118", "1180", "118000", "451285",
		"999999.99", "123456.78", "7777.77", "3541.19",
	}

	for _, raw := range amounts {
		gross := decimal.RequireFromString(raw)
		breakdown := accounting.SplitInclusiveGST(gross)

		sum := breakdown.Base.Add(breakdown.CGST).Add(breakdown.SGST)
		assert.True(t, sum.Equal(gross), "gross %s: components sum to %s", gross, sum)
	}
}

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"}, // half rounds up
		{"1.004", "1.00"},
		{"1.995", "2.00"},
		{"100", "100"},
	}

	for _, tt := range tests {
		got := accounting.RoundCurrency(decimal.RequireFromString(tt.in))
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "RoundCurrency(%s) = %s", tt.in, got)
	}
}
