package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
	"github.com/ruralbooks/entrycheck/internal/utils"
	"github.com/ruralbooks/entrycheck/internal/utils/accounting"
)

// Tolerance bands for recomputed tax legs. Sub-tolerance drift is policy, not
// a defect: rounding a non-terminating division can legitimately move a leg by
// a paisa or two.
var (
	gstSilentTolerance  = decimal.NewFromInt(2)
	gstWarningTolerance = decimal.NewFromInt(10)
	gstSplitTolerance   = decimal.NewFromInt(1)
	tdsRateFloor        = decimal.NewFromInt(1)
	tdsRateCeiling      = decimal.NewFromInt(10)
	tdsRateHardCeiling  = decimal.NewFromInt(15)
)

// checkBalance recomputes both sides from the lines, ignoring any totals the
// producer supplied, and requires exact equality.
func (s *checkerService) checkBalance(entry domain.JournalEntry) checkResult {
	debits := entry.TotalDebits()
	credits := entry.TotalCredits()

	result := checkResult{
		name:       "balance",
		applicable: true,
		passNote:   fmt.Sprintf("Balance: debits equal credits at %s", utils.FormatINR(debits)),
	}

	if !debits.Equal(credits) {
		diff := debits.Sub(credits)
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeUnbalanced,
			Message: fmt.Sprintf("Entry does not balance: debits %s, credits %s, difference %s.",
				utils.FormatINR(debits), utils.FormatINR(credits), utils.FormatINR(diff)),
		})
	}

	return result
}

// checkInvoiceGST recomputes the expected base/CGST/SGST split from the
// receivable debit of an invoice and compares it against the credited legs.
// The producer's own split is never trusted as ground truth.
func (s *checkerService) checkInvoiceGST(entry domain.JournalEntry) checkResult {
	result := checkResult{
		name:     "gst verification",
		passNote: "GST verification: credited legs match the recomputed 18% split",
	}

	if entry.TransactionType != domain.Invoice {
		return result
	}

	gross := entry.DebitTo(domain.CommissionReceivable)
	if !gross.IsPositive() {
		// No receivable debit to recompute from; the consistency check
		// reports the structural problem.
		return result
	}
	result.applicable = true

	expected := accounting.SplitInclusiveGST(gross)
	actualBase := entry.CreditTo(domain.CFACommission)
	actualCGST := entry.CreditTo(domain.CGSTPayable)
	actualSGST := entry.CreditTo(domain.SGSTPayable)

	legs := []struct {
		name     string
		expected decimal.Decimal
		actual   decimal.Decimal
	}{
		{"commission income", expected.Base, actualBase},
		{"CGST", expected.CGST, actualCGST},
		{"SGST", expected.SGST, actualSGST},
	}

	worst := decimal.Zero
	detail := ""
	for _, leg := range legs {
		diff := leg.expected.Sub(leg.actual).Abs()
		if diff.GreaterThan(worst) {
			worst = diff
			detail = fmt.Sprintf("%s should be %s but is %s",
				leg.name, utils.FormatINR(leg.expected), utils.FormatINR(leg.actual))
		}
	}

	switch {
	case worst.GreaterThan(gstWarningTolerance):
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeGSTMismatch,
			Message:  fmt.Sprintf("GST split is wrong for gross %s: %s.", utils.FormatINR(gross), detail),
		})
	case worst.GreaterThan(gstSilentTolerance):
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningMedium,
			Code:     domain.CodeGSTMismatch,
			Message:  fmt.Sprintf("GST split drifts from the recomputed values for gross %s: %s.", utils.FormatINR(gross), detail),
		})
	}

	if actualCGST.Sub(actualSGST).Abs().GreaterThan(gstSilentTolerance) {
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningMedium,
			Code:     domain.CodeGSTAsymmetry,
			Message: fmt.Sprintf("CGST (%s) and SGST (%s) should be equal halves of the tax.",
				utils.FormatINR(actualCGST), utils.FormatINR(actualSGST)),
		})
	}

	return result
}

// checkGSTPaymentSplit verifies a GST remittance: the two debited liability
// legs must be equal within one rupee (odd totals split 50/50 leave a paisa
// remainder) and the credited bank amount must equal their sum exactly.
func (s *checkerService) checkGSTPaymentSplit(entry domain.JournalEntry) checkResult {
	result := checkResult{
		name:     "gst payment split",
		passNote: "GST payment: liability halves are even and the bank credit covers their sum",
	}

	if entry.TransactionType != domain.GSTPayment {
		return result
	}

	cgstLeg := entry.DebitTo(domain.CGSTPayable)
	sgstLeg := entry.DebitTo(domain.SGSTPayable)
	if cgstLeg.IsZero() && sgstLeg.IsZero() {
		// Neither liability is debited; the consistency check reports this.
		return result
	}
	result.applicable = true

	if cgstLeg.Sub(sgstLeg).Abs().GreaterThan(gstSplitTolerance) {
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeGSTPaymentSplit,
			Message: fmt.Sprintf("CGST (%s) and SGST (%s) payment legs must be equal within ₹1.00.",
				utils.FormatINR(cgstLeg), utils.FormatINR(sgstLeg)),
		})
	}

	bankCredit := entry.CreditTo(domain.SBICurrent).Add(entry.CreditTo(domain.ICICICurrent))
	total := cgstLeg.Add(sgstLeg)
	if !bankCredit.Equal(total) {
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeGSTPaymentSplit,
			Message: fmt.Sprintf("Bank credit %s must equal the GST legs' sum %s exactly.",
				utils.FormatINR(bankCredit), utils.FormatINR(total)),
		})
	}

	return result
}

// checkTDSRate tests that the withheld tax is a plausible share of the gross
// receipt: 1-10%% is normal, beyond 15%% is a posting blocker.
func (s *checkerService) checkTDSRate(entry domain.JournalEntry) checkResult {
	result := checkResult{
		name:     "tds reasonableness",
		passNote: "TDS: deduction rate is within the expected 1-10% band",
	}

	if entry.TransactionType != domain.ReceiptWithTDS {
		return result
	}

	tds := entry.DebitTo(domain.TDSReceivable)
	cash := entry.DebitTo(domain.SBICurrent).Add(entry.DebitTo(domain.ICICICurrent))
	grossReceipt := cash.Add(tds)
	if !tds.IsPositive() || !grossReceipt.IsPositive() {
		// Missing TDS or bank legs are a pattern problem, not a rate problem.
		return result
	}
	result.applicable = true

	rate := tds.Div(grossReceipt).Mul(decimal.NewFromInt(100))

	switch {
	case rate.GreaterThan(tdsRateHardCeiling):
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeTDSRate,
			Message: fmt.Sprintf("TDS rate %s%% of gross %s is above the 15%% ceiling.",
				rate.StringFixed(2), utils.FormatINR(grossReceipt)),
		})
	case rate.GreaterThan(tdsRateCeiling):
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningMedium,
			Code:     domain.CodeTDSRate,
			Message: fmt.Sprintf("TDS rate %s%% is unusually high; the common rates are 1-10%%.",
				rate.StringFixed(2)),
		})
	case rate.LessThan(tdsRateFloor):
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningMedium,
			Code:     domain.CodeTDSRate,
			Message: fmt.Sprintf("TDS rate %s%% is unusually low; the common rates are 1-10%%.",
				rate.StringFixed(2)),
		})
	}

	return result
}
