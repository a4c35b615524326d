package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
	portssvc "github.com/ruralbooks/entrycheck/internal/core/ports/services"
	"github.com/ruralbooks/entrycheck/internal/core/services"
	"github.com/ruralbooks/entrycheck/internal/registries/static"
)

// asOf is the fixed "today" every test validates against.
var asOf = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

const today = "2025-03-15"

type CheckerServiceTestSuite struct {
	suite.Suite
	checker portssvc.CheckerSvcFacade
	ctx     context.Context
}

func (s *CheckerServiceTestSuite) SetupTest() {
	s.checker = services.NewCheckerService(static.NewChartRegistry())
	s.ctx = context.Background()
}

func TestCheckerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckerServiceTestSuite))
}

// --- Helpers ---

func line(code domain.AccountCode, debit, credit int64) domain.LedgerLine {
	return domain.LedgerLine{
		AccountCode: code,
		Debit:       decimal.NewFromInt(debit),
		Credit:      decimal.NewFromInt(credit),
	}
}

func balancedInvoice() domain.JournalEntry {
	return domain.JournalEntry{
		TransactionDate: today,
		TransactionType: domain.Invoice,
		Narration:       "Commission invoice to Shree Cement",
		Lines: []domain.LedgerLine{
			line(domain.CommissionReceivable, 118000, 0),
			line(domain.CFACommission, 0, 100000),
			line(domain.CGSTPayable, 0, 9000),
			line(domain.SGSTPayable, 0, 9000),
		},
		Confidence: 0.85,
	}
}

func balancedReceipt() domain.JournalEntry {
	return domain.JournalEntry{
		TransactionDate: today,
		TransactionType: domain.Receipt,
		Narration:       "Payment received from Shree Cement",
		Lines: []domain.LedgerLine{
			line(domain.SBICurrent, 50000, 0),
			line(domain.CommissionReceivable, 0, 50000),
		},
		Confidence: 0.85,
	}
}

func issuesWithCode(report domain.ValidationReport, code string) []domain.Issue {
	var found []domain.Issue
	buckets := [][]domain.Issue{report.Errors, report.Warnings.High, report.Warnings.Medium, report.Warnings.Low}
	for _, bucket := range buckets {
		for _, issue := range bucket {
			if issue.Code == code {
				found = append(found, issue)
			}
		}
	}
	return found
}

// --- End-to-end verdicts ---

func (s *CheckerServiceTestSuite) TestBalancedInvoiceIsApproved() {
	report := s.checker.ValidateEntry(s.ctx, balancedInvoice(), asOf)

	assert.Equal(s.T(), domain.StatusApproved, report.Status)
	assert.Equal(s.T(), domain.RecommendPost, report.Recommendation)
	assert.Empty(s.T(), report.Errors)
	assert.Zero(s.T(), report.Warnings.Count())
	assert.Equal(s.T(), "All validations passed.", report.Summary)
	assert.NotEmpty(s.T(), report.ChecksPassed)
	assert.NotEmpty(s.T(), report.ReportID)
}

func (s *CheckerServiceTestSuite) TestUnbalancedReceiptIsBlocked() {
	entry := domain.JournalEntry{
		TransactionDate: today,
		TransactionType: domain.Receipt,
		Narration:       "Payment received",
		Lines: []domain.LedgerLine{
			line(domain.SBICurrent, 100000, 0),
			line(domain.CommissionReceivable, 0, 118000),
		},
		Confidence: 0.85,
	}

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	assert.Equal(s.T(), domain.StatusFlagged, report.Status)
	assert.Equal(s.T(), domain.RecommendDoNotPost, report.Recommendation)

	balanceErrors := issuesWithCode(report, domain.CodeUnbalanced)
	require.Len(s.T(), balanceErrors, 1)
	assert.Contains(s.T(), balanceErrors[0].Message, "₹100000.00")
	assert.Contains(s.T(), balanceErrors[0].Message, "₹118000.00")
	assert.Contains(s.T(), balanceErrors[0].Message, "₹-18000.00")

	// the dominant finding leads the summary
	assert.Equal(s.T(), balanceErrors[0].Message, report.Summary)
}

func (s *CheckerServiceTestSuite) TestUnknownAccountDoesNotStopOtherChecks() {
	entry := domain.JournalEntry{
		TransactionDate: today,
		TransactionType: domain.Receipt,
		Narration:       "Payment received",
		Lines: []domain.LedgerLine{
			{AccountCode: "X999", Debit: decimal.NewFromInt(1000)},
			line(domain.CommissionReceivable, 0, 1000),
		},
		Confidence: 0.85,
	}

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	unknown := issuesWithCode(report, domain.CodeUnknownAccount)
	require.Len(s.T(), unknown, 1)
	assert.Contains(s.T(), unknown[0].Message, "X999")

	// the balance check still ran and passed
	var balancePassed bool
	for _, note := range report.ChecksPassed {
		if note == "Balance: debits equal credits at ₹1000.00" {
			balancePassed = true
		}
	}
	assert.True(s.T(), balancePassed, "balance check should still run: %v", report.ChecksPassed)
}

func (s *CheckerServiceTestSuite) TestLegacyCodeCanonicalizesBeforeChecks() {
	entry := balancedReceipt()
	entry.Lines[1].AccountCode = domain.ShreeCementLegacy

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	assert.Equal(s.T(), domain.StatusApproved, report.Status)
	assert.Empty(s.T(), issuesWithCode(report, domain.CodeTypeMismatch))
}

// --- Security deposit prohibition ---

func (s *CheckerServiceTestSuite) TestSecurityDepositIsProhibitedInInvoice() {
	entry := balancedInvoice()
	entry.Lines[0].AccountCode = domain.SecurityDeposit

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	prohibited := issuesWithCode(report, domain.CodeProhibitedAccount)
	require.Len(s.T(), prohibited, 1)
	assert.Equal(s.T(), domain.SeverityError, prohibited[0].Severity)
	assert.Contains(s.T(), prohibited[0].Message, string(domain.CommissionReceivable))
	assert.Equal(s.T(), domain.RecommendDoNotPost, report.Recommendation)
}

func (s *CheckerServiceTestSuite) TestSecurityDepositIsAllowedOutsideReceivableFlows() {
	// A receipt of the deposit back is not one of the prohibited flows here;
	// only the type/pattern warning applies.
	entry := domain.JournalEntry{
		TransactionDate: today,
		TransactionType: domain.ExpensePayment,
		Narration:       "Deposit placed with Shree Cement",
		Lines: []domain.LedgerLine{
			line(domain.SecurityDeposit, 50000, 0),
			line(domain.SBICurrent, 0, 50000),
		},
		Confidence: 0.85,
	}

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	assert.Empty(s.T(), issuesWithCode(report, domain.CodeProhibitedAccount))
	assert.NotEmpty(s.T(), issuesWithCode(report, domain.CodeTypeMismatch))
}

// --- GST verification ---

func (s *CheckerServiceTestSuite) TestInvoiceGSTDriftWarns() {
	entry := balancedInvoice()
	entry.Lines[1] = line(domain.CFACommission, 0, 100005)
	entry.Lines[3] = line(domain.SGSTPayable, 0, 8995)

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	drift := issuesWithCode(report, domain.CodeGSTMismatch)
	require.Len(s.T(), drift, 1)
	assert.Equal(s.T(), domain.SeverityWarningMedium, drift[0].Severity)

	asymmetry := issuesWithCode(report, domain.CodeGSTAsymmetry)
	require.Len(s.T(), asymmetry, 1)
	assert.Equal(s.T(), domain.RecommendReviewThenPost, report.Recommendation)
}

func (s *CheckerServiceTestSuite) TestInvoiceGSTLargeMismatchBlocks() {
	entry := balancedInvoice()
	entry.Lines[1] = line(domain.CFACommission, 0, 100020)
	entry.Lines[2] = line(domain.CGSTPayable, 0, 8990)
	entry.Lines[3] = line(domain.SGSTPayable, 0, 8990)

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	mismatch := issuesWithCode(report, domain.CodeGSTMismatch)
	require.Len(s.T(), mismatch, 1)
	assert.Equal(s.T(), domain.SeverityError, mismatch[0].Severity)
	assert.Equal(s.T(), domain.RecommendDoNotPost, report.Recommendation)
}

func (s *CheckerServiceTestSuite) TestInvoiceGSTWithinToleranceIsSilent() {
	entry := balancedInvoice()
	entry.Lines[1] = line(domain.CFACommission, 0, 100001)
	entry.Lines[3] = line(domain.SGSTPayable, 0, 8999)

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	assert.Empty(s.T(), issuesWithCode(report, domain.CodeGSTMismatch))
	assert.Empty(s.T(), issuesWithCode(report, domain.CodeGSTAsymmetry))
}

// --- GST payment ---

func (s *CheckerServiceTestSuite) TestGSTPaymentEvenSplitIsApproved() {
	entry := domain.JournalEntry{
		TransactionDate: today,
		TransactionType: domain.GSTPayment,
		Narration:       "GST remittance for February",
		Lines: []domain.LedgerLine{
			line(domain.CGSTPayable, 4500, 0),
			line(domain.SGSTPayable, 4500, 0),
			line(domain.SBICurrent, 0, 9000),
		},
		Confidence: 0.85,
	}

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	assert.Equal(s.T(), domain.StatusApproved, report.Status)
	assert.Equal(s.T(), domain.RecommendPost, report.Recommendation)
}

func (s *CheckerServiceTestSuite) TestGSTPaymentUnevenSplitBlocks() {
	entry := domain.JournalEntry{
		TransactionDate: today,
		TransactionType: domain.GSTPayment,
		Narration:       "GST remittance",
		Lines: []domain.LedgerLine{
			line(domain.CGSTPayable, 5000, 0),
			line(domain.SGSTPayable, 4000, 0),
			line(domain.SBICurrent, 0, 9000),
		},
		Confidence: 0.85,
	}

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	split := issuesWithCode(report, domain.CodeGSTPaymentSplit)
	require.Len(s.T(), split, 1)
	assert.Equal(s.T(), domain.SeverityError, split[0].Severity)
}

func (s *CheckerServiceTestSuite) TestGSTPaymentBankMismatchBlocks() {
	entry := domain.JournalEntry{
		TransactionDate: today,
		TransactionType: domain.GSTPayment,
		Narration:       "GST remittance",
		Lines: []domain.LedgerLine{
			line(domain.CGSTPayable, 4500, 0),
			line(domain.SGSTPayable, 4500, 0),
			line(domain.SBICurrent, 0, 8000),
		},
		Confidence: 0.85,
	}

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	split := issuesWithCode(report, domain.CodeGSTPaymentSplit)
	require.Len(s.T(), split, 1)
	assert.Contains(s.T(), split[0].Message, "₹8000.00")
	// the entry is also unbalanced, reported independently
	assert.NotEmpty(s.T(), issuesWithCode(report, domain.CodeUnbalanced))
}

// --- TDS reasonableness ---

func receiptWithTDS(cash, tds, receivable int64) domain.JournalEntry {
	return domain.JournalEntry{
		TransactionDate: today,
		TransactionType: domain.ReceiptWithTDS,
		Narration:       "Payment received net of TDS",
		Lines: []domain.LedgerLine{
			line(domain.SBICurrent, cash, 0),
			line(domain.TDSReceivable, tds, 0),
			line(domain.CommissionReceivable, 0, receivable),
		},
		Confidence: 0.85,
	}
}

func (s *CheckerServiceTestSuite) TestTDSNormalRatePasses() {
	report := s.checker.ValidateEntry(s.ctx, receiptWithTDS(115640, 2360, 118000), asOf)

	assert.Equal(s.T(), domain.StatusApproved, report.Status)
	assert.Empty(s.T(), issuesWithCode(report, domain.CodeTDSRate))
}

func (s *CheckerServiceTestSuite) TestTDSHighRateWarns() {
	report := s.checker.ValidateEntry(s.ctx, receiptWithTDS(86000, 14000, 100000), asOf)

	rate := issuesWithCode(report, domain.CodeTDSRate)
	require.Len(s.T(), rate, 1)
	assert.Equal(s.T(), domain.SeverityWarningMedium, rate[0].Severity)
}

func (s *CheckerServiceTestSuite) TestTDSExcessiveRateBlocks() {
	report := s.checker.ValidateEntry(s.ctx, receiptWithTDS(84000, 16000, 100000), asOf)

	rate := issuesWithCode(report, domain.CodeTDSRate)
	require.Len(s.T(), rate, 1)
	assert.Equal(s.T(), domain.SeverityError, rate[0].Severity)
}

func (s *CheckerServiceTestSuite) TestTDSTinyRateWarns() {
	report := s.checker.ValidateEntry(s.ctx, receiptWithTDS(99500, 500, 100000), asOf)

	rate := issuesWithCode(report, domain.CodeTDSRate)
	require.Len(s.T(), rate, 1)
	assert.Equal(s.T(), domain.SeverityWarningMedium, rate[0].Severity)
}

// --- Temporal rules ---

func (s *CheckerServiceTestSuite) TestDateRules() {
	tests := []struct {
		name     string
		date     string
		wantCode string
	}{
		{"today passes", today, ""},
		{"one day future blocks", "2025-03-16", domain.CodeFutureDate},
		{"45 days old warns", "2025-01-29", domain.CodeBackdated},
		{"95 days old blocks", "2024-12-10", domain.CodeStaleDate},
		{"unparsable blocks", "15/03/2025", domain.CodeInvalidDate},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			entry := balancedReceipt()
			entry.TransactionDate = tt.date

			report := s.checker.ValidateEntry(s.ctx, entry, asOf)

			temporalCodes := []string{domain.CodeInvalidDate, domain.CodeFutureDate, domain.CodeStaleDate, domain.CodeBackdated}
			for _, code := range temporalCodes {
				found := issuesWithCode(report, code)
				if code == tt.wantCode {
					assert.Len(s.T(), found, 1, "expected %s", code)
				} else {
					assert.Empty(s.T(), found, "unexpected %s", code)
				}
			}
		})
	}
}

// --- Confidence bands ---

func (s *CheckerServiceTestSuite) TestConfidenceBands() {
	tests := []struct {
		name         string
		confidence   float64
		wantCode     string
		wantSeverity domain.Severity
	}{
		{"0.40 blocks", 0.40, domain.CodeLowConfidence, domain.SeverityError},
		{"0.60 warns high", 0.60, domain.CodeModerateConfidence, domain.SeverityWarningHigh},
		{"0.75 warns medium", 0.75, domain.CodeModerateConfidence, domain.SeverityWarningMedium},
		{"0.85 passes", 0.85, "", ""},
		{"0.95 warns low only", 0.95, domain.CodeOverconfidence, domain.SeverityWarningLow},
		{"0.96 blocks", 0.96, domain.CodeOverconfidence, domain.SeverityError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			entry := balancedReceipt()
			entry.Confidence = tt.confidence

			report := s.checker.ValidateEntry(s.ctx, entry, asOf)

			confCodes := []string{domain.CodeLowConfidence, domain.CodeModerateConfidence, domain.CodeOverconfidence}
			var found []domain.Issue
			for _, code := range confCodes {
				found = append(found, issuesWithCode(report, code)...)
			}

			if tt.wantCode == "" {
				assert.Empty(s.T(), found)
				return
			}
			require.Len(s.T(), found, 1)
			assert.Equal(s.T(), tt.wantCode, found[0].Code)
			assert.Equal(s.T(), tt.wantSeverity, found[0].Severity)
		})
	}
}

func (s *CheckerServiceTestSuite) TestVeryHighConfidenceOnTaxEntryWarns() {
	entry := balancedInvoice()
	entry.Confidence = 0.92

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	over := issuesWithCode(report, domain.CodeOverconfidence)
	require.Len(s.T(), over, 1)
	assert.Equal(s.T(), domain.SeverityWarningMedium, over[0].Severity)
	assert.Equal(s.T(), domain.RecommendReviewThenPost, report.Recommendation)
}

func (s *CheckerServiceTestSuite) TestLowOnlyWarningsStillRecommendPost() {
	entry := balancedReceipt()
	entry.Confidence = 0.95

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	assert.Equal(s.T(), domain.StatusFlagged, report.Status)
	assert.Equal(s.T(), domain.RecommendPost, report.Recommendation)
	assert.Equal(s.T(), report.Warnings.Low[0].Message, report.Summary)
}

// --- Structural defects ---

func (s *CheckerServiceTestSuite) TestMissingFieldsAreReportedNotThrown() {
	entry := domain.JournalEntry{
		TransactionType: domain.TransactionType("refund"),
		Confidence:      0.85,
		Lines: []domain.LedgerLine{
			line(domain.SBICurrent, 500, 500),
		},
	}

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	assert.NotEmpty(s.T(), issuesWithCode(report, domain.CodeMissingField))   // date
	assert.NotEmpty(s.T(), issuesWithCode(report, domain.CodeInvalidType))    // refund
	assert.NotEmpty(s.T(), issuesWithCode(report, domain.CodeTooFewLines))    // one line
	assert.NotEmpty(s.T(), issuesWithCode(report, domain.CodeInvalidLine))    // double-sided
	assert.NotEmpty(s.T(), issuesWithCode(report, domain.CodeEmptyNarration)) // advisory
	assert.Equal(s.T(), domain.RecommendDoNotPost, report.Recommendation)
}

// --- Producer warning reclassification ---

func (s *CheckerServiceTestSuite) TestProducerWarningsAreReclassified() {
	entry := balancedReceipt()
	entry.Warnings = []string{
		"Assumed SBI bank account",
		"Mapped to miscellaneous expense",
		"Minor rounding adjustment",
		"Something else entirely",
	}

	report := s.checker.ValidateEntry(s.ctx, entry, asOf)

	require.Len(s.T(), report.Warnings.High, 1)
	assert.Equal(s.T(), "[HIGH] Assumed SBI bank account", report.Warnings.High[0].Message)

	require.Len(s.T(), report.Warnings.Medium, 2)
	assert.Equal(s.T(), "[MEDIUM] Mapped to miscellaneous expense", report.Warnings.Medium[0].Message)
	assert.Equal(s.T(), "[MEDIUM] Something else entirely", report.Warnings.Medium[1].Message)

	require.Len(s.T(), report.Warnings.Low, 1)
	assert.Equal(s.T(), "[LOW] Minor rounding adjustment", report.Warnings.Low[0].Message)

	assert.Equal(s.T(), domain.RecommendReviewThenPost, report.Recommendation)
}
