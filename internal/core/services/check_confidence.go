package services

import (
	"fmt"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
)

// Confidence policy bands. Fixed business policy, not configuration.
const (
	confidenceFloor     = 0.50
	confidenceHighBand  = 0.70
	confidenceOKBand    = 0.80
	confidenceTaxReview = 0.90
	confidenceCeiling   = 0.95
)

// checkConfidence maps the producer's self-reported confidence to issues.
// Low confidence blocks posting; suspiciously high confidence is flagged too,
// since a producer that never doubts itself is miscalibrated.
func (s *checkerService) checkConfidence(entry domain.JournalEntry) checkResult {
	result := checkResult{
		name:       "confidence",
		applicable: true,
		passNote:   "Confidence: producer score raises no concern",
	}

	c := entry.Confidence

	switch {
	case c < confidenceFloor:
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeLowConfidence,
			Message:  fmt.Sprintf("Producer confidence %.2f is below the %.2f floor; do not post without review.", c, confidenceFloor),
		})
	case c < confidenceHighBand:
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningHigh,
			Code:     domain.CodeModerateConfidence,
			Message:  fmt.Sprintf("Producer confidence %.2f is low; review the entry carefully.", c),
		})
	case c < confidenceOKBand:
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningMedium,
			Code:     domain.CodeModerateConfidence,
			Message:  fmt.Sprintf("Producer confidence %.2f is moderate; a quick review is advised.", c),
		})
	case c > confidenceCeiling:
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeOverconfidence,
			Message:  fmt.Sprintf("Producer confidence %.2f exceeds the allowed maximum %.2f; the producer may be miscalibrated.", c, confidenceCeiling),
		})
	case c >= confidenceCeiling:
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningLow,
			Code:     domain.CodeOverconfidence,
			Message:  fmt.Sprintf("Producer confidence %.2f is at the maximum; even maximum confidence needs a human check.", c),
		})
	case c >= confidenceTaxReview && involvesTaxComputation(entry):
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningMedium,
			Code:     domain.CodeOverconfidence,
			Message:  fmt.Sprintf("Producer confidence %.2f is very high on an entry with GST/TDS arithmetic; verify the figures independently.", c),
		})
	}

	return result
}

// involvesTaxComputation reports whether the entry carries a GST or TDS
// computation worth double-checking.
func involvesTaxComputation(entry domain.JournalEntry) bool {
	switch entry.TransactionType {
	case domain.Invoice, domain.GSTPayment, domain.ReceiptWithTDS:
		return true
	}
	return entry.UsesAccount(domain.CGSTPayable) ||
		entry.UsesAccount(domain.SGSTPayable) ||
		entry.UsesAccount(domain.TDSReceivable)
}
