package services

import (
	"fmt"
	"strings"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
)

// checkCompleteness verifies that every required field is present and that the
// transaction type is a member of the fixed enum. An empty narration is an
// advisory finding, not a posting blocker.
func (s *checkerService) checkCompleteness(entry domain.JournalEntry) checkResult {
	result := checkResult{
		name:       "completeness",
		applicable: true,
		passNote:   "Completeness: all required fields present",
	}

	if strings.TrimSpace(entry.TransactionDate) == "" {
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeMissingField,
			Message:  "Transaction date is required.",
		})
	}

	switch {
	case entry.TransactionType == "":
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeMissingField,
			Message:  "Transaction type is required.",
		})
	case !entry.TransactionType.IsValid():
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeInvalidType,
			Message:  fmt.Sprintf("Transaction type %q is not recognised.", entry.TransactionType),
		})
	}

	if strings.TrimSpace(entry.Narration) == "" {
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningMedium,
			Code:     domain.CodeEmptyNarration,
			Message:  "Narration is empty; add a description before posting.",
		})
	}

	if len(entry.Lines) < 2 {
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeTooFewLines,
			Message:  fmt.Sprintf("Entry has %d line(s); a journal entry needs at least 2.", len(entry.Lines)),
		})
	}

	return result
}

// checkLineValidity enforces the single-sided debit/credit invariant on every
// line: non-negative amounts, exactly one positive side.
func (s *checkerService) checkLineValidity(entry domain.JournalEntry) checkResult {
	result := checkResult{
		name:       "line validity",
		applicable: true,
		passNote:   "Line validity: every line is single-sided with a positive amount",
	}

	for i, line := range entry.Lines {
		if err := line.Validate(); err != nil {
			result.issues = append(result.issues, domain.Issue{
				Severity: domain.SeverityError,
				Code:     domain.CodeInvalidLine,
				Message:  fmt.Sprintf("Line %d: %s.", i+1, err.Error()),
			})
		}
	}

	return result
}

// checkAccountValidity resolves every line's account code against the chart of
// accounts. Unknown codes are reported once each, by code.
func (s *checkerService) checkAccountValidity(entry domain.JournalEntry) checkResult {
	result := checkResult{
		name:       "account validity",
		applicable: true,
		passNote:   "Account validity: all account codes resolve against the chart of accounts",
	}

	seen := make(map[domain.AccountCode]bool)
	for _, line := range entry.Lines {
		if seen[line.AccountCode] {
			continue
		}
		seen[line.AccountCode] = true
		if _, err := s.chart.Resolve(line.AccountCode); err != nil {
			result.issues = append(result.issues, domain.Issue{
				Severity: domain.SeverityError,
				Code:     domain.CodeUnknownAccount,
				Message:  fmt.Sprintf("Account code %q is not in the chart of accounts.", line.AccountCode),
			})
		}
	}

	return result
}
