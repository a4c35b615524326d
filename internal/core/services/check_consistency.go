package services

import (
	"fmt"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
)

// depositProhibitedTypes lists the transaction types in which the
// security-deposit account must never appear. Receivable movements belong on
// the commission-receivable account; the deposit is a non-current asset.
var depositProhibitedTypes = map[domain.TransactionType]bool{
	domain.Invoice:        true,
	domain.Receipt:        true,
	domain.ReceiptWithTDS: true,
}

// checkConsistency compares the accounts actually used against the pattern
// expected for the declared transaction type. A mismatch is advisory; the
// security-deposit prohibition is an absolute error regardless of match.
func (s *checkerService) checkConsistency(entry domain.JournalEntry) checkResult {
	result := checkResult{
		name:     "consistency",
		passNote: "Consistency: accounts match the declared transaction type",
	}

	if !entry.TransactionType.IsValid() {
		// Completeness reports the bad type; no pattern to compare against.
		return result
	}
	result.applicable = true

	if depositProhibitedTypes[entry.TransactionType] && entry.UsesAccount(domain.SecurityDeposit) {
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeProhibitedAccount,
			Message: fmt.Sprintf("Account %s (security deposit) must not be used in a %s entry; use %s (commission receivable) instead.",
				domain.SecurityDeposit, entry.TransactionType, domain.CommissionReceivable),
		})
	}

	debits, credits, allResolved := s.sideAccounts(entry)
	if !allResolved {
		// Unknown codes already produce errors; pattern matching against a
		// partial account set would only add noise.
		return result
	}

	if !s.matchesPattern(entry.TransactionType, debits, credits) {
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningHigh,
			Code:     domain.CodeTypeMismatch,
			Message:  fmt.Sprintf("Accounts used do not fit a %s entry; they suggest a different transaction type.", entry.TransactionType),
		})
	}

	return result
}

// sideAccounts resolves each line's account and partitions them by side.
// The third return value is false when any code is outside the chart.
func (s *checkerService) sideAccounts(entry domain.JournalEntry) (debits, credits []domain.Account, allResolved bool) {
	allResolved = true
	for _, line := range entry.Lines {
		acc, err := s.chart.Resolve(line.AccountCode)
		if err != nil {
			allResolved = false
			continue
		}
		if line.IsDebit() {
			debits = append(debits, acc)
		} else {
			credits = append(credits, acc)
		}
	}
	return debits, credits, allResolved
}

// matchesPattern implements the expected debit/credit account pattern for each
// transaction type.
func (s *checkerService) matchesPattern(txnType domain.TransactionType, debits, credits []domain.Account) bool {
	switch txnType {
	case domain.Invoice:
		return onlyCodes(debits, domain.CommissionReceivable) &&
			exactCodes(credits, domain.CFACommission, domain.CGSTPayable, domain.SGSTPayable)
	case domain.Receipt:
		return allBank(debits) && onlyCodes(credits, domain.CommissionReceivable)
	case domain.ReceiptWithTDS:
		return bankPlus(debits, domain.TDSReceivable) && onlyCodes(credits, domain.CommissionReceivable)
	case domain.Salary:
		return onlyCodes(debits, domain.SalaryExpense) && allBank(credits)
	case domain.ExpensePayment:
		return allOfType(debits, domain.Expense) && allBank(credits)
	case domain.Drawings:
		return onlyCodes(debits, domain.OwnerDrawings) && allBank(credits)
	case domain.Capital:
		return allBank(debits) && onlyCodes(credits, domain.OwnerCapital)
	case domain.GSTPayment:
		return exactCodes(debits, domain.CGSTPayable, domain.SGSTPayable) && allBank(credits)
	default:
		return false
	}
}

// onlyCodes reports whether the side is non-empty and uses no account outside
// the given codes.
func onlyCodes(side []domain.Account, codes ...domain.AccountCode) bool {
	if len(side) == 0 {
		return false
	}
	allowed := make(map[domain.AccountCode]bool, len(codes))
	for _, code := range codes {
		allowed[code] = true
	}
	for _, acc := range side {
		if !allowed[acc.Code] {
			return false
		}
	}
	return true
}

// exactCodes reports whether the side uses every given code and nothing else.
func exactCodes(side []domain.Account, codes ...domain.AccountCode) bool {
	if !onlyCodes(side, codes...) {
		return false
	}
	used := make(map[domain.AccountCode]bool, len(side))
	for _, acc := range side {
		used[acc.Code] = true
	}
	for _, code := range codes {
		if !used[code] {
			return false
		}
	}
	return true
}

// allBank reports whether the side is non-empty and uses only cash-and-bank
// accounts.
func allBank(side []domain.Account) bool {
	if len(side) == 0 {
		return false
	}
	for _, acc := range side {
		if !acc.IsBank() {
			return false
		}
	}
	return true
}

// bankPlus reports whether the side combines at least one bank account with
// the given extra account, and nothing else.
func bankPlus(side []domain.Account, extra domain.AccountCode) bool {
	hasBank, hasExtra := false, false
	for _, acc := range side {
		switch {
		case acc.IsBank():
			hasBank = true
		case acc.Code == extra:
			hasExtra = true
		default:
			return false
		}
	}
	return hasBank && hasExtra
}

// allOfType reports whether the side is non-empty and every account has the
// given fundamental type.
func allOfType(side []domain.Account, accType domain.AccountType) bool {
	if len(side) == 0 {
		return false
	}
	for _, acc := range side {
		if acc.AccountType != accType {
			return false
		}
	}
	return true
}
