package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the business event a journal entry records.
type TransactionType string

const (
	Invoice        TransactionType = "invoice"
	Receipt        TransactionType = "receipt"
	ReceiptWithTDS TransactionType = "receipt_with_tds"
	Salary         TransactionType = "salary"
	ExpensePayment TransactionType = "expense"
	Drawings       TransactionType = "drawings"
	Capital        TransactionType = "capital"
	GSTPayment     TransactionType = "gst_payment"
)

// TransactionTypes lists every valid transaction type in declaration order.
var TransactionTypes = []TransactionType{
	Invoice, Receipt, ReceiptWithTDS, Salary, ExpensePayment, Drawings, Capital, GSTPayment,
}

// IsValid reports whether t is a member of the fixed transaction type set.
func (t TransactionType) IsValid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// LedgerLine is one debit or credit movement against a single account.
// Exactly one of Debit/Credit must be strictly positive; the other must be zero.
type LedgerLine struct {
	AccountCode AccountCode     `json:"account_code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Validate enforces the single-sided debit/credit invariant.
func (l LedgerLine) Validate() error {
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("line for %s has a negative amount (debit %s, credit %s)",
			l.AccountCode, l.Debit.StringFixed(2), l.Credit.StringFixed(2))
	}
	hasDebit := l.Debit.IsPositive()
	hasCredit := l.Credit.IsPositive()
	if hasDebit && hasCredit {
		return fmt.Errorf("line for %s has both debit (%s) and credit (%s)",
			l.AccountCode, l.Debit.StringFixed(2), l.Credit.StringFixed(2))
	}
	if !hasDebit && !hasCredit {
		return fmt.Errorf("line for %s has neither debit nor credit", l.AccountCode)
	}
	return nil
}

// IsDebit reports whether the line moves value on the debit side.
func (l LedgerLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// JournalEntry is a proposed double-entry record awaiting validation.
// The engine treats it as immutable input and never mutates it.
type JournalEntry struct {
	TransactionDate string          `json:"transaction_date"` // ISO YYYY-MM-DD, parsed by the temporal check
	TransactionType TransactionType `json:"transaction_type"`
	Narration       string          `json:"narration"`
	Reference       string          `json:"reference,omitempty"`
	Lines           []LedgerLine    `json:"lines"`
	Confidence      float64         `json:"confidence"` // producer self-reported, expected in [0,1]
	Warnings        []string        `json:"warnings,omitempty"`
}

// TotalDebits sums the debit side of every line.
func (e JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Debit)
	}
	return total
}

// TotalCredits sums the credit side of every line.
func (e JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Credit)
	}
	return total
}

// DebitTo returns the summed debit amount against the given account code.
func (e JournalEntry) DebitTo(code AccountCode) decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		if line.AccountCode == code {
			total = total.Add(line.Debit)
		}
	}
	return total
}

// CreditTo returns the summed credit amount against the given account code.
func (e JournalEntry) CreditTo(code AccountCode) decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		if line.AccountCode == code {
			total = total.Add(line.Credit)
		}
	}
	return total
}

// UsesAccount reports whether any line references the given account code.
func (e JournalEntry) UsesAccount(code AccountCode) bool {
	for _, line := range e.Lines {
		if line.AccountCode == code {
			return true
		}
	}
	return false
}
