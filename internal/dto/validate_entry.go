package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
	"github.com/ruralbooks/entrycheck/internal/utils/accounting"
)

// LedgerLineRequest is one proposed debit or credit movement.
type LedgerLineRequest struct {
	AccountCode string          `json:"account_code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// ValidateEntryRequest is the upstream producer's proposed journal entry.
//
// Field-level problems (missing date, unknown type, bad lines) are
// deliberately not rejected at binding time: the engine reports them as
// structured issues so the caller gets one complete verdict, not a 400.
type ValidateEntryRequest struct {
	TransactionDate string              `json:"transaction_date"`
	TransactionType string              `json:"transaction_type"`
	Narration       string              `json:"narration"`
	Reference       string              `json:"reference"`
	Lines           []LedgerLineRequest `json:"lines"`
	Confidence      float64             `json:"confidence"`
	Warnings        []string            `json:"warnings"`

	// AsOf is the "today" the temporal checks compare against. Optional;
	// the handler substitutes the server date when absent.
	AsOf string `json:"as_of" binding:"omitempty,datetime=2006-01-02"`
}

// ToJournalEntry converts the request into the immutable domain record.
// Amounts are normalized to paisa precision once, at this boundary.
func (r ValidateEntryRequest) ToJournalEntry() domain.JournalEntry {
	lines := make([]domain.LedgerLine, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = domain.LedgerLine{
			AccountCode: domain.AccountCode(line.AccountCode),
			Debit:       accounting.RoundCurrency(line.Debit),
			Credit:      accounting.RoundCurrency(line.Credit),
		}
	}
	return domain.JournalEntry{
		TransactionDate: r.TransactionDate,
		TransactionType: domain.TransactionType(r.TransactionType),
		Narration:       r.Narration,
		Reference:       r.Reference,
		Lines:           lines,
		Confidence:      r.Confidence,
		Warnings:        r.Warnings,
	}
}

// GSTBreakdownRequest asks for the force-balanced split of a gross amount.
type GSTBreakdownRequest struct {
	Amount string `json:"amount" binding:"required,currencyamount"`
}
