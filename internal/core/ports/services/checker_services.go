package services

import (
	"context"
	"time"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
	"github.com/ruralbooks/entrycheck/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CheckerSvcFacade validates proposed journal entries. Implementations are
// pure: the same entry and as-of date always produce the same report, and no
// state outlives a single call.
type CheckerSvcFacade interface {
	// ValidateEntry runs every check against the entry and aggregates the
	// findings into a report. The as-of date is supplied by the caller; the
	// engine never reads a system clock for validation decisions.
	ValidateEntry(ctx context.Context, entry domain.JournalEntry, asOf time.Time) domain.ValidationReport

	// GSTBreakdown computes the force-balanced base/CGST/SGST split of a
	// tax-inclusive gross amount.
	GSTBreakdown(gross decimal.Decimal) accounting.GSTBreakdown
}

// ChartSvcFacade exposes the chart of accounts to the transport layer.
type ChartSvcFacade interface {
	ListAccounts(ctx context.Context) []domain.Account
	GetAccount(ctx context.Context, code domain.AccountCode) (domain.Account, error)
}
