package registries

import (
	"github.com/ruralbooks/entrycheck/internal/core/domain"
)

// ChartRegistry resolves account codes against the fixed chart of accounts.
// Implementations must canonicalize deprecated codes to their current
// equivalent before returning.
type ChartRegistry interface {
	// Resolve returns the account for code, following alias redirects.
	// Returns apperrors.ErrNotFound (wrapped) for codes outside the chart.
	Resolve(code domain.AccountCode) (domain.Account, error)

	// List returns every account in the chart, in code order.
	List() []domain.Account
}
