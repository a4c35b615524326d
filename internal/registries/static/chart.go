package static

import (
	"fmt"
	"sort"

	"github.com/ruralbooks/entrycheck/internal/apperrors"
	"github.com/ruralbooks/entrycheck/internal/core/domain"
	portsreg "github.com/ruralbooks/entrycheck/internal/core/ports/registries"
)

// ChartRegistry serves the fixed chart of accounts from an in-memory table.
// The chart is business policy and never changes at runtime.
type ChartRegistry struct {
	accounts map[domain.AccountCode]domain.Account
}

var _ portsreg.ChartRegistry = (*ChartRegistry)(nil)

// NewChartRegistry seeds the registry with the standard chart of accounts.
func NewChartRegistry() *ChartRegistry {
	reg := &ChartRegistry{accounts: make(map[domain.AccountCode]domain.Account)}
	for _, acc := range chartOfAccounts() {
		reg.accounts[acc.Code] = acc
	}
	return reg
}

// Resolve returns the account for code, following one alias redirect for
// deprecated codes. Unknown codes return a wrapped apperrors.ErrNotFound.
func (r *ChartRegistry) Resolve(code domain.AccountCode) (domain.Account, error) {
	acc, ok := r.accounts[code]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: account code %q", apperrors.ErrNotFound, code)
	}
	if acc.IsDeprecated() {
		canonical, ok := r.accounts[acc.AliasOf]
		if !ok {
			return domain.Account{}, fmt.Errorf("%w: alias target %q for account code %q", apperrors.ErrNotFound, acc.AliasOf, code)
		}
		return canonical, nil
	}
	return acc, nil
}

// List returns every account in the chart ordered by code, deprecated aliases
// included so downstream consumers can display the full table.
func (r *ChartRegistry) List() []domain.Account {
	accounts := make([]domain.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Code < accounts[j].Code
	})
	return accounts
}

func chartOfAccounts() []domain.Account {
	return []domain.Account{
		{Code: domain.SBICurrent, Name: "SBI Current A/c", AccountType: domain.Asset, Subtype: "cash_and_bank", Description: "Primary bank account", IsActive: true},
		{Code: domain.ICICICurrent, Name: "ICICI Current A/c", AccountType: domain.Asset, Subtype: "cash_and_bank", Description: "Secondary bank account", IsActive: true},
		{Code: domain.ShreeCementLegacy, Name: "Shree Cement A/c", AccountType: domain.Asset, AliasOf: domain.CommissionReceivable, Description: "DEPRECATED - split into A003-SD and A003-CR", IsActive: false},
		{Code: domain.SecurityDeposit, Name: "Shree Cement - Security Deposit", AccountType: domain.Asset, Subtype: "security_deposit", Description: "Security deposit with Shree Cement - non-current asset", IsActive: true},
		{Code: domain.CommissionReceivable, Name: "Shree Cement - Commission Receivable", AccountType: domain.Asset, Subtype: "sundry_debtors", Description: "Commission receivable from Shree Cement - current asset", IsActive: true},
		{Code: domain.TDSReceivable, Name: "TDS Receivable", AccountType: domain.Asset, Subtype: "tax_receivable", Description: "Tax deducted at source by payers", IsActive: true},
		{Code: domain.CGSTPayable, Name: "CGST Payable", AccountType: domain.Liability, Subtype: "tax_payable", Description: "Central GST collected", IsActive: true},
		{Code: domain.SGSTPayable, Name: "SGST Payable", AccountType: domain.Liability, Subtype: "tax_payable", Description: "State GST collected", IsActive: true},
		{Code: domain.CFACommission, Name: "CFA Commission", AccountType: domain.Income, Subtype: "service_income", Description: "Commission income from CFA services", IsActive: true},
		{Code: domain.SalaryExpense, Name: "Salary Expense", AccountType: domain.Expense, Subtype: "salary", Description: "Employee salaries", IsActive: true},
		{Code: domain.RakeExpense, Name: "Rake Expense", AccountType: domain.Expense, Subtype: "operational", Description: "Expenses related to rake operations and handling", IsActive: true},
		{Code: domain.GodownExpense, Name: "Godown Expense", AccountType: domain.Expense, Subtype: "operational", Description: "Expenses related to godown/warehouse operations", IsActive: true},
		{Code: domain.MiscExpense, Name: "Miscellaneous Expense", AccountType: domain.Expense, Subtype: "other", Description: "Other miscellaneous expenses", IsActive: true},
		{Code: domain.OwnerCapital, Name: "Owner's Capital", AccountType: domain.Equity, Subtype: "capital", Description: "Capital contributed by owner", IsActive: true},
		{Code: domain.OwnerDrawings, Name: "Owner's Drawings", AccountType: domain.Equity, Subtype: "drawings", Description: "Withdrawals by owner", IsActive: true},
	}
}
