package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
	Equity    AccountType = "EQUITY"
)

// AccountCode identifies an account in the fixed chart of accounts.
type AccountCode string

// The chart of accounts is a closed set; codes are never created at runtime.
const (
	SBICurrent           AccountCode = "A001"
	ICICICurrent         AccountCode = "A002"
	ShreeCementLegacy    AccountCode = "A003" // deprecated, canonicalizes to A003-CR
	SecurityDeposit      AccountCode = "A003-SD"
	CommissionReceivable AccountCode = "A003-CR"
	TDSReceivable        AccountCode = "A004"
	CGSTPayable          AccountCode = "L001"
	SGSTPayable          AccountCode = "L002"
	CFACommission        AccountCode = "I001"
	SalaryExpense        AccountCode = "E001"
	RakeExpense          AccountCode = "E002"
	GodownExpense        AccountCode = "E003"
	MiscExpense          AccountCode = "E004"
	OwnerCapital         AccountCode = "EQ001"
	OwnerDrawings        AccountCode = "EQ002"
)

// Account represents one entry in the chart of accounts.
type Account struct {
	Code        AccountCode `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"account_type"`
	Subtype     string      `json:"subtype,omitempty"`  // finer classification, e.g. "security_deposit"
	AliasOf     AccountCode `json:"alias_of,omitempty"` // non-empty for deprecated codes
	Description string      `json:"description,omitempty"`
	IsActive    bool        `json:"is_active"`
}

// IsBank reports whether the account is a cash-and-bank asset.
func (a Account) IsBank() bool {
	return a.AccountType == Asset && a.Subtype == "cash_and_bank"
}

// IsDeprecated reports whether the code is an alias for a current account.
func (a Account) IsDeprecated() bool {
	return a.AliasOf != ""
}
