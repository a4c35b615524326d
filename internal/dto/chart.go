package dto

import "github.com/ruralbooks/entrycheck/internal/core/domain"

// AccountResponse is one chart-of-accounts row.
type AccountResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	AccountType string `json:"account_type"`
	Subtype     string `json:"subtype,omitempty"`
	AliasOf     string `json:"alias_of,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// ToAccountResponse converts a domain account to its wire shape.
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		Code:        string(acc.Code),
		Name:        acc.Name,
		AccountType: string(acc.AccountType),
		Subtype:     acc.Subtype,
		AliasOf:     string(acc.AliasOf),
		Description: acc.Description,
		IsActive:    acc.IsActive,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		responses[i] = ToAccountResponse(acc)
	}
	return responses
}
