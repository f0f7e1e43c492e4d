package dto

import (
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/SscSPs/cashit_ledger/internal/utils"
)

// AccountResponse is the public view of an account. The secret never leaves the server.
type AccountResponse struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	NationalID     string      `json:"nationalId"`
	Balance        string      `json:"balance"`
	BalanceDisplay string      `json:"balanceDisplay"`
	Savings        string      `json:"savings"`
	SavingsDisplay string      `json:"savingsDisplay"`
	Role           domain.Role `json:"role"`
	Active         bool        `json:"active"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		NationalID:     a.NationalID,
		Balance:        a.Balance.StringFixed(domain.MaxAmountScale),
		BalanceDisplay: utils.FormatAmount(a.Balance),
		Savings:        a.Savings.StringFixed(domain.MaxAmountScale),
		SavingsDisplay: utils.FormatAmount(a.Savings),
		Role:           a.Role,
		Active:         a.Active,
	}
}

// ToAccountResponses converts a slice of domain.Account.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = ToAccountResponse(a)
	}
	return out
}
