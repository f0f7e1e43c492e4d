package dto

import (
	"time"

	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashit_ledger/internal/utils"
)

// TransactionResponse is one ledger entry as shown to its owner.
type TransactionResponse struct {
	ID            string                 `json:"id"`
	Timestamp     time.Time              `json:"timestamp"`
	Kind          domain.TransactionKind `json:"kind"`
	Amount        string                 `json:"amount"`
	AmountDisplay string                 `json:"amountDisplay"`
	Description   string                 `json:"description"`
	IsDebit       bool                   `json:"isDebit"`
}

// ToTransactionResponses converts ledger entries, keeping their order.
func ToTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		out[i] = TransactionResponse{
			ID:            t.ID,
			Timestamp:     t.Timestamp,
			Kind:          t.Kind,
			Amount:        t.Amount.StringFixed(domain.MaxAmountScale),
			AmountDisplay: utils.FormatSigned(t.Amount, t.IsDebit),
			Description:   t.Description,
			IsDebit:       t.IsDebit,
		}
	}
	return out
}

// DashboardResponse backs the customer landing page.
type DashboardResponse struct {
	Account                AccountResponse       `json:"account"`
	MonthlySpending        string                `json:"monthlySpending"`
	MonthlySpendingDisplay string                `json:"monthlySpendingDisplay"`
	Recent                 []TransactionResponse `json:"recent"`
}

// ToDashboardResponse converts the dashboard read model.
func ToDashboardResponse(d portssvc.Dashboard) DashboardResponse {
	return DashboardResponse{
		Account:                ToAccountResponse(d.Account),
		MonthlySpending:        d.MonthlySpending.StringFixed(domain.MaxAmountScale),
		MonthlySpendingDisplay: utils.FormatAmount(d.MonthlySpending),
		Recent:                 ToTransactionResponses(d.Recent),
	}
}
