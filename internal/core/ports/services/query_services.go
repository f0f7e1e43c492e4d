package services

import (
	"context"
	"time"

	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Dashboard is the read model behind the customer landing page.
type Dashboard struct {
	Account         domain.Account
	MonthlySpending decimal.Decimal
	Recent          []domain.Transaction
}

// QuerySvc defines read-only views over the ledger.
type QuerySvc interface {
	// TransactionsFor returns the account's entries, newest first.
	TransactionsFor(ctx context.Context, accountID string) []domain.Transaction

	// RecentTransactions returns at most limit entries of TransactionsFor.
	RecentTransactions(ctx context.Context, accountID string, limit int) []domain.Transaction

	// MonthlySpending sums debit amounts in the calendar month of at.
	MonthlySpending(ctx context.Context, accountID string, at time.Time) decimal.Decimal

	// Dashboard assembles balance, spending and recent entries for an account.
	Dashboard(ctx context.Context, accountID string, at time.Time) (*Dashboard, bool)
}
