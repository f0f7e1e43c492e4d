package services

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DashboardRecentLimit is the number of entries shown on the dashboard.
const DashboardRecentLimit = 5

type queryService struct {
	BaseService
	ledger *Ledger
}

// NewQueryService creates the read-only query facade over ledger.
func NewQueryService(ledger *Ledger) portssvc.QuerySvc {
	return &queryService{ledger: ledger}
}

var _ portssvc.QuerySvc = (*queryService)(nil)

func (s *queryService) TransactionsFor(ctx context.Context, accountID string) []domain.Transaction {
	var out []domain.Transaction
	s.ledger.view(func(_ []domain.Account, transactions []domain.Transaction, _ *domain.Account) {
		out = transactionsFor(transactions, accountID)
	})
	return out
}

func (s *queryService) RecentTransactions(ctx context.Context, accountID string, limit int) []domain.Transaction {
	all := s.TransactionsFor(ctx, accountID)
	if limit >= 0 && len(all) > limit {
		return all[:limit]
	}
	return all
}

func (s *queryService) MonthlySpending(ctx context.Context, accountID string, at time.Time) decimal.Decimal {
	total := decimal.Zero
	s.ledger.view(func(_ []domain.Account, transactions []domain.Transaction, _ *domain.Account) {
		total = monthlySpending(transactions, accountID, at)
	})
	return total
}

func (s *queryService) Dashboard(ctx context.Context, accountID string, at time.Time) (*portssvc.Dashboard, bool) {
	var dash *portssvc.Dashboard
	s.ledger.view(func(accounts []domain.Account, transactions []domain.Transaction, _ *domain.Account) {
		idx := indexOfID(accounts, accountID)
		if idx < 0 {
			return
		}
		recent := transactionsFor(transactions, accountID)
		if len(recent) > DashboardRecentLimit {
			recent = recent[:DashboardRecentLimit]
		}
		dash = &portssvc.Dashboard{
			Account:         accounts[idx],
			MonthlySpending: monthlySpending(transactions, accountID, at),
			Recent:          recent,
		}
	})
	return dash, dash != nil
}

// transactionsFor returns a fresh slice of the account's entries, newest first.
// Equal timestamps fall back to creation order.
func transactionsFor(transactions []domain.Transaction, accountID string) []domain.Transaction {
	out := []domain.Transaction{}
	for _, t := range transactions {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Transaction) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(b.Sequence, a.Sequence)
	})
	return out
}

func monthlySpending(transactions []domain.Transaction, accountID string, at time.Time) decimal.Decimal {
	total := decimal.Zero
	year, month, _ := at.Date()
	for _, t := range transactions {
		if t.AccountID != accountID || !t.IsDebit {
			continue
		}
		ty, tm, _ := t.Timestamp.In(at.Location()).Date()
		if ty == year && tm == month {
			total = total.Add(t.Amount)
		}
	}
	return total
}
