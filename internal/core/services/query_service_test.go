package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/SscSPs/cashit_ledger/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type QueryServiceTestSuite struct {
	LedgerSuite
	alice *domain.Account
	bob   *domain.Account
}

func (s *QueryServiceTestSuite) SetupTest() {
	s.LedgerSuite.SetupTest()
	s.alice = s.register("Alice", "35201-1111111-1", "1111")
	s.bob = s.register("Bob", "35201-2222222-2", "2222")
	s.login(s.alice.NationalID, "1111", false)
}

func (s *QueryServiceTestSuite) payAt(at time.Time, amount string) {
	s.clock = at
	s.Require().True(s.svc.Operations.PayBill(s.ctx, dec(amount), "Gas", amount).Success)
}

func (s *QueryServiceTestSuite) TestTransactionsFor_NewestFirst() {
	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	s.payAt(march.Add(2*time.Hour), "1")
	s.payAt(march, "2")
	s.payAt(march.Add(5*time.Hour), "3")

	txs := s.svc.Query.TransactionsFor(s.ctx, s.alice.ID)

	s.Require().Len(txs, 3)
	s.Equal("Gas Bill (Consumer ID: 3)", txs[0].Description)
	s.Equal("Gas Bill (Consumer ID: 1)", txs[1].Description)
	s.Equal("Gas Bill (Consumer ID: 2)", txs[2].Description)
	s.Equal(txs, s.svc.Query.TransactionsFor(s.ctx, s.alice.ID))
}

func (s *QueryServiceTestSuite) TestTransactionsFor_TiesKeepCreationOrder() {
	for _, amt := range []string{"1", "2", "3"} {
		s.payAt(s.clock, amt)
	}

	txs := s.svc.Query.TransactionsFor(s.ctx, s.alice.ID)

	s.Require().Len(txs, 3)
	s.True(txs[0].Amount.Equal(dec("3")))
	s.True(txs[2].Amount.Equal(dec("1")))
}

func (s *QueryServiceTestSuite) TestTransactionsFor_OnlyOwnEntries() {
	s.Require().True(s.svc.Operations.Transfer(s.ctx, dec("10"), s.bob.NationalID).Success)
	s.payAt(s.clock, "5")

	s.Len(s.svc.Query.TransactionsFor(s.ctx, s.alice.ID), 2)
	s.Len(s.svc.Query.TransactionsFor(s.ctx, s.bob.ID), 1)
	s.Empty(s.svc.Query.TransactionsFor(s.ctx, "missing"))
}

func (s *QueryServiceTestSuite) TestRecentTransactions() {
	for _, amt := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		s.payAt(s.clock, amt)
	}

	recent := s.svc.Query.RecentTransactions(s.ctx, s.alice.ID, services.DashboardRecentLimit)

	s.Require().Len(recent, 5)
	s.True(recent[0].Amount.Equal(dec("7")))
	s.Len(s.svc.Query.RecentTransactions(s.ctx, s.alice.ID, 100), 7)
}

func (s *QueryServiceTestSuite) TestMonthlySpending_CountsDebitsInSameMonthAndYear() {
	s.payAt(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), "10")
	s.payAt(time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC), "20.50")
	s.payAt(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), "40")
	s.payAt(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), "80")

	// Credits never count.
	s.loginAdmin()
	s.clock = time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	s.Require().True(s.svc.Operations.AdminAddFunds(s.ctx, s.alice.ID, dec("1000")).Success)

	at := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	s.True(s.svc.Query.MonthlySpending(s.ctx, s.alice.ID, at).Equal(dec("30.50")))
	s.True(s.svc.Query.MonthlySpending(s.ctx, s.bob.ID, at).IsZero())
}

func (s *QueryServiceTestSuite) TestDashboard() {
	s.payAt(s.clock, "25")

	dash, ok := s.svc.Query.Dashboard(s.ctx, s.alice.ID, s.clock)

	s.Require().True(ok)
	s.Equal(s.alice.ID, dash.Account.ID)
	s.True(dash.Account.Balance.Equal(dec("475")))
	s.True(dash.MonthlySpending.Equal(dec("25")))
	s.Len(dash.Recent, 1)

	_, ok = s.svc.Query.Dashboard(s.ctx, "missing", s.clock)
	s.False(ok)
}

func (s *QueryServiceTestSuite) TestQueriesDoNotMutate() {
	s.payAt(s.clock, "25")
	before := s.readAll()

	_ = s.svc.Query.TransactionsFor(s.ctx, s.alice.ID)
	_ = s.svc.Query.MonthlySpending(s.ctx, s.alice.ID, s.clock)
	_, _ = s.svc.Query.Dashboard(s.ctx, s.alice.ID, s.clock)

	s.Equal(before, s.readAll())
}

func (s *QueryServiceTestSuite) readAll() string {
	raw, err := s.store.Get(s.ctx, services.SnapshotKey)
	s.Require().NoError(err)
	return string(raw)
}

func TestQueryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QueryServiceTestSuite))
}
