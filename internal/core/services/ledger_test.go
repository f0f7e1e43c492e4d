package services_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/SscSPs/cashit_ledger/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerTestSuite struct {
	LedgerSuite
}

func (s *LedgerTestSuite) readSnapshot() domain.Snapshot {
	raw, err := s.store.Get(s.ctx, services.SnapshotKey)
	s.Require().NoError(err)
	var snap domain.Snapshot
	s.Require().NoError(json.Unmarshal(raw, &snap))
	return snap
}

func (s *LedgerTestSuite) TestOpen_SeedsAndPersistsAdministrator() {
	snap := s.readSnapshot()

	s.Require().Len(snap.Accounts, 1)
	admin := snap.Accounts[0]
	s.Equal(domain.AdminAccountID, admin.ID)
	s.Equal(domain.AdminName, admin.Name)
	s.Equal(domain.AdminNationalID, admin.NationalID)
	s.Equal(domain.AdminSecret, admin.Secret)
	s.Equal(domain.RoleAdministrator, admin.Role)
	s.True(admin.Balance.IsZero())
	s.Empty(snap.Transactions)
}

func (s *LedgerTestSuite) TestOpen_HealsCorruptSnapshot() {
	s.Require().NoError(s.store.Put(s.ctx, services.SnapshotKey, []byte("{not json")))

	s.reopen()

	snap := s.readSnapshot()
	s.Require().Len(snap.Accounts, 1)
	s.Equal(domain.AdminAccountID, snap.Accounts[0].ID)
}

func (s *LedgerTestSuite) TestOpen_ReseedsEmptyRegistry() {
	s.Require().NoError(s.store.Put(s.ctx, services.SnapshotKey, []byte(`{"accounts":[],"transactions":[]}`)))

	s.reopen()

	_, ok := s.svc.Accounts.FindByID(s.ctx, domain.AdminAccountID)
	s.True(ok)
	s.Len(s.readSnapshot().Accounts, 1)
}

func (s *LedgerTestSuite) TestOpen_AcceptsNumericAmounts() {
	blob := `{"accounts":[
		{"id":"admin-1","name":"Bank Administrator","nationalId":"00000-0000000-0","secret":"1234","balance":0,"savings":0,"role":"administrator","active":true},
		{"id":"u1","name":"Alice","nationalId":"35201-1111111-1","secret":"1111","balance":512.5,"savings":0,"role":"standard","active":true}
	],"transactions":null}`
	s.Require().NoError(s.store.Put(s.ctx, services.SnapshotKey, []byte(blob)))

	s.reopen()

	s.True(s.balanceOf("u1").Equal(dec("512.5")))
	s.Empty(s.svc.Query.TransactionsFor(s.ctx, "u1"))
}

func (s *LedgerTestSuite) TestOpen_WithAdminSecret() {
	s.store = newFailingStore()
	ledger, err := services.OpenLedger(s.ctx, s.store, services.WithAdminSecret("9876"))
	s.Require().NoError(err)
	svc := services.NewServiceContainer(ledger)

	_, res := svc.Session.Login(s.ctx, domain.AdminNationalID, "9876", true)
	s.True(res.Success, res.Message)
}

func (s *LedgerTestSuite) TestOpen_StoreFailureIsNotHealed() {
	store := new(MockKVStore)
	store.On("Get", mock.Anything, services.SnapshotKey).Return(nil, errors.New("connection refused")).Once()

	ledger, err := services.OpenLedger(s.ctx, store)

	s.Nil(ledger)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrStorage)
	store.AssertNotCalled(s.T(), "Put", mock.Anything, mock.Anything, mock.Anything)
	store.AssertExpectations(s.T())
}

func (s *LedgerTestSuite) TestOpen_HealFailureIsReported() {
	store := new(MockKVStore)
	store.On("Get", mock.Anything, services.SnapshotKey).Return(nil, apperrors.ErrNotFound).Once()
	store.On("Put", mock.Anything, services.SnapshotKey, mock.Anything).Return(errors.New("read-only")).Once()

	_, err := services.OpenLedger(s.ctx, store)

	s.ErrorIs(err, apperrors.ErrStorage)
	store.AssertExpectations(s.T())
}

func (s *LedgerTestSuite) TestReopen_KeepsStateAndSession() {
	alice := s.register("Alice", "35201-1111111-1", "1111")
	bob := s.register("Bob", "35201-2222222-2", "2222")
	s.login(alice.NationalID, "1111", false)
	s.Require().True(s.svc.Operations.Transfer(s.ctx, dec("125"), bob.NationalID).Success)

	s.reopen()

	current, ok := s.svc.Session.Current(s.ctx)
	s.Require().True(ok)
	s.Equal(alice.ID, current.ID)
	s.True(current.Balance.Equal(dec("375")))
	s.True(s.balanceOf(bob.ID).Equal(dec("625")))
	s.Len(s.svc.Query.TransactionsFor(s.ctx, alice.ID), 1)

	// Sequence numbers keep growing after a restart.
	s.Require().True(s.svc.Operations.PayTax(s.ctx, dec("1"), "P").Success)
	txs := s.svc.Query.TransactionsFor(s.ctx, alice.ID)
	s.Require().Len(txs, 2)
	s.Greater(txs[0].Sequence, txs[1].Sequence)
}

func (s *LedgerTestSuite) TestReopen_RehydratesStaleSessionMirror() {
	alice := s.register("Alice", "35201-1111111-1", "1111")
	stale := *alice
	stale.Balance = dec("1")
	raw, err := json.Marshal(stale)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Put(s.ctx, services.SessionKey, raw))

	s.reopen()

	current, ok := s.svc.Session.Current(s.ctx)
	s.Require().True(ok)
	s.True(current.Balance.Equal(dec("500")))
}

func (s *LedgerTestSuite) TestReopen_ClearsUnknownOrCorruptSession() {
	for name, blob := range map[string]string{
		"unknown account": `{"id":"ghost","name":"Ghost"}`,
		"corrupt blob":    `{"id":`,
	} {
		s.Run(name, func() {
			s.Require().NoError(s.store.Put(s.ctx, services.SessionKey, []byte(blob)))

			s.reopen()

			_, ok := s.svc.Session.Current(s.ctx)
			s.False(ok)
			_, err := s.store.Get(s.ctx, services.SessionKey)
			s.ErrorIs(err, apperrors.ErrNotFound)
		})
	}
}

func (s *LedgerTestSuite) TestLogout_RemovesSessionBlob() {
	alice := s.register("Alice", "35201-1111111-1", "1111")
	s.login(alice.NationalID, "1111", false)
	_, err := s.store.Get(s.ctx, services.SessionKey)
	s.Require().NoError(err)

	s.Require().True(s.svc.Session.Logout(s.ctx).Success)

	_, err = s.store.Get(s.ctx, services.SessionKey)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerTestSuite) TestTransfer_IsAtomicWhenSnapshotWriteFails() {
	store := newFailingStore()
	s.store = store
	s.reopen()
	alice := s.register("Alice", "35201-1111111-1", "1111")
	bob := s.register("Bob", "35201-2222222-2", "2222")
	s.login(alice.NationalID, "1111", false)

	store.failPut[services.SnapshotKey] = true
	res := s.svc.Operations.Transfer(s.ctx, dec("200"), bob.NationalID)

	s.False(res.Success)
	s.Equal("Operation failed, please try again", res.Message)
	s.ErrorIs(res.Err, apperrors.ErrStorage)
	s.True(s.balanceOf(alice.ID).Equal(dec("500")))
	s.True(s.balanceOf(bob.ID).Equal(dec("500")))
	s.Empty(s.svc.Query.TransactionsFor(s.ctx, alice.ID))
	s.Empty(s.svc.Query.TransactionsFor(s.ctx, bob.ID))
	current, _ := s.svc.Session.Current(s.ctx)
	s.True(current.Balance.Equal(dec("500")))

	store.failPut[services.SnapshotKey] = false
	s.reopen()
	s.True(s.balanceOf(alice.ID).Equal(dec("500")))
	s.True(s.balanceOf(bob.ID).Equal(dec("500")))
}

func (s *LedgerTestSuite) TestSessionWriteFailureDoesNotUndoCommittedSnapshot() {
	store := newFailingStore()
	s.store = store
	s.reopen()
	alice := s.register("Alice", "35201-1111111-1", "1111")
	bob := s.register("Bob", "35201-2222222-2", "2222")
	s.login(alice.NationalID, "1111", false)

	store.failPut[services.SessionKey] = true
	res := s.svc.Operations.Transfer(s.ctx, dec("200"), bob.NationalID)
	s.Require().True(res.Success, res.Message)

	current, _ := s.svc.Session.Current(s.ctx)
	s.True(current.Balance.Equal(dec("300")))

	// Session-only changes have nothing else to commit, so they fail outright.
	res = s.svc.Session.Logout(s.ctx)
	s.False(res.Success)
	s.ErrorIs(res.Err, apperrors.ErrStorage)

	store.failPut[services.SessionKey] = false
	s.reopen()
	current, ok := s.svc.Session.Current(s.ctx)
	s.Require().True(ok)
	s.True(current.Balance.Equal(dec("300")))
}

func (s *LedgerTestSuite) TestRejectedOperationWritesNothing() {
	store := new(MockKVStore)
	store.On("Get", mock.Anything, services.SnapshotKey).Return(nil, apperrors.ErrNotFound).Once()
	store.On("Put", mock.Anything, services.SnapshotKey, mock.Anything).Return(nil).Once()
	store.On("Get", mock.Anything, services.SessionKey).Return(nil, apperrors.ErrNotFound).Once()
	ledger, err := services.OpenLedger(s.ctx, store)
	s.Require().NoError(err)
	svc := services.NewServiceContainer(ledger)

	res := svc.Operations.Transfer(s.ctx, dec("1"), "anyone")

	s.ErrorIs(res.Err, apperrors.ErrNoSession)
	store.AssertExpectations(s.T())
	store.AssertNumberOfCalls(s.T(), "Put", 1)
}

func (s *LedgerTestSuite) TestTimestampsComeFromClock() {
	alice := s.register("Alice", "35201-1111111-1", "1111")
	s.login(alice.NationalID, "1111", false)
	s.clock = time.Date(2025, time.April, 2, 8, 30, 0, 0, time.UTC)

	s.Require().True(s.svc.Operations.PayTax(s.ctx, dec("5"), "P").Success)

	txs := s.svc.Query.TransactionsFor(s.ctx, alice.ID)
	s.Require().Len(txs, 1)
	s.True(txs[0].Timestamp.Equal(s.clock))
	s.NotEmpty(txs[0].ID)
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}
