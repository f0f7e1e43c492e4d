package services_test

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/cashit_ledger/internal/adapters/kvstore"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashit_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashit_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock KVStore ---
type MockKVStore struct {
	mock.Mock
}

func (m *MockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKVStore) Put(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKVStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockKVStore) Close() error {
	return m.Called().Error(0)
}

// failingStore wraps a memory store and fails writes to chosen keys on demand.
type failingStore struct {
	*kvstore.MemoryStore
	failPut map[string]bool
}

func newFailingStore() *failingStore {
	return &failingStore{MemoryStore: kvstore.NewMemoryStore(), failPut: map[string]bool{}}
}

func (f *failingStore) Put(ctx context.Context, key string, value []byte) error {
	if f.failPut[key] {
		return fmt.Errorf("disk full writing %s", key)
	}
	return f.MemoryStore.Put(ctx, key, value)
}

func (f *failingStore) Delete(ctx context.Context, key string) error {
	if f.failPut[key] {
		return fmt.Errorf("disk full deleting %s", key)
	}
	return f.MemoryStore.Delete(ctx, key)
}

// --- Base suite ---

// LedgerSuite opens a ledger over an in-memory store with a fixed clock and
// deterministic ids.
type LedgerSuite struct {
	suite.Suite
	ctx    context.Context
	store  portsrepo.KVStore
	clock  time.Time
	ids    int
	ledger *services.Ledger
	svc    *portssvc.ServiceContainer
}

func (s *LedgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = kvstore.NewMemoryStore()
	s.clock = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	s.ids = 0
	s.reopen()
}

// reopen builds a new ledger over the same store, as a restarted process would.
func (s *LedgerSuite) reopen() {
	ledger, err := services.OpenLedger(s.ctx, s.store,
		services.WithClock(func() time.Time { return s.clock }),
		services.WithIDGenerator(func() string {
			s.ids++
			return fmt.Sprintf("id-%d", s.ids)
		}),
	)
	s.Require().NoError(err)
	s.ledger = ledger
	s.svc = services.NewServiceContainer(ledger)
}

func (s *LedgerSuite) register(name, nationalID, secret string) *domain.Account {
	acc, res := s.svc.Accounts.Register(s.ctx, name, nationalID, secret)
	s.Require().True(res.Success, res.Message)
	return acc
}

func (s *LedgerSuite) login(nationalID, secret string, admin bool) {
	_, res := s.svc.Session.Login(s.ctx, nationalID, secret, admin)
	s.Require().True(res.Success, res.Message)
}

func (s *LedgerSuite) loginAdmin() {
	s.login(domain.AdminNationalID, domain.AdminSecret, true)
}

func (s *LedgerSuite) balanceOf(id string) decimal.Decimal {
	acc, ok := s.svc.Accounts.FindByID(s.ctx, id)
	s.Require().True(ok)
	return acc.Balance
}

func (s *LedgerSuite) totalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.svc.Accounts.ListAccounts(s.ctx, true) {
		total = total.Add(a.Balance)
	}
	return total
}

func (s *LedgerSuite) allTransactions() int {
	n := 0
	for _, a := range s.svc.Accounts.ListAccounts(s.ctx, true) {
		n += len(s.svc.Query.TransactionsFor(s.ctx, a.ID))
	}
	return n
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
