package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashit_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger owns the in-memory ledger state: the account registry, the transaction
// log and the session slot. All mutations go through update, which persists the
// whole snapshot once and swaps the new state in only after the write succeeded.
type Ledger struct {
	BaseService
	port snapshotPort

	mu           sync.Mutex
	accounts     []domain.Account
	transactions []domain.Transaction
	session      *domain.Account
	seq          int64

	now         func() time.Time
	newID       func() string
	adminSecret string
}

// LedgerOption is a functional option for configuring the ledger
type LedgerOption func(*Ledger)

// WithClock replaces the time source used for transaction timestamps.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithIDGenerator replaces the generator for account and transaction ids.
func WithIDGenerator(newID func() string) LedgerOption {
	return func(l *Ledger) {
		l.newID = newID
	}
}

// WithAdminSecret sets the secret of the bootstrap administrator.
// It only applies when the administrator is seeded.
func WithAdminSecret(secret string) LedgerOption {
	return func(l *Ledger) {
		if secret != "" {
			l.adminSecret = secret
		}
	}
}

// OpenLedger loads the ledger from store, seeding and persisting a fresh state
// when the store holds nothing usable.
func OpenLedger(ctx context.Context, store portsrepo.KVStore, options ...LedgerOption) (*Ledger, error) {
	l := &Ledger{
		port:        snapshotPort{store: store},
		now:         time.Now,
		newID:       uuid.NewString,
		adminSecret: domain.AdminSecret,
	}
	for _, option := range options {
		option(l)
	}

	if err := l.load(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Ledger) load(ctx context.Context) error {
	snap, err := l.port.loadSnapshot(ctx)
	heal := false
	switch {
	case err == nil:
		if len(snap.Accounts) == 0 {
			l.LogWarn(ctx, "Snapshot has no accounts, seeding administrator")
			snap.Accounts = []domain.Account{domain.NewBootstrapAdmin(l.adminSecret)}
			heal = true
		}
	case errors.Is(err, apperrors.ErrNotFound):
		l.LogInfo(ctx, "No snapshot found, initialising ledger")
		snap = domain.FreshSnapshot(l.adminSecret)
		heal = true
	case errors.Is(err, errCorruptBlob):
		l.LogWarn(ctx, "Discarding unreadable snapshot", slog.String("error", err.Error()))
		snap = domain.FreshSnapshot(l.adminSecret)
		heal = true
	default:
		l.LogError(ctx, err, "Failed to read snapshot")
		return fmt.Errorf("failed to load ledger: %w", apperrors.Storage(err))
	}

	if heal {
		if err := l.port.saveSnapshot(ctx, snap); err != nil {
			l.LogError(ctx, err, "Failed to persist initial snapshot")
			return fmt.Errorf("failed to load ledger: %w", apperrors.Storage(err))
		}
	}

	l.accounts = snap.Accounts
	l.transactions = snap.Transactions
	l.seq = 0
	for _, t := range l.transactions {
		l.seq = max(l.seq, t.Sequence)
	}

	return l.loadSession(ctx)
}

// loadSession rehydrates the session mirror from the registry copy of the stored principal.
func (l *Ledger) loadSession(ctx context.Context) error {
	stored, err := l.port.loadSession(ctx)
	if err != nil && !errors.Is(err, errCorruptBlob) {
		l.LogError(ctx, err, "Failed to read session")
		return fmt.Errorf("failed to load session: %w", apperrors.Storage(err))
	}

	l.session = nil
	if stored != nil {
		if idx := indexOfID(l.accounts, stored.ID); idx >= 0 {
			acc := l.accounts[idx]
			l.session = &acc
			return nil
		}
	}
	if err == nil && stored == nil {
		return nil
	}

	l.LogWarn(ctx, "Clearing stale session", slog.Any("cause", err))
	if err := l.port.saveSession(ctx, nil); err != nil {
		l.LogWarn(ctx, "Failed to clear stale session", slog.String("error", err.Error()))
	}
	return nil
}

// update runs fn against a working copy of the ledger and commits it as one unit.
func (l *Ledger) update(ctx context.Context, op string, fn func(tx *ledgerTx) (string, error)) domain.Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := l.begin()
	msg, err := fn(tx)
	if err != nil {
		l.LogDebug(ctx, "Ledger operation rejected", slog.String("operation", op), slog.String("reason", err.Error()))
		return failed(err)
	}

	if err := l.commit(ctx, tx); err != nil {
		l.LogError(ctx, err, "Failed to persist ledger operation", slog.String("operation", op))
		return failed(err)
	}

	l.LogInfo(ctx, "Ledger operation committed", slog.String("operation", op))
	return domain.Ok(msg)
}

// view runs fn with the committed state under the lock. fn must not retain the slices.
func (l *Ledger) view(fn func(accounts []domain.Account, transactions []domain.Transaction, session *domain.Account)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.accounts, l.transactions, l.session)
}

func (l *Ledger) begin() *ledgerTx {
	tx := &ledgerTx{
		accounts: slices.Clone(l.accounts),
		// Clipped so appends never write into the committed backing array.
		transactions: slices.Clip(l.transactions),
		seq:          l.seq,
		now:          l.now(),
		newID:        l.newID,
	}
	if l.session != nil {
		s := *l.session
		tx.session = &s
	}
	return tx
}

func (l *Ledger) commit(ctx context.Context, tx *ledgerTx) error {
	if tx.dirty {
		snap := domain.Snapshot{Accounts: tx.accounts, Transactions: tx.transactions}
		if err := l.port.saveSnapshot(ctx, snap); err != nil {
			return apperrors.Storage(err)
		}
	}
	if tx.sessionDirty {
		if err := l.port.saveSession(ctx, tx.session); err != nil {
			if !tx.dirty {
				return apperrors.Storage(err)
			}
			// The snapshot is authoritative; the mirror is rehydrated on the next load.
			l.LogWarn(ctx, "Failed to persist session mirror", slog.String("error", err.Error()))
		}
	}

	l.accounts = tx.accounts
	l.transactions = tx.transactions
	l.session = tx.session
	l.seq = tx.seq
	return nil
}

func failed(err error) domain.Result {
	return domain.Result{Success: false, Message: apperrors.MessageOf(err), Err: err}
}

// ledgerTx is the working copy of one update unit.
type ledgerTx struct {
	accounts     []domain.Account
	transactions []domain.Transaction
	session      *domain.Account
	seq          int64
	now          time.Time
	newID        func() string

	dirty        bool
	sessionDirty bool
}

func indexOfID(accounts []domain.Account, id string) int {
	return slices.IndexFunc(accounts, func(a domain.Account) bool { return a.ID == id })
}

func indexOfNationalID(accounts []domain.Account, nationalID string) int {
	return slices.IndexFunc(accounts, func(a domain.Account) bool { return a.NationalID == nationalID })
}

// principal returns the registry record of the session principal.
func (tx *ledgerTx) principal() (domain.Account, error) {
	if tx.session == nil {
		return domain.Account{}, apperrors.NoSession()
	}
	idx := indexOfID(tx.accounts, tx.session.ID)
	if idx < 0 {
		return domain.Account{}, apperrors.NoSession()
	}
	return tx.accounts[idx], nil
}

// requireAdmin returns the session principal if it is an administrator.
func (tx *ledgerTx) requireAdmin() (domain.Account, error) {
	acc, err := tx.principal()
	if err != nil {
		return acc, err
	}
	if !acc.IsAdmin() {
		return acc, apperrors.Auth(apperrors.ErrRoleMismatch, "Access Denied: Not an admin account")
	}
	return acc, nil
}

// account looks up an account by id with the given not-found message.
func (tx *ledgerTx) account(id, notFound string) (domain.Account, error) {
	idx := indexOfID(tx.accounts, id)
	if idx < 0 {
		return domain.Account{}, apperrors.NotFound(notFound)
	}
	return tx.accounts[idx], nil
}

// updateBalance is the only place a balance changes.
func (tx *ledgerTx) updateBalance(accountID string, delta decimal.Decimal) error {
	idx := indexOfID(tx.accounts, accountID)
	if idx < 0 {
		return apperrors.NotFound("User not found")
	}
	next := tx.accounts[idx].Balance.Add(delta)
	if next.IsNegative() {
		return apperrors.Insufficient("Insufficient funds")
	}
	tx.accounts[idx].Balance = next
	tx.dirty = true
	tx.refreshMirror(accountID)
	return nil
}

// record appends one ledger entry.
func (tx *ledgerTx) record(accountID string, kind domain.TransactionKind, amount decimal.Decimal, description string, isDebit bool) {
	tx.seq++
	tx.transactions = append(tx.transactions, domain.Transaction{
		ID:          tx.newID(),
		AccountID:   accountID,
		Timestamp:   tx.now,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		IsDebit:     isDebit,
		Sequence:    tx.seq,
	})
	tx.dirty = true
}

// refreshMirror copies the registry record into the session when it mirrors accountID.
func (tx *ledgerTx) refreshMirror(accountID string) {
	if tx.session == nil || tx.session.ID != accountID {
		return
	}
	if idx := indexOfID(tx.accounts, accountID); idx >= 0 {
		acc := tx.accounts[idx]
		tx.session = &acc
		tx.sessionDirty = true
	}
}

func (tx *ledgerTx) setSession(acc *domain.Account) {
	if acc != nil {
		s := *acc
		acc = &s
	}
	tx.session = acc
	tx.sessionDirty = true
}
