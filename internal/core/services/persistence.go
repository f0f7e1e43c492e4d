package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashit_ledger/internal/core/ports/repositories"
)

// Store keys for the ledger snapshot and the session blob.
const (
	SnapshotKey = "cashit_data"
	SessionKey  = "cashit_current_user"
)

// errCorruptBlob marks a blob that exists but cannot be decoded.
var errCorruptBlob = errors.New("corrupt blob")

// snapshotPort reads and writes whole-ledger snapshots and the session blob.
type snapshotPort struct {
	store portsrepo.KVStore
}

// loadSnapshot returns the persisted snapshot. An absent key yields apperrors.ErrNotFound,
// an unparseable blob yields errCorruptBlob.
func (p snapshotPort) loadSnapshot(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	raw, err := p.store.Get(ctx, SnapshotKey)
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return snap, fmt.Errorf("%w: %s: %v", errCorruptBlob, SnapshotKey, err)
	}
	if snap.Transactions == nil {
		snap.Transactions = []domain.Transaction{}
	}
	return snap, nil
}

func (p snapshotPort) saveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := p.store.Put(ctx, SnapshotKey, raw); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// loadSession returns the persisted session principal, or nil when none is stored.
func (p snapshotPort) loadSession(ctx context.Context) (*domain.Account, error) {
	raw, err := p.store.Get(ctx, SessionKey)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return nil, nil
	}
	var acc domain.Account
	if err := json.Unmarshal(raw, &acc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errCorruptBlob, SessionKey, err)
	}
	return &acc, nil
}

// saveSession writes the principal, or removes the blob when acc is nil.
func (p snapshotPort) saveSession(ctx context.Context, acc *domain.Account) error {
	if acc == nil {
		if err := p.store.Delete(ctx, SessionKey); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	}
	raw, err := json.Marshal(acc)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := p.store.Put(ctx, SessionKey, raw); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}
