package services

import (
	"context"

	"github.com/SscSPs/cashit_ledger/internal/core/domain"
)

// SessionSvc defines the single-slot session manager.
type SessionSvc interface {
	// Login authenticates a principal at the customer or admin portal and makes it current.
	Login(ctx context.Context, nationalID, secret string, wantAdminPortal bool) (*domain.Account, domain.Result)

	// Logout clears the current session unconditionally.
	Logout(ctx context.Context) domain.Result

	// Current returns a copy of the session principal, if any.
	Current(ctx context.Context) (*domain.Account, bool)
}
