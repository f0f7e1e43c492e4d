package services

import (
	"context"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
)

type sessionService struct {
	BaseService
	ledger *Ledger
}

// NewSessionService creates the session manager over ledger.
func NewSessionService(ledger *Ledger) portssvc.SessionSvc {
	return &sessionService{ledger: ledger}
}

var _ portssvc.SessionSvc = (*sessionService)(nil)

func (s *sessionService) Login(ctx context.Context, nationalID, secret string, wantAdminPortal bool) (*domain.Account, domain.Result) {
	var principal *domain.Account
	res := s.ledger.update(ctx, "login", func(tx *ledgerTx) (string, error) {
		idx := indexOfNationalID(tx.accounts, nationalID)
		if idx < 0 || tx.accounts[idx].Secret != secret {
			return "", apperrors.Auth(apperrors.ErrInvalidCredentials, "Invalid credentials")
		}
		acc := tx.accounts[idx]
		if !acc.Active {
			return "", apperrors.Auth(apperrors.ErrDeactivated, "Account is deactivated")
		}
		if wantAdminPortal && !acc.IsAdmin() {
			return "", apperrors.Auth(apperrors.ErrRoleMismatch, "Access Denied: Not an admin account")
		}
		if !wantAdminPortal && acc.IsAdmin() {
			return "", apperrors.Auth(apperrors.ErrRoleMismatch, "Please use the Admin Portal")
		}

		tx.setSession(&acc)
		principal = &acc
		return "Login successful", nil
	})
	if !res.Success {
		return nil, res
	}
	return principal, res
}

func (s *sessionService) Logout(ctx context.Context) domain.Result {
	return s.ledger.update(ctx, "logout", func(tx *ledgerTx) (string, error) {
		tx.setSession(nil)
		return "Logged out", nil
	})
}

func (s *sessionService) Current(ctx context.Context) (*domain.Account, bool) {
	var current *domain.Account
	s.ledger.view(func(_ []domain.Account, _ []domain.Transaction, session *domain.Account) {
		if session != nil {
			acc := *session
			current = &acc
		}
	})
	return current, current != nil
}
