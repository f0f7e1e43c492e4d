package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// MinSecretLength is the shortest secret ChangeSecret accepts.
const MinSecretLength = 4

type accountService struct {
	BaseService
	ledger *Ledger
}

// NewAccountService creates the account registry over ledger.
func NewAccountService(ledger *Ledger) portssvc.AccountSvcFacade {
	return &accountService{ledger: ledger}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) Register(ctx context.Context, name, nationalID, secret string) (*domain.Account, domain.Result) {
	var created *domain.Account
	res := s.ledger.update(ctx, "register", func(tx *ledgerTx) (string, error) {
		if indexOfNationalID(tx.accounts, nationalID) >= 0 {
			return "", apperrors.Validation(apperrors.ErrDuplicateIdentity, "CNIC already registered")
		}
		acc := domain.Account{
			ID:         tx.newID(),
			Name:       name,
			NationalID: nationalID,
			Secret:     secret,
			Balance:    domain.OpeningBalance,
			Savings:    decimal.Zero,
			Role:       domain.RoleStandard,
			Active:     true,
		}
		tx.accounts = append(tx.accounts, acc)
		tx.dirty = true
		created = &acc
		return "Registration successful! Please login.", nil
	})
	if !res.Success {
		return nil, res
	}
	s.LogInfo(ctx, "Account registered", slog.String("account_id", created.ID))
	return created, res
}

func (s *accountService) FindByNationalID(ctx context.Context, nationalID string) (*domain.Account, bool) {
	return s.find(func(a domain.Account) bool { return a.NationalID == nationalID })
}

func (s *accountService) FindByID(ctx context.Context, accountID string) (*domain.Account, bool) {
	return s.find(func(a domain.Account) bool { return a.ID == accountID })
}

func (s *accountService) find(match func(domain.Account) bool) (*domain.Account, bool) {
	var found *domain.Account
	s.ledger.view(func(accounts []domain.Account, _ []domain.Transaction, _ *domain.Account) {
		for _, a := range accounts {
			if match(a) {
				found = &a
				return
			}
		}
	})
	return found, found != nil
}

func (s *accountService) ListAccounts(ctx context.Context, includeAdmins bool) []domain.Account {
	out := []domain.Account{}
	s.ledger.view(func(accounts []domain.Account, _ []domain.Transaction, _ *domain.Account) {
		for _, a := range accounts {
			if a.IsAdmin() && !includeAdmins {
				continue
			}
			out = append(out, a)
		}
	})
	return out
}

func (s *accountService) SetActive(ctx context.Context, accountID string, active bool) domain.Result {
	return s.ledger.update(ctx, "set_active", func(tx *ledgerTx) (string, error) {
		if _, err := tx.requireAdmin(); err != nil {
			return "", err
		}
		return setActive(tx, accountID, func(bool) bool { return active })
	})
}

func (s *accountService) ToggleActive(ctx context.Context, accountID string) domain.Result {
	return s.ledger.update(ctx, "toggle_active", func(tx *ledgerTx) (string, error) {
		if _, err := tx.requireAdmin(); err != nil {
			return "", err
		}
		return setActive(tx, accountID, func(current bool) bool { return !current })
	})
}

func setActive(tx *ledgerTx, accountID string, next func(bool) bool) (string, error) {
	idx := indexOfID(tx.accounts, accountID)
	if idx < 0 {
		return "", apperrors.NotFound("User not found")
	}
	tx.accounts[idx].Active = next(tx.accounts[idx].Active)
	tx.dirty = true
	tx.refreshMirror(accountID)
	if tx.accounts[idx].Active {
		return "User activated", nil
	}
	return "User deactivated", nil
}

func (s *accountService) ChangeSecret(ctx context.Context, current, next, confirm string) domain.Result {
	return s.ledger.update(ctx, "change_secret", func(tx *ledgerTx) (string, error) {
		acc, err := tx.principal()
		if err != nil {
			return "", err
		}
		if acc.Secret != current {
			return "", apperrors.Auth(apperrors.ErrInvalidCredentials, "Incorrect current password.")
		}
		if next != confirm {
			return "", apperrors.Validation(apperrors.ErrSecretMismatch, "New passwords do not match.")
		}
		if len(next) < MinSecretLength {
			return "", apperrors.Validation(apperrors.ErrWeakSecret, "Password must be at least 4 characters long.")
		}

		tx.accounts[indexOfID(tx.accounts, acc.ID)].Secret = next
		tx.dirty = true
		tx.refreshMirror(acc.ID)
		return "Password changed successfully!", nil
	})
}
