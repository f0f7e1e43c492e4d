package services

import (
	"context"

	"github.com/SscSPs/cashit_ledger/internal/core/domain"
)

// AccountReaderSvc defines lookups on the account registry. Absence is not an error.
type AccountReaderSvc interface {
	FindByNationalID(ctx context.Context, nationalID string) (*domain.Account, bool)
	FindByID(ctx context.Context, accountID string) (*domain.Account, bool)

	// ListAccounts returns accounts in registration order.
	ListAccounts(ctx context.Context, includeAdmins bool) []domain.Account
}

// AccountWriterSvc defines registry mutations.
type AccountWriterSvc interface {
	// Register creates a standard account with the opening balance.
	Register(ctx context.Context, name, nationalID, secret string) (*domain.Account, domain.Result)

	// SetActive sets the active flag; the session principal must be an administrator.
	SetActive(ctx context.Context, accountID string, active bool) domain.Result

	// ToggleActive flips the active flag; the session principal must be an administrator.
	ToggleActive(ctx context.Context, accountID string) domain.Result

	// ChangeSecret replaces the session principal's secret.
	ChangeSecret(ctx context.Context, current, next, confirm string) domain.Result
}

// AccountSvcFacade combines all account registry interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
