package domain

import (
	"github.com/shopspring/decimal"
)

// Role separates customers from the bank administrator.
type Role string

const (
	RoleStandard      Role = "standard"
	RoleAdministrator Role = "administrator"
)

// Bootstrap administrator, seeded once when the store holds no accounts.
const (
	AdminAccountID  = "admin-1"
	AdminName       = "Bank Administrator"
	AdminNationalID = "00000-0000000-0"
	AdminSecret     = "1234"
)

// OpeningBalance is credited to every newly registered account.
var OpeningBalance = decimal.NewFromInt(500)

// Account is a ledger participant. Only the registry owns Account records;
// sessions hold a copy.
type Account struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	NationalID string          `json:"nationalId"` // unique, used as login key
	Secret     string          `json:"secret"`     // compared verbatim
	Balance    decimal.Decimal `json:"balance"`
	Savings    decimal.Decimal `json:"savings"`
	Role       Role            `json:"role"`
	Active     bool            `json:"active"`
}

// IsAdmin reports whether the account may use the admin portal.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdministrator
}

// NewBootstrapAdmin returns the seeded administrator account.
func NewBootstrapAdmin(secret string) Account {
	if secret == "" {
		secret = AdminSecret
	}
	return Account{
		ID:         AdminAccountID,
		Name:       AdminName,
		NationalID: AdminNationalID,
		Secret:     secret,
		Balance:    decimal.Zero,
		Savings:    decimal.Zero,
		Role:       RoleAdministrator,
		Active:     true,
	}
}
