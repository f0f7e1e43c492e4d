package services_test

import (
	"testing"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	LedgerSuite
}

func (s *AccountServiceTestSuite) TestRegister_CreatesStandardAccount() {
	acc, res := s.svc.Accounts.Register(s.ctx, "Alice", "35201-1111111-1", "1111")

	s.Require().True(res.Success)
	s.Equal("Registration successful! Please login.", res.Message)
	s.Require().NotNil(acc)
	s.Equal(domain.RoleStandard, acc.Role)
	s.True(acc.Active)
	s.True(acc.Balance.Equal(domain.OpeningBalance))
	s.True(acc.Savings.IsZero())

	found, ok := s.svc.Accounts.FindByNationalID(s.ctx, "35201-1111111-1")
	s.Require().True(ok)
	s.Equal(acc.ID, found.ID)
}

func (s *AccountServiceTestSuite) TestRegister_DuplicateNationalID() {
	s.register("Alice", "35201-1111111-1", "1111")

	acc, res := s.svc.Accounts.Register(s.ctx, "Mallory", "35201-1111111-1", "9999")

	s.Nil(acc)
	s.False(res.Success)
	s.Equal("CNIC already registered", res.Message)
	s.ErrorIs(res.Err, apperrors.ErrDuplicateIdentity)
	s.Len(s.svc.Accounts.ListAccounts(s.ctx, false), 1)
}

func (s *AccountServiceTestSuite) TestRegister_AdminNationalIDTaken() {
	_, res := s.svc.Accounts.Register(s.ctx, "Impostor", domain.AdminNationalID, "0000")
	s.ErrorIs(res.Err, apperrors.ErrDuplicateIdentity)
}

func (s *AccountServiceTestSuite) TestFind_AbsenceIsNotAnError() {
	_, ok := s.svc.Accounts.FindByID(s.ctx, "missing")
	s.False(ok)
	_, ok = s.svc.Accounts.FindByNationalID(s.ctx, "00000-0000000-9")
	s.False(ok)
}

func (s *AccountServiceTestSuite) TestListAccounts() {
	a := s.register("Alice", "35201-1111111-1", "1111")
	b := s.register("Bob", "35201-2222222-2", "2222")

	customers := s.svc.Accounts.ListAccounts(s.ctx, false)
	s.Require().Len(customers, 2)
	s.Equal(a.ID, customers[0].ID)
	s.Equal(b.ID, customers[1].ID)

	all := s.svc.Accounts.ListAccounts(s.ctx, true)
	s.Require().Len(all, 3)
	s.Equal(domain.AdminAccountID, all[0].ID)
}

func (s *AccountServiceTestSuite) TestSetActive() {
	a := s.register("Alice", "35201-1111111-1", "1111")
	s.loginAdmin()

	res := s.svc.Accounts.SetActive(s.ctx, a.ID, false)
	s.Require().True(res.Success)
	s.Equal("User deactivated", res.Message)

	res = s.svc.Accounts.SetActive(s.ctx, a.ID, true)
	s.Equal("User activated", res.Message)

	res = s.svc.Accounts.SetActive(s.ctx, "missing", true)
	s.False(res.Success)
	s.Equal("User not found", res.Message)
	s.ErrorIs(res.Err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestToggleActive_AdministratorCanBeDeactivated() {
	s.loginAdmin()

	res := s.svc.Accounts.ToggleActive(s.ctx, domain.AdminAccountID)
	s.Require().True(res.Success, res.Message)
	s.Equal("User deactivated", res.Message)

	current, ok := s.svc.Session.Current(s.ctx)
	s.Require().True(ok)
	s.False(current.Active)

	_, res = s.svc.Session.Login(s.ctx, domain.AdminNationalID, domain.AdminSecret, true)
	s.ErrorIs(res.Err, apperrors.ErrDeactivated)
}

func (s *AccountServiceTestSuite) TestSetActive_RequiresAdministrator() {
	a := s.register("Alice", "35201-1111111-1", "1111")
	b := s.register("Bob", "35201-2222222-2", "2222")

	res := s.svc.Accounts.SetActive(s.ctx, b.ID, false)
	s.ErrorIs(res.Err, apperrors.ErrNoSession)

	s.login(a.NationalID, "1111", false)
	res = s.svc.Accounts.SetActive(s.ctx, b.ID, false)
	s.False(res.Success)
	s.Equal("Access Denied: Not an admin account", res.Message)
	s.ErrorIs(res.Err, apperrors.ErrRoleMismatch)

	found, _ := s.svc.Accounts.FindByID(s.ctx, b.ID)
	s.True(found.Active)
}

func (s *AccountServiceTestSuite) TestToggleActive_RequiresSession() {
	a := s.register("Alice", "35201-1111111-1", "1111")

	res := s.svc.Accounts.ToggleActive(s.ctx, a.ID)

	s.ErrorIs(res.Err, apperrors.ErrNoSession)
	found, _ := s.svc.Accounts.FindByID(s.ctx, a.ID)
	s.True(found.Active)
}

func (s *AccountServiceTestSuite) TestChangeSecret() {
	a := s.register("Alice", "35201-1111111-1", "1111")
	s.login(a.NationalID, "1111", false)

	cases := []struct {
		name        string
		current     string
		next        string
		confirm     string
		wantReason  error
		wantMessage string
	}{
		{"wrong current", "0000", "5555", "5555", apperrors.ErrInvalidCredentials, "Incorrect current password."},
		{"mismatch", "1111", "5555", "5556", apperrors.ErrSecretMismatch, "New passwords do not match."},
		{"too short", "1111", "555", "555", apperrors.ErrWeakSecret, "Password must be at least 4 characters long."},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			res := s.svc.Accounts.ChangeSecret(s.ctx, tc.current, tc.next, tc.confirm)
			s.False(res.Success)
			s.Equal(tc.wantMessage, res.Message)
			s.ErrorIs(res.Err, tc.wantReason)
		})
	}

	res := s.svc.Accounts.ChangeSecret(s.ctx, "1111", "5555", "5555")
	s.Require().True(res.Success, res.Message)
	s.Equal("Password changed successfully!", res.Message)

	current, ok := s.svc.Session.Current(s.ctx)
	s.Require().True(ok)
	s.Equal("5555", current.Secret)

	s.Require().True(s.svc.Session.Logout(s.ctx).Success)
	_, res = s.svc.Session.Login(s.ctx, a.NationalID, "1111", false)
	s.ErrorIs(res.Err, apperrors.ErrInvalidCredentials)
	s.login(a.NationalID, "5555", false)
}

func (s *AccountServiceTestSuite) TestChangeSecret_RequiresSession() {
	res := s.svc.Accounts.ChangeSecret(s.ctx, "1234", "5555", "5555")
	s.ErrorIs(res.Err, apperrors.ErrNoSession)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
