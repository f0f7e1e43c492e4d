package cli

import (
	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator console",
	}
	cmd.AddCommand(
		newAdminAccountsCmd(a),
		newAdminToggleCmd(a),
		newAdminAmountCmd(a, "add-funds", "Credit an account", func(accountID string, amount decimal.Decimal) domain.Result {
			return a.svc.Operations.AdminAddFunds(a.ctx, accountID, amount)
		}),
		newAdminAmountCmd(a, "deduct-tax", "Debit tax from an account", func(accountID string, amount decimal.Decimal) domain.Result {
			return a.svc.Operations.AdminDeductTax(a.ctx, accountID, amount)
		}),
		newAdminTransactionsCmd(a),
	)
	return cmd
}

// requireAdmin mirrors the admin portal check for read-only console commands.
func (a *app) requireAdmin() error {
	principal, err := a.principal()
	if err != nil {
		return err
	}
	if !principal.IsAdmin() {
		return apperrors.Auth(apperrors.ErrRoleMismatch, "Access Denied: Not an admin account")
	}
	return nil
}

func newAdminAccountsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List customer accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			return a.printAccounts(a.svc.Accounts.ListAccounts(a.ctx, false))
		},
	}
}

func newAdminToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <account-id>",
		Short: "Activate or deactivate an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.report(a.svc.Accounts.ToggleActive(a.ctx, args[0]))
		},
	}
}

func newAdminAmountCmd(a *app, use, short string, op func(accountID string, amount decimal.Decimal) domain.Result) *cobra.Command {
	var rawAmount string

	cmd := &cobra.Command{
		Use:   use + " <account-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseAmount(rawAmount)
			if err != nil {
				return err
			}
			return a.report(op(args[0], amount))
		},
	}
	amountFlag(cmd, &rawAmount)
	return cmd
}

func newAdminTransactionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions <account-id>",
		Short: "List an account's transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			if _, ok := a.svc.Accounts.FindByID(a.ctx, args[0]); !ok {
				return apperrors.NotFound("User not found")
			}
			return a.printTransactions(a.svc.Query.TransactionsFor(a.ctx, args[0]))
		},
	}
}
