package cli

import (
	"fmt"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/SscSPs/cashit_ledger/internal/dto"
	"github.com/SscSPs/cashit_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newRegisterCmd(a *app) *cobra.Command {
	var name, nationalID, pin string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Open a new customer account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := a.readSecret(pin, "PIN")
			if err != nil {
				return err
			}
			confirm := secret
			if pin == "" {
				if confirm, err = a.readSecret("", "Confirm PIN"); err != nil {
					return err
				}
			}

			req := dto.RegisterRequest{Name: name, NationalID: nationalID, Secret: secret, ConfirmSecret: confirm}
			if err := validate(req); err != nil {
				return err
			}

			acc, res := a.svc.Accounts.Register(a.ctx, req.Name, req.NationalID, req.Secret)
			if err := a.report(res); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Account %s opened with %s\n", acc.ID, utils.FormatAmount(acc.Balance))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&nationalID, "cnic", "", "National identity number (xxxxx-xxxxxxx-x)")
	cmd.Flags().StringVar(&pin, "pin", "", "PIN (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("cnic")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var nationalID, pin string
	var admin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session, replacing any current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := a.readSecret(pin, "PIN")
			if err != nil {
				return err
			}
			acc, res := a.svc.Session.Login(a.ctx, nationalID, secret, admin)
			if err := a.report(res); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Welcome, %s\n", acc.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&nationalID, "cnic", "", "National identity number")
	cmd.Flags().StringVar(&pin, "pin", "", "PIN (prompted when omitted)")
	cmd.Flags().BoolVar(&admin, "admin", false, "Log in through the admin portal")
	_ = cmd.MarkFlagRequired("cnic")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(a.svc.Session.Logout(a.ctx))
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the session principal and this month's spending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			principal, err := a.principal()
			if err != nil {
				return err
			}
			dash, ok := a.svc.Query.Dashboard(a.ctx, principal.ID, a.now())
			if !ok {
				return apperrors.NoSession()
			}
			if a.output == "json" {
				return a.printJSON(dto.ToDashboardResponse(*dash))
			}

			acc := dash.Account
			fmt.Fprintf(a.stdout, "Name:     %s\n", acc.Name)
			fmt.Fprintf(a.stdout, "CNIC:     %s\n", acc.NationalID)
			fmt.Fprintf(a.stdout, "Role:     %s\n", acc.Role)
			fmt.Fprintf(a.stdout, "Status:   %s\n", status(acc))
			fmt.Fprintf(a.stdout, "Balance:  %s\n", utils.FormatAmount(acc.Balance))
			fmt.Fprintf(a.stdout, "Savings:  %s\n", utils.FormatAmount(acc.Savings))
			fmt.Fprintf(a.stdout, "Spent this month: %s\n", utils.FormatAmount(dash.MonthlySpending))
			return nil
		},
	}
}

func newChangePINCmd(a *app) *cobra.Command {
	var current, next, confirm string

	cmd := &cobra.Command{
		Use:   "change-pin",
		Short: "Change the session principal's PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if current, err = a.readSecret(current, "Current PIN"); err != nil {
				return err
			}
			if next, err = a.readSecret(next, "New PIN"); err != nil {
				return err
			}
			if confirm == "" && cmd.Flags().Changed("new") {
				confirm = next
			}
			if confirm, err = a.readSecret(confirm, "Confirm new PIN"); err != nil {
				return err
			}
			return a.report(a.svc.Accounts.ChangeSecret(a.ctx, current, next, confirm))
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current PIN (prompted when omitted)")
	cmd.Flags().StringVar(&next, "new", "", "New PIN (prompted when omitted)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "New PIN again (defaults to --new)")
	return cmd
}

// principal returns the session principal or the no-session error.
func (a *app) principal() (*domain.Account, error) {
	acc, ok := a.svc.Session.Current(a.ctx)
	if !ok {
		return nil, apperrors.NoSession()
	}
	return acc, nil
}

// validate runs the request DTO through the same tags the HTTP binding uses.
func validate(req any) error {
	v, err := dto.NewValidator()
	if err != nil {
		return err
	}
	if err := v.Struct(req); err != nil {
		return apperrors.New(apperrors.ErrValidation, nil, dto.ValidationMessage(err))
	}
	return nil
}
