package cli

import (
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// amountFlag registers the --amount flag every debit command takes.
func amountFlag(cmd *cobra.Command, raw *string) {
	cmd.Flags().StringVar(raw, "amount", "", "Amount in PKR, at most two decimals")
	_ = cmd.MarkFlagRequired("amount")
}

func requireFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}

// paymentCmd builds a debit command from its flags and the operation to run.
func paymentCmd(a *app, use, short string, fields []string, usage map[string]string, pay func(amount decimal.Decimal, values map[string]string) domain.Result) *cobra.Command {
	var rawAmount string
	values := make(map[string]*string, len(fields))

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := domain.ParseAmount(rawAmount)
			if err != nil {
				return err
			}
			resolved := make(map[string]string, len(values))
			for name, v := range values {
				resolved[name] = *v
			}
			return a.report(pay(amount, resolved))
		},
	}

	amountFlag(cmd, &rawAmount)
	for _, name := range fields {
		values[name] = cmd.Flags().String(name, "", usage[name])
	}
	requireFlags(cmd, fields...)
	return cmd
}

func newTransferCmd(a *app) *cobra.Command {
	return paymentCmd(a, "transfer", "Send money to another account",
		[]string{"to"},
		map[string]string{"to": "Recipient national identity number"},
		func(amount decimal.Decimal, v map[string]string) domain.Result {
			return a.svc.Operations.Transfer(a.ctx, amount, v["to"])
		})
}

func newPayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay a bill, tax, challan or fee",
	}

	cmd.AddCommand(
		paymentCmd(a, "bill", "Pay a utility bill",
			[]string{"type", "consumer-id"},
			map[string]string{"type": "Bill type, e.g. Electricity", "consumer-id": "Consumer ID on the bill"},
			func(amount decimal.Decimal, v map[string]string) domain.Result {
				return a.svc.Operations.PayBill(a.ctx, amount, v["type"], v["consumer-id"])
			}),
		paymentCmd(a, "tax", "Pay a tax",
			[]string{"tax-id"},
			map[string]string{"tax-id": "Tax PSID"},
			func(amount decimal.Decimal, v map[string]string) domain.Result {
				return a.svc.Operations.PayTax(a.ctx, amount, v["tax-id"])
			}),
		paymentCmd(a, "challan", "Pay a challan",
			[]string{"challan-number", "psid"},
			map[string]string{"challan-number": "Challan number", "psid": "Payment slip ID"},
			func(amount decimal.Decimal, v map[string]string) domain.Result {
				return a.svc.Operations.PayChallan(a.ctx, amount, v["challan-number"], v["psid"])
			}),
		paymentCmd(a, "fee", "Pay an institute fee",
			[]string{"institute", "roll-no", "psid"},
			map[string]string{"institute": "Institute name", "roll-no": "Student roll number", "psid": "Payment slip ID"},
			func(amount decimal.Decimal, v map[string]string) domain.Result {
				return a.svc.Operations.PayFee(a.ctx, amount, v["institute"], v["roll-no"], v["psid"])
			}),
	)
	return cmd
}

func newTransactionsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List the session principal's transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			principal, err := a.principal()
			if err != nil {
				return err
			}
			if limit > 0 {
				return a.printTransactions(a.svc.Query.RecentTransactions(a.ctx, principal.ID, limit))
			}
			return a.printTransactions(a.svc.Query.TransactionsFor(a.ctx, principal.ID))
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the newest N entries")
	return cmd
}
