package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/SscSPs/cashit_ledger/internal/dto"
	"github.com/SscSPs/cashit_ledger/internal/utils"
	"golang.org/x/term"
)

// report prints a successful result's message or returns its error.
func (a *app) report(res domain.Result) error {
	if !res.Success {
		if res.Err != nil {
			return res.Err
		}
		return errors.New(res.Message)
	}
	fmt.Fprintln(a.stdout, res.Message)
	return nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printAccounts(accounts []domain.Account) error {
	if a.output == "json" {
		return a.printJSON(dto.ToAccountResponses(accounts))
	}
	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCNIC\tBALANCE\tSTATUS")
	for _, acc := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", acc.ID, acc.Name, acc.NationalID, utils.FormatAmount(acc.Balance), status(acc))
	}
	return w.Flush()
}

func (a *app) printTransactions(txs []domain.Transaction) error {
	if a.output == "json" {
		return a.printJSON(dto.ToTransactionResponses(txs))
	}
	if len(txs) == 0 {
		fmt.Fprintln(a.stdout, "No transactions yet")
		return nil
	}
	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tKIND\tDESCRIPTION\tAMOUNT")
	for _, t := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Timestamp.Local().Format("2006-01-02 15:04"), t.Kind, t.Description, utils.FormatSigned(t.Amount, t.IsDebit))
	}
	return w.Flush()
}

func status(acc domain.Account) string {
	if acc.Active {
		return "active"
	}
	return "inactive"
}

// readSecret returns flagValue when set, otherwise prompts on stderr.
// Terminal input is read without echo.
func (a *app) readSecret(flagValue, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(a.stderr, prompt+": ")

	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(prompt), err)
		}
		return string(secret), nil
	}

	// Piped input: one secret per line.
	if a.lines == nil {
		a.lines = bufio.NewReader(a.stdin)
	}
	line, err := a.lines.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(prompt), errNoInput)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
