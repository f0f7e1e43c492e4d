package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/cashit_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashit_ledger/internal/core/services"
	"github.com/SscSPs/cashit_ledger/internal/middleware"
	"github.com/SscSPs/cashit_ledger/internal/platform/config"
	"github.com/SscSPs/cashit_ledger/internal/platform/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every command needs once the root pre-run has opened the ledger.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	v       *viper.Viper
	verbose bool
	output  string

	ctx   context.Context
	store portsrepo.KVStore
	svc   *portssvc.ServiceContainer

	lines *bufio.Reader
	now   func() time.Time
}

// Execute runs the CLI.
func Execute() int {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, v: viper.New(), now: time.Now}
	defer a.close()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cashitctl",
		Short:         "CashIt ledger operator CLI",
		Long:          "Command-line access to the CashIt ledger. The session persists in the store between invocations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutputFormat(a.output); err != nil {
				return err
			}
			return a.open(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("store-driver", "", "Ledger store: memory, file, sqlite or postgres (env STORE_DRIVER)")
	flags.String("store-path", "", "Directory (file) or database file (sqlite) (env STORE_PATH)")
	flags.String("pgsql-url", "", "PostgreSQL URL for the postgres driver (env PGSQL_URL)")
	flags.StringVarP(&a.output, "output", "o", "table", "Output format (table, json)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log ledger operations to stderr")

	config.SetDefaults(a.v)
	a.v.AutomaticEnv()
	_ = a.v.BindPFlag("STORE_DRIVER", flags.Lookup("store-driver"))
	_ = a.v.BindPFlag("STORE_PATH", flags.Lookup("store-path"))
	_ = a.v.BindPFlag("PGSQL_URL", flags.Lookup("pgsql-url"))

	rootCmd.AddCommand(
		newRegisterCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newChangePINCmd(a),
		newTransferCmd(a),
		newPayCmd(a),
		newTransactionsCmd(a),
		newAdminCmd(a),
	)
	return rootCmd
}

// open loads the configuration, opens the store and loads the ledger.
func (a *app) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.ctx = middleware.WithLogger(ctx, logger)

	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.Open(a.ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open ledger store: %w", err)
	}
	a.store = store

	ledger, err := services.OpenLedger(a.ctx, store, services.WithAdminSecret(cfg.AdminSecret))
	if err != nil {
		return err
	}
	a.svc = services.NewServiceContainer(ledger)
	return nil
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		fmt.Fprintf(a.stderr, "Warning: failed to close store: %v\n", err)
	}
	a.store = nil
}

func validateOutputFormat(output string) error {
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
	}
	return nil
}

var errNoInput = errors.New("no input")
