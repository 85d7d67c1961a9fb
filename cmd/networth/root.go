package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riteshkumar/networth-tracker/internal/app"
	"github.com/riteshkumar/networth-tracker/internal/config"
	"github.com/riteshkumar/networth-tracker/internal/service"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// rootOptions are the persistent flags. Empty store flags fall back to the
// environment configuration shared with the server.
type rootOptions struct {
	backend    string
	dataFile   string
	sqlitePath string
	redisAddr  string
	logLevel   string
	format     string
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "networth",
		Short: "Track accounts, net worth and snapshots from the command line",
		Long: `networth manages the same state the HTTP server serves: accounts,
derived totals and point-in-time snapshots, persisted to the configured store.

Examples:
  networth accounts add --name "Chase Savings" --type asset --category "Cash & Savings" --value 5000
  networth summary
  networth snapshots take
  networth --backend sqlite --sqlite-path ./networth.db accounts list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(opts.format) {
			case formatTable, formatJSON:
				opts.format = strings.ToLower(opts.format)
				return nil
			default:
				return fmt.Errorf("unsupported output format %q (table|json)", opts.format)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.backend, "backend", "", "Store backend: file, postgres, sqlite, redis (default from STORE_BACKEND)")
	flags.StringVar(&opts.dataFile, "data-file", "", "State file for the file backend (default from DATA_FILE)")
	flags.StringVar(&opts.sqlitePath, "sqlite-path", "", "Database path for the sqlite backend (default from SQLITE_PATH)")
	flags.StringVar(&opts.redisAddr, "redis-addr", "", "Address for the redis backend (default from REDIS_ADDR)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")
	flags.StringVar(&opts.format, "output", formatTable, "Output format: table, json")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Timeout for connecting and flushing the store")

	cmd.AddCommand(
		newAccountsCmd(opts),
		newSnapshotsCmd(opts),
		newSummaryCmd(opts),
		newHistoryCmd(opts),
		newCategoriesCmd(opts),
	)
	return cmd
}

func (o *rootOptions) config() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if o.backend != "" {
		cfg.StoreBackend = o.backend
	}
	if o.dataFile != "" {
		cfg.DataFile = o.dataFile
	}
	if o.sqlitePath != "" {
		cfg.SQLitePath = o.sqlitePath
	}
	if o.redisAddr != "" {
		cfg.RedisAddr = o.redisAddr
	}
	cfg.LogLevel = o.logLevel
	return cfg, nil
}

// withApp opens the store, runs fn against the loaded state and waits for the
// saves fn triggered before returning.
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(svc service.NetWorthService) error) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	a, err := app.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}

	runErr := fn(a.Service)
	if err := a.Close(ctx); err != nil {
		logger.Error("failed to flush state", "error", err.Error())
		if runErr == nil {
			runErr = fmt.Errorf("failed to flush state: %w", err)
		}
	}
	return runErr
}
