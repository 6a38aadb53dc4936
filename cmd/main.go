package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"creative-factory/internal/config"
	"creative-factory/internal/db"
)

// main is the entry point of creative-factory. Without a subcommand it
// serves the HTTP API.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "creative-factory",
		Short:         "Ad creative generation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the HTTP API",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "bootstrap",
			Short: "Install the default dimension catalog",
			RunE:  runBootstrap,
		},
	)
	return root
}

// setup loads configuration and builds the logger.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return cfg, nil, err
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
	return cfg, logger, nil
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	version, err := db.Migrate(cfg.Psql.Addr.String())
	if err != nil {
		logger.Error("migration error", slog.Any("error", err))
		return err
	}
	logger.Info("migrations applied successfully", slog.Uint64("version", uint64(version)))
	return nil
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	created, err := newCatalog(pool, logger).Bootstrap(cmd.Context())
	if err != nil {
		logger.Error("bootstrap error", slog.Any("error", err))
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %d dimensions\n", created)
	return nil
}
