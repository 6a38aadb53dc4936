package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	httpadapter "creative-factory/internal/adapter/http"
	"creative-factory/internal/adapter/llm"
	"creative-factory/internal/adapter/postgres"
	"creative-factory/internal/adapter/trends"
	"creative-factory/internal/adapter/usecase"
	"creative-factory/internal/db"
	"creative-factory/internal/metrics"
)

func newCatalog(pool *pgxpool.Pool, logger *slog.Logger) *usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(postgres.NewOptionRepository(pool), logger)
}

// runServe wires the adapters, optionally migrates and seeds the database,
// then serves until the command context is cancelled.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if cfg.Psql.RunMigrations {
		if _, err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return err
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	catalog := newCatalog(pool, logger)
	if cfg.Psql.Bootstrap {
		if _, err = catalog.Bootstrap(ctx); err != nil {
			logger.Error("bootstrap error", slog.Any("error", err))
			return err
		}
	}

	m := metrics.New()
	client := llm.New(cfg.LLM, logger, m)
	if !client.Available() {
		logger.Warn("OPENAI_API_KEY is not set, generation falls back to local templates")
	}
	source, err := trends.NewGoogle(cfg.Trends, logger)
	if err != nil {
		return err
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Generator: usecase.NewGeneratorUseCase(
			postgres.NewOptionRepository(pool),
			postgres.NewCreativeRepository(pool),
			client, cfg.Generator, logger, m,
		),
		Catalog: catalog,
		Trends:  usecase.NewTrendsUseCase(source, client, cfg.Trends, logger, m),
		ABTests: usecase.NewABTestUseCase(postgres.NewABTestRepository(pool), logger),
		Models:  client,
	}, httpadapter.Limits{
		DefaultCount:    cfg.Generator.DefaultCount,
		GenerateTimeout: cfg.HTTP.EffectiveGenerateTimeout(),
	}, logger, m)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
