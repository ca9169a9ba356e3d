package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/vietddude/productinfo/internal/core/config"
	"github.com/vietddude/productinfo/internal/infra/dataset"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the configured dataset backend from the embedded datasets",
	Run:   runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.Dataset.Backend {
	case config.BackendRedis:
		src, err := dataset.NewRedisSource(cfg.Dataset.Redis)
		if err != nil {
			slog.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer src.Close()

		if err := src.Seed(ctx); err != nil {
			slog.Error("Failed to seed redis", "error", err)
			os.Exit(1)
		}

	case config.BackendPostgres:
		src, err := dataset.NewPostgresSource(ctx, cfg.Dataset.Postgres)
		if err != nil {
			slog.Error("Failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer src.Close()

		if err := goose.SetDialect("postgres"); err != nil {
			slog.Error("Failed to set goose dialect", "error", err)
			os.Exit(1)
		}
		if err := goose.Up(src.DB(), "migrations"); err != nil {
			slog.Error("Failed to migrate db", "error", err)
			os.Exit(1)
		}
		if err := src.Seed(ctx); err != nil {
			slog.Error("Failed to seed postgres", "error", err)
			os.Exit(1)
		}

	default:
		slog.Error("Nothing to seed for backend", "backend", cfg.Dataset.Backend)
		os.Exit(1)
	}

	slog.Info("Datasets seeded", "backend", cfg.Dataset.Backend, "markets", dataset.Markets)
}
