package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/article-feed/internal/seed"
	"github.com/DjordjeVuckovic/article-feed/internal/storage/factory"
)

func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		slog.Error("data import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *DataImportConfig) error {
	articles, err := seed.LoadFile(cfg.DatasetPath)
	if err != nil {
		return err
	}

	backend, err := factory.NewBackend(ctx, cfg.StorageConfig)
	if err != nil {
		return err
	}
	defer backend.Close()

	imported, err := importArticles(ctx, backend.Storer, articles, cfg.BulkSize)
	if err != nil {
		slog.Error("Import interrupted", "imported", imported, "total", len(articles))
		return err
	}

	slog.Info("Import finished", "imported", imported, "storageType", cfg.StorageConfig.Type)
	return nil
}
