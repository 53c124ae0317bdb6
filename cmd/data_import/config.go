package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/article-feed/internal/storage/factory"
	"github.com/DjordjeVuckovic/article-feed/pkg/config/env"
)

const defaultBulkSize = 5_000

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type DataImportConfig struct {
	DatasetPath string
	BulkSize    int
	factory.StorageConfig
}

func (as *AppConfig) Load() (*DataImportConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/data_import/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	dsPath := os.Getenv("DATASET_PATH")
	if dsPath == "" {
		slog.Error("DATASET_PATH environment variable is not set")
		return nil, fmt.Errorf("DATASET_PATH environment variable is not set")
	}

	bulkSize := defaultBulkSize
	if v := os.Getenv("BULK_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid BULK_SIZE value: %s", v)
		}
		bulkSize = n
	}

	return &DataImportConfig{
		DatasetPath:   dsPath,
		BulkSize:      bulkSize,
		StorageConfig: *storageCfg,
	}, nil
}
