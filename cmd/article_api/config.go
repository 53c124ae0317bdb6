package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/article-feed/internal/storage/factory"
	"github.com/DjordjeVuckovic/article-feed/pkg/config/env"
	"github.com/DjordjeVuckovic/article-feed/pkg/pagination"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ArticleAPIConfig struct {
	LogLevel         slog.Level
	StorageConfig    factory.StorageConfig
	PaginationConfig pagination.Config
}

func (as *AppConfig) Load() (*ArticleAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/article_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	var level slog.Level
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := level.UnmarshalText([]byte(lvl)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	pageCfg, err := loadPaginationConfig()
	if err != nil {
		return nil, err
	}

	return &ArticleAPIConfig{
		LogLevel:         level,
		StorageConfig:    *storageCfg,
		PaginationConfig: pageCfg,
	}, nil
}

func loadPaginationConfig() (pagination.Config, error) {
	cfg := pagination.DefaultConfig()

	if v := os.Getenv("PAGE_DEFAULT_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PAGE_DEFAULT_SIZE: %w", err)
		}
		cfg.DefaultSize = n
	}

	if v := os.Getenv("PAGE_MAX_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PAGE_MAX_SIZE: %w", err)
		}
		cfg.MaxSize = n
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
