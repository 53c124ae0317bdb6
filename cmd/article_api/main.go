// Package main Article Feed API
// @title Article Feed API
// @version 1.0
// @description A JSON:API collection of news articles with page-number pagination
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@article-feed.dev
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/article-feed/docs"
	"github.com/DjordjeVuckovic/article-feed/internal/api/router"
	"github.com/DjordjeVuckovic/article-feed/internal/api/server"
	"github.com/DjordjeVuckovic/article-feed/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

const storageInitTimeout = 30 * time.Second

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	initCtx, cancel := context.WithTimeout(context.Background(), storageInitTimeout)
	backend, err := factory.NewBackend(initCtx, cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err, "type", cfg.StorageConfig.Type)
		os.Exit(1)
	}
	defer backend.Close()

	s := server.New(sCfg, backend.HealthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Article Feed API is running")
	})

	articleRouter := router.NewArticleRouter(s.Echo, backend.Collection,
		router.WithCalculator(cfg.PaginationConfig.Calculator()),
		router.WithBaseURL(s.BaseURL()),
	)
	articleRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	slog.Info("Article API configured",
		"storage", cfg.StorageConfig.Type,
		"page_default_size", cfg.PaginationConfig.DefaultSize,
		"page_max_size", cfg.PaginationConfig.MaxSize)

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		backend.Close()
		os.Exit(1)
	}
}
