package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/article-feed/internal/apperr"
	mw "github.com/DjordjeVuckovic/article-feed/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/article-feed/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg           *Config
	healthChecker pkgserver.HealthChecker
	healthPath    string

	ctx      context.Context
	cancel   context.CancelFunc
	shutdown chan struct{}
}

func New(cfg *Config, healthChecker pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		Echo:          e,
		cfg:           cfg,
		healthChecker: healthChecker,
		ctx:           ctx,
		cancel:        cancel,
		shutdown:      make(chan struct{}),
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(middleware.RequestID())
	s.Echo.Use(mw.Logger(mw.WithSkipper(func(c echo.Context) bool {
		return s.healthPath != "" && c.Path() == s.healthPath
	})))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  s.cfg.CorsOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		ExposeHeaders: []string{"Link"},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.healthPath = path
	s.Echo.GET(path, func(c echo.Context) error {
		if !s.healthChecker.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// Context is cancelled when the server begins shutting down
func (s *Server) Context() context.Context {
	return s.ctx
}

// ShutdownSignal is closed once the server received a stop signal
func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.shutdown
}

// BaseURL returns the configured public origin for links, or "" to use the request's own
func (s *Server) BaseURL() string {
	return strings.TrimSuffix(s.cfg.BaseURL, "/")
}

func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", s.cfg.Port, "http2", s.cfg.UseHttp2)
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		s.cancel()
		close(s.shutdown)
		return err
	}

	close(s.shutdown)
	s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		return err
	}
	slog.Info("Server stopped")
	return nil
}
