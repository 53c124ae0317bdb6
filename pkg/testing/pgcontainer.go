package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const defaultPGImage = "postgres:17.5"

// PGContainer is a disposable, empty Postgres. Callers apply the schema themselves.
type PGContainer struct {
	Container  testcontainers.Container
	ConnString string
}

type PGConfig struct {
	Image    string
	Database string
	Username string
	Password string
}

func defaultPGConfig() PGConfig {
	return PGConfig{
		Image:    defaultPGImage,
		Database: "articles_test_db",
		Username: "test",
		Password: "test",
	}
}

// NewPGContainer starts Postgres. Zero fields of cfg fall back to the test defaults.
func NewPGContainer(ctx context.Context, cfg PGConfig) (*PGContainer, error) {
	def := defaultPGConfig()
	if cfg.Image == "" {
		cfg.Image = def.Image
	}
	if cfg.Database == "" {
		cfg.Database = def.Database
	}
	if cfg.Username == "" {
		cfg.Username = def.Username
	}
	if cfg.Password == "" {
		cfg.Password = def.Password
	}

	pgContainer, err := postgres.Run(ctx,
		cfg.Image,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(pgContainer)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &PGContainer{
		Container:  pgContainer,
		ConnString: connStr,
	}, nil
}

// NewPGContainerWithCleanup starts a default container terminated when tb ends
func NewPGContainerWithCleanup(ctx context.Context, tb testing.TB) *PGContainer {
	tb.Helper()

	container, err := NewPGContainer(ctx, PGConfig{})
	if err != nil {
		tb.Fatalf("failed to create postgres container: %v", err)
	}
	tb.Cleanup(container.Terminate)

	return container
}

func (c *PGContainer) Terminate() {
	_ = testcontainers.TerminateContainer(c.Container)
}
