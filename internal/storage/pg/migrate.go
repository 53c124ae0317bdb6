package pg

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/article-feed/db/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator applies the embedded schema migrations. goose works on database/sql,
// so it opens its own connection through the pgx stdlib driver.
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
}

func NewMigrator(connStr string) (*Migrator, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}

	return &Migrator{db: db, provider: provider}, nil
}

// Up applies every pending migration and returns how many ran
func (m *Migrator) Up(ctx context.Context) (int, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		slog.Info("Migration applied", "source", r.Source.Path, "duration", r.Duration)
	}
	return len(results), nil
}

// Reset rolls back every applied migration
func (m *Migrator) Reset(ctx context.Context) error {
	if _, err := m.provider.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

// Version returns the version of the last applied migration, 0 when none
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	return m.provider.GetDBVersion(ctx)
}

func (m *Migrator) Close() error {
	return m.db.Close()
}

// Migrate brings the schema behind connStr up to date
func Migrate(ctx context.Context, connStr string) error {
	m, err := NewMigrator(connStr)
	if err != nil {
		return err
	}
	defer m.Close()

	applied, err := m.Up(ctx)
	if err != nil {
		return err
	}
	slog.Info("PostgreSQL schema is up to date", "applied", applied)
	return nil
}
