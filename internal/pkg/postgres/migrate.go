package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"builty-service/migrations"
	"builty-service/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator applies the embedded goose migrations through the pgx pool.
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
	log      logger.Logger
}

func NewMigrator(pool *pgxpool.Pool, log logger.Logger) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose provider: %w", err)
	}

	return &Migrator{
		db:       db,
		provider: provider,
		log:      log,
	}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	for _, r := range results {
		m.log.Info("migration applied",
			logger.NewField("version", r.Source.Version),
			logger.NewField("path", r.Source.Path),
			logger.NewField("duration", r.Duration.String()),
		)
	}
	return nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	m.log.Info("migration rolled back",
		logger.NewField("version", result.Source.Version),
		logger.NewField("path", result.Source.Path),
	)
	return nil
}

type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate status: %w", err)
	}

	result := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return result, nil
}

func (m *Migrator) Close() error {
	return m.db.Close()
}

// Migrate is a shortcut for one-shot Up on startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log logger.Logger) error {
	migrator, err := NewMigrator(pool, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Warn("failed to close migration connection", logger.NewField("error", err))
		}
	}()

	return migrator.Up(ctx)
}
