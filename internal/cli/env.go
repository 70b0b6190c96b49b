package cli

import (
	"context"
	"fmt"
	"os"

	"builty-service/internal/pkg/config"
	"builty-service/internal/pkg/dotenv"
	"builty-service/internal/pkg/postgres"
	"builty-service/pkg/logger"
	"builty-service/pkg/logger/zap_adapter"
	"github.com/jackc/pgx/v5/pgxpool"
)

func loadEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil //nolint:nilerr // без .env работаем на переменных окружения
	}
	return dotenv.Load()
}

func newLogger() (logger.Logger, error) {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	return zap_adapter.NewZapAdapter(level)
}

// withPool opens a pool from the POSTGRES_* environment, runs fn and closes it.
func withPool(ctx context.Context, fn func(ctx context.Context, pool *pgxpool.Pool, log logger.Logger) error) error {
	if err := loadEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}

	pool, err := postgres.NewConnPool(ctx, log, dbCfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, pool, log)
}
