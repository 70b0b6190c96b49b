package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"builty-service/internal/pkg/config"
	"builty-service/internal/pkg/postgres"
	"builty-service/pkg/logger/zap_adapter"
	"builty-service/pkg/querier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	containerImage    = "postgres:16-alpine"
	containerDB       = "builty_test"
	containerUser     = "postgres"
	containerPassword = "postgres"
)

var (
	querierInstance *querier.Querier
	poolInstance    *pgxpool.Pool
	querierOnce     sync.Once
)

// GetQuerier connects to POSTGRES_* when POSTGRES_HOST is set (Makefile/CI),
// otherwise starts a throwaway postgres container. Migrations are applied once.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			_ = zapLogger.Sync()
		}()

		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}
		if cfg.Host == "" {
			cfg = startContainer(ctx)
		}

		pool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}

		if err := postgres.Migrate(ctx, pool, zapLogger); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

// GetPool is needed by tests that open transactions through pkg/tx.
func GetPool() *pgxpool.Pool {
	GetQuerier()
	return poolInstance
}

// контейнер живёт до конца процесса тестов, его убирает ryuk
func startContainer(ctx context.Context) *config.Database {
	container, err := tcpostgres.Run(ctx,
		containerImage,
		tcpostgres.WithDatabase(containerDB),
		tcpostgres.WithUsername(containerUser),
		tcpostgres.WithPassword(containerPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to get container port: %v", err)
	}

	return &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     containerUser,
		Password: containerPassword,
		DBName:   containerDB,
		SSLMode:  "disable",
	}
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

// TeardownDB keeps the seeded fee configuration rows, everything else is truncated.
func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE builties, document_counters, pricing_rules, route_pricing RESTART IDENTITY CASCADE;
		DELETE FROM config_entries
		WHERE key NOT IN ('platform_fee_percent', 'min_platform_fee', 'max_platform_fee');
		UPDATE config_entries
		SET status = 'published', value = CASE key
			WHEN 'platform_fee_percent' THEN '5'
			WHEN 'min_platform_fee' THEN '500'
			ELSE '50000' END;
	`)
	require.NoError(t, err)
}
