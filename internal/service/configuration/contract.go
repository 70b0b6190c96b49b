//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=configuration_test
package configuration

import (
	"context"
	"time"

	"builty-service/internal/entities"
	"builty-service/pkg/logger"
)

type Repository interface {
	GetByKey(ctx context.Context, key string) (*entities.ConfigEntry, error)
	Upsert(ctx context.Context, draft entities.ConfigDraft) (*entities.ConfigEntry, error)
	SetStatus(ctx context.Context, key string, status entities.LifecycleStatus, actorID int64, at time.Time) (*entities.ConfigEntry, error)
	ListPublished(ctx context.Context, onlyPublic bool) ([]entities.ConfigEntry, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
