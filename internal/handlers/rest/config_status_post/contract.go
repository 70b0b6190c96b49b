//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=config_status_post_test
package config_status_post

import (
	"context"

	"builty-service/internal/entities"
	"builty-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Publish(ctx context.Context, key string, actorID int64) (*entities.ConfigEntry, error)
	Unpublish(ctx context.Context, key string, actorID int64) (*entities.ConfigEntry, error)
	Archive(ctx context.Context, key string, actorID int64) (*entities.ConfigEntry, error)
}
