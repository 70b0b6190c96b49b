//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=config_put_test
package config_put

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
	SetDraft(ctx context.Context, key, value string, metadata entities.ConfigMetadata, actorID int64) (*entities.ConfigEntry, error)
}
