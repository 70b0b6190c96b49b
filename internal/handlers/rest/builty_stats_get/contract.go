//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=builty_stats_get_test
package builty_stats_get

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
	GetStats(ctx context.Context, actor entities.Actor) (*entities.BuiltyStats, error)
}
