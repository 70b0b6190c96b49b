//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=builty_dispatch_post_test
package builty_dispatch_post

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
	Dispatch(ctx context.Context, id int64, actor entities.Actor, details entities.DispatchDetails) (*entities.Builty, error)
}
