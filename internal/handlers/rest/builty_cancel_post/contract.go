//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=builty_cancel_post_test
package builty_cancel_post

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
	Cancel(ctx context.Context, id int64, actor entities.Actor, reason string) (*entities.Builty, error)
}
