//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_confirmed_test
package booking_confirmed

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
	Create(ctx context.Context, actor entities.Actor, create entities.BuiltyCreate) (*entities.Builty, error)
}
