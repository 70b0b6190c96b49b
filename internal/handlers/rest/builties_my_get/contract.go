//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=builties_my_get_test
package builties_my_get

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
	ListForConsignor(ctx context.Context, actor entities.Actor, filter entities.ListFilter) (*entities.BuiltyPage, error)
}
