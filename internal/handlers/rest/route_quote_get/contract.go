//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_quote_get_test
package route_quote_get

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
	QuoteBasePrice(ctx context.Context, routeID int64, categoryID *int64) (*entities.RouteQuote, error)
}
