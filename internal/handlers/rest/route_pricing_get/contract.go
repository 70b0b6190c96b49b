//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_pricing_get_test
package route_pricing_get

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
	ListRoutePricing(ctx context.Context, filter entities.RoutePricingFilter) ([]entities.RoutePricing, error)
}
