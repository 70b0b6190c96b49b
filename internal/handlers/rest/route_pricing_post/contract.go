//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_pricing_post_test
package route_pricing_post

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
	CreateRoutePricing(ctx context.Context, pricing entities.RoutePricingModify) (*entities.RoutePricing, error)
}
