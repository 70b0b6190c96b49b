//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_pricing_status_post_test
package route_pricing_status_post

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
	SetRoutePricingStatus(ctx context.Context, id int64, status entities.LifecycleStatus) (*entities.RoutePricing, error)
}
