//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_test
package pricing

import (
	"context"

	"builty-service/internal/entities"
	"builty-service/pkg/logger"
)

type RuleRepository interface {
	CreateRule(ctx context.Context, rule entities.PricingRuleModify) (*entities.PricingRule, error)
	UpdateRule(ctx context.Context, id int64, rule entities.PricingRuleModify) (*entities.PricingRule, error)
	SetRuleStatus(ctx context.Context, id int64, status entities.LifecycleStatus) (*entities.PricingRule, error)
	GetRule(ctx context.Context, id int64) (*entities.PricingRule, error)
	ListRules(ctx context.Context, filter entities.PricingRuleFilter) ([]entities.PricingRule, error)
}

type RoutePricingRepository interface {
	CreateRoutePricing(ctx context.Context, pricing entities.RoutePricingModify) (*entities.RoutePricing, error)
	GetRoutePricing(ctx context.Context, id int64) (*entities.RoutePricing, error)
	SetRoutePricingStatus(ctx context.Context, id int64, status entities.LifecycleStatus) (*entities.RoutePricing, error)
	ListRoutePricing(ctx context.Context, filter entities.RoutePricingFilter) ([]entities.RoutePricing, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
