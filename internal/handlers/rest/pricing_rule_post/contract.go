//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_rule_post_test
package pricing_rule_post

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
	CreateRule(ctx context.Context, rule entities.PricingRuleModify) (*entities.PricingRule, error)
}
