//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_rules_applicable_get_test
package pricing_rules_applicable_get

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
	ResolveApplicable(ctx context.Context, ruleCtx entities.RuleContext) ([]entities.PricingRule, error)
}
