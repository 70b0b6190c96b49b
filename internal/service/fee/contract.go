//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fee_test
package fee

import (
	"context"

	"builty-service/pkg/logger"
)

type ConfigReader interface {
	GetValue(ctx context.Context, key string) (any, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
