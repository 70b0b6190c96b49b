//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=builty_print_pdf_get_test
package builty_print_pdf_get

import (
	"context"

	"builty-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RenderPrintPDF(ctx context.Context, documentNumber string) ([]byte, error)
}
