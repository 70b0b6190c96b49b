//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=builty_photo_post_test
package builty_photo_post

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
	UploadPhoto(ctx context.Context, id int64, actor entities.Actor, upload entities.FileUpload) (string, error)
}
