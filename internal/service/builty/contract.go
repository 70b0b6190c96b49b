//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=builty_test
package builty

import (
	"context"
	"io"
	"time"

	"builty-service/internal/entities"
	"builty-service/pkg/logger"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, issue entities.BuiltyIssue) (*entities.AdminBuilty, error)

	GetByID(ctx context.Context, id int64) (*entities.Builty, error)
	GetAdminByID(ctx context.Context, id int64) (*entities.AdminBuilty, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Builty, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*entities.Builty, error)
	List(ctx context.Context, query entities.BuiltyListQuery) ([]entities.Builty, int64, error)

	MarkDispatched(ctx context.Context, id int64, dispatch entities.BuiltyDispatch) (*entities.Builty, error)
	MarkDelivered(ctx context.Context, id int64, delivery entities.BuiltyDelivery) (*entities.Builty, error)
	MarkCancelled(ctx context.Context, id int64, expected entities.BuiltyStatus, reason string, at time.Time) (*entities.Builty, error)
	SetConsignorSignature(ctx context.Context, id int64, expected entities.BuiltyStatus, signature entities.Signature) (*entities.Builty, error)

	Stats(ctx context.Context) (*entities.BuiltyStats, error)
	CountByStatus(ctx context.Context) (map[entities.BuiltyStatus]int64, error)
}

type FeeCalculator interface {
	ComputePlatformFee(ctx context.Context, freightCharges decimal.Decimal) (decimal.Decimal, error)
}

type DocumentNumberGenerator interface {
	Next(ctx context.Context) (string, error)
}

type TokenSigner interface {
	Sign(documentNumber string, bookingRef *string, total decimal.Decimal) string
	Verify(documentNumber string, bookingRef *string, total decimal.Decimal, token string) bool
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.BuiltyEvent) error
}

type FileStorage interface {
	Upload(ctx context.Context, key string, contentType string, size int64, body io.Reader) (string, error)
}

type PDFRenderer interface {
	RenderBuilty(ctx context.Context, builty *entities.Builty) ([]byte, error)
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
