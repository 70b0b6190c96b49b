//go:build wireinject
// +build wireinject

package app

import (
	"context"

	builtyEvents "builty-service/internal/gateway/kafka/builty_events"
	"builty-service/internal/handlers/tasks/builty_status_gauges"
	"builty-service/internal/pkg/config"
	"builty-service/internal/pkg/factory/document_number"
	"builty-service/internal/pkg/factory/verification_token"
	builtyRepo "builty-service/internal/repository/builty"
	configurationRepo "builty-service/internal/repository/configuration"
	documentCounterRepo "builty-service/internal/repository/document_counter"
	pricingRepo "builty-service/internal/repository/pricing"
	builtyService "builty-service/internal/service/builty"
	configurationService "builty-service/internal/service/configuration"
	feeService "builty-service/internal/service/fee"
	pricingService "builty-service/internal/service/pricing"
	"builty-service/pkg/logger"
	"builty-service/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

var builtySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideEventsTopic,
	provideVerificationSecret,

	provideBuiltyRepository,
	provideConfigurationRepository,
	provideDocumentCounterRepository,

	provideServiceConfiguration,
	provideFeeCalculator,
	provideDocumentNumberGenerator,
	provideVerificationSigner,
	provideEventsGateway,
	provideServiceBuilty,

	wire.Bind(new(builtyService.Repository), new(*builtyRepo.Repository)),
	wire.Bind(new(builtyService.FeeCalculator), new(*feeService.Calculator)),
	wire.Bind(new(builtyService.DocumentNumberGenerator), new(*document_number.Generator)),
	wire.Bind(new(builtyService.TokenSigner), new(*verification_token.Signer)),
	wire.Bind(new(builtyService.EventPublisher), new(*builtyEvents.EventsGateway)),
	wire.Bind(new(builtyService.TxManager), new(*tx.Manager)),
	wire.Bind(new(configurationService.Repository), new(*configurationRepo.Repository)),
	wire.Bind(new(configurationService.TxManager), new(*tx.Manager)),
	wire.Bind(new(feeService.ConfigReader), new(*configurationService.Service)),
	wire.Bind(new(document_number.Counter), new(*documentCounterRepo.Repository)),
)

// InitializeApplication для HTTP сервиса (cmd/service).
// storage и pdf равны nil, когда интеграция выключена в конфиге.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	storage builtyService.FileStorage,
	pdf builtyService.PDFRenderer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		builtySet,
		provideStatsRefreshInterval,

		providePricingRepository,
		provideServicePricing,

		provideBuiltyStatusGaugesTask,
		provideSystemMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceBuilty), new(*builtyService.Service)),
		wire.Bind(new(ServiceConfiguration), new(*configurationService.Service)),
		wire.Bind(new(ServicePricing), new(*pricingService.Service)),

		wire.Bind(new(pricingService.RuleRepository), new(*pricingRepo.Repository)),
		wire.Bind(new(pricingService.RoutePricingRepository), new(*pricingRepo.Repository)),
		wire.Bind(new(pricingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(builty_status_gauges.Service), new(*builtyService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-booking-confirmed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	storage builtyService.FileStorage,
	pdf builtyService.PDFRenderer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		builtySet,
		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
