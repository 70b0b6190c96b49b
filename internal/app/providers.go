package app

import (
	"context"
	"time"

	builtyEvents "builty-service/internal/gateway/kafka/builty_events"
	"builty-service/internal/handlers/tasks/builty_status_gauges"
	"builty-service/internal/pkg/config"
	"builty-service/internal/pkg/factory/document_number"
	"builty-service/internal/pkg/factory/verification_token"
	metrics_system "builty-service/internal/pkg/metrics"
	builtyRepo "builty-service/internal/repository/builty"
	configurationRepo "builty-service/internal/repository/configuration"
	documentCounterRepo "builty-service/internal/repository/document_counter"
	pricingRepo "builty-service/internal/repository/pricing"
	builtyService "builty-service/internal/service/builty"
	configurationService "builty-service/internal/service/configuration"
	feeService "builty-service/internal/service/fee"
	pricingService "builty-service/internal/service/pricing"
	"builty-service/pkg/background"
	"builty-service/pkg/logger"
	"builty-service/pkg/querier"
	"builty-service/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideBuiltyRepository(querier *querier.Querier) *builtyRepo.Repository {
	return builtyRepo.New(querier)
}

func provideConfigurationRepository(querier *querier.Querier) *configurationRepo.Repository {
	return configurationRepo.New(querier)
}

func providePricingRepository(querier *querier.Querier) *pricingRepo.Repository {
	return pricingRepo.New(querier)
}

func provideDocumentCounterRepository(querier *querier.Querier) *documentCounterRepo.Repository {
	return documentCounterRepo.New(querier)
}

func provideServiceConfiguration(
	repository configurationService.Repository,
	txManager configurationService.TxManager,
	log logger.Logger,
) *configurationService.Service {
	return configurationService.New(repository, txManager, log)
}

func provideServicePricing(
	rules pricingService.RuleRepository,
	routes pricingService.RoutePricingRepository,
	txManager pricingService.TxManager,
	log logger.Logger,
) *pricingService.Service {
	return pricingService.New(rules, routes, txManager, log)
}

func provideFeeCalculator(configReader feeService.ConfigReader, log logger.Logger) *feeService.Calculator {
	return feeService.New(configReader, log)
}

func provideDocumentNumberGenerator(counter document_number.Counter) *document_number.Generator {
	return document_number.New(counter)
}

func provideVerificationSecret(cfg *config.Config) VerificationSecret {
	return VerificationSecret(cfg.Verification.Secret)
}

func provideVerificationSigner(secret VerificationSecret) *verification_token.Signer {
	return verification_token.New(string(secret))
}

func provideEventsTopic(cfg *config.Config) EventsTopic {
	return EventsTopic(cfg.Kafka.EventsTopic)
}

func provideEventsGateway(producer sarama.SyncProducer, topic EventsTopic) *builtyEvents.EventsGateway {
	return builtyEvents.New(producer, string(topic))
}

func provideServiceBuilty(
	repository builtyService.Repository,
	fees builtyService.FeeCalculator,
	numbers builtyService.DocumentNumberGenerator,
	signer builtyService.TokenSigner,
	events builtyService.EventPublisher,
	storage builtyService.FileStorage,
	pdf builtyService.PDFRenderer,
	txManager builtyService.TxManager,
	log logger.Logger,
) *builtyService.Service {
	return builtyService.New(
		repository,
		fees,
		numbers,
		signer,
		events,
		storage,
		pdf,
		txManager,
		log,
	)
}

func provideStatsRefreshInterval(cfg *config.Config) StatsRefreshInterval {
	return StatsRefreshInterval(cfg.Tasks.BuiltyStatsRefreshInterval)
}

func provideBuiltyStatusGaugesTask(
	log logger.Logger,
	service builty_status_gauges.Service,
	interval StatsRefreshInterval,
) *builty_status_gauges.BuiltyStatusGauges {
	return builty_status_gauges.NewBuiltyStatusGauges(log, service, time.Duration(interval))
}

func provideSystemMetricsTask() *metrics_system.SystemCollector {
	return metrics_system.NewSystemCollector(systemMetricsInterval)
}

func provideTaskList(
	builtyStatusGaugesTask *builty_status_gauges.BuiltyStatusGauges,
	systemMetricsTask *metrics_system.SystemCollector,
) []background.Task {
	return []background.Task{
		builtyStatusGaugesTask,
		systemMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
