package builty_status_gauges

import (
	"context"
	"time"

	"builty-service/internal/entities"
	"builty-service/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var BuiltiesByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "builties_by_status",
		Help: "Number of builties per lifecycle status",
	},
	[]string{"status"},
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.BuiltyStatus]int64, error)
}

type BuiltyStatusGauges struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewBuiltyStatusGauges(log logger.Logger, service Service, interval time.Duration) *BuiltyStatusGauges {
	return &BuiltyStatusGauges{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BuiltyStatusGauges) TTL() time.Duration {
	return b.interval
}

func (b *BuiltyStatusGauges) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	counts, err := b.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	// статусы без записей обнуляем, иначе gauge держит старое значение
	var total int64
	for _, status := range entities.BuiltyStatuses {
		n := counts[status]
		total += n
		BuiltiesByStatus.WithLabelValues(status.String()).Set(float64(n))
	}

	b.log.With(
		logger.NewField("total", total),
	).Info("builty status gauges refreshed")

	return nil
}

func (b *BuiltyStatusGauges) Info() string {
	return "builty status gauges"
}
