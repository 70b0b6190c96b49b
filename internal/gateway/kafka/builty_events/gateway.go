package builty_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"builty-service/internal/entities"
	"builty-service/internal/gateway/metrics"
	retrierconfig "builty-service/pkg/retrier"
	"builty-service/pkg/retrier/backoff_adapter"
	"github.com/IBM/sarama"
)

const (
	serviceName = "kafka-builty-events"

	headerEventType = "event_type"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type EventsGateway struct {
	producer producer
	topic    string
	retrier  retrier
}

func New(producer producer, topic string) *EventsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &EventsGateway{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

// Publish sends the event keyed by document number so that events of one receipt keep their order.
func (g *EventsGateway) Publish(ctx context.Context, event entities.BuiltyEvent) error {
	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("gateway builty events, marshal: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.DocumentNumber),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	}

	err = g.executeWithMetrics(ctx, "Publish", func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _, err := g.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway builty events, publish %s %s: %w", event.Type, event.DocumentNumber, err)
	}
	return nil
}

func isRetryable(err error) bool {
	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotConnected),
		errors.Is(err, sarama.ErrLeaderNotAvailable),
		errors.Is(err, sarama.ErrNotLeaderForPartition),
		errors.Is(err, sarama.ErrRequestTimedOut),
		errors.Is(err, sarama.ErrNotEnoughReplicas),
		errors.Is(err, sarama.ErrNotEnoughReplicasAfterAppend):
		return true
	default:
		return false
	}
}

func (g *EventsGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	metrics.Observe(serviceName, method, resultLabel(err), start, attempt)
	return err
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.ResultCanceled
	default:
		return metrics.ResultError
	}
}
