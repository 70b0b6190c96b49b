package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK       = "OK"
	ResultError    = "ERROR"
	ResultCanceled = "CANCELED"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_retries_total",
			Help: "Total number of gateway retry attempts",
		},
		[]string{"service", "method", "result"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of gateway requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "result"},
	)
)

// Observe records the call duration and, when more than one attempt was made, a retry.
func Observe(service, method, result string, start time.Time, attempts uint64) {
	GatewayRequestDuration.WithLabelValues(service, method, result).Observe(time.Since(start).Seconds())
	if attempts > 1 {
		GatewayRetriesTotal.WithLabelValues(service, method, result).Inc()
	}
}
