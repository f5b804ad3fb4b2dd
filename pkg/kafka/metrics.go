package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"
)

var (
	// ProducerMessagesPublished counts messages acknowledged by the brokers.
	ProducerMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_producer_messages_published_total",
			Help: "Total number of Kafka messages published",
		},
		[]string{"topic"},
	)

	// ProducerPublishErrors counts publish failures, including breaker rejections.
	ProducerPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_producer_publish_errors_total",
			Help: "Total number of Kafka publish errors",
		},
		[]string{"topic"},
	)

	// ProducerPublishDuration observes the duration of publish operations.
	ProducerPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kafka_producer_publish_duration_seconds",
			Help:    "Duration of Kafka publish operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"topic"},
	)

	// BreakerState reports the publish circuit breaker state (0=closed, 1=half-open, 2=open).
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kafka_producer_circuit_breaker_state",
			Help: "Current state of the Kafka publish circuit breaker (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// BreakerRejected counts publishes rejected without reaching Kafka.
	BreakerRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_producer_circuit_breaker_rejected_total",
			Help: "Total number of Kafka publishes rejected by the open circuit breaker",
		},
		[]string{"name"},
	)
)

// stateToFloat maps gobreaker states to gauge values.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
