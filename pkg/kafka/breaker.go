package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned when the breaker rejects a publish.
var ErrCircuitOpen = gobreaker.ErrOpenState

// BreakerConfig configures the circuit breaker guarding a Publisher.
type BreakerConfig struct {
	// Name labels the breaker in metrics and logs.
	Name string

	// MaxRequests is the number of trial publishes allowed while half-open.
	MaxRequests uint32

	// Interval clears the failure counts while closed. 0 never clears them.
	Interval time.Duration

	// Timeout is how long the breaker stays open before trying half-open.
	Timeout time.Duration

	// FailureRatio trips the breaker once at least MinRequests were seen.
	FailureRatio float64
	MinRequests  uint32
}

// DefaultBreakerConfig returns defaults suited to a single Kafka cluster.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// BreakerPublisher fails fast while Kafka is unavailable instead of making
// every request wait for the write timeout.
type BreakerPublisher struct {
	next    Publisher
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  *slog.Logger
	name    string
}

// NewBreakerPublisher wraps next with a circuit breaker.
func NewBreakerPublisher(next Publisher, cfg BreakerConfig, logger *slog.Logger) *BreakerPublisher {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		// A cancelled request says nothing about broker health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			BreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}

	BreakerState.WithLabelValues(cfg.Name).Set(0)

	return &BreakerPublisher{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
		logger:  logger,
		name:    cfg.Name,
	}
}

// Publish forwards to the wrapped publisher unless the breaker is open.
func (b *BreakerPublisher) Publish(ctx context.Context, topic string, event *Event) error {
	_, err := b.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Publish(ctx, topic, event)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		BreakerRejected.WithLabelValues(b.name).Inc()
		ProducerPublishErrors.WithLabelValues(topic).Inc()
	}
	return err
}

// State returns the current breaker state.
func (b *BreakerPublisher) State() gobreaker.State {
	return b.breaker.State()
}
