package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPublisher struct {
	calls int
	err   error
}

func (s *stubPublisher) Publish(context.Context, string, *Event) error {
	s.calls++
	return s.err
}

func testBreakerConfig(name string) BreakerConfig {
	cfg := DefaultBreakerConfig(name)
	cfg.MinRequests = 2
	cfg.Timeout = time.Hour
	return cfg
}

func TestDefaultBreakerConfig(t *testing.T) {
	cfg := DefaultBreakerConfig("orders")
	assert.Equal(t, "orders", cfg.Name)
	assert.Equal(t, uint32(1), cfg.MaxRequests)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 0.5, cfg.FailureRatio)
	assert.Equal(t, uint32(5), cfg.MinRequests)
}

func TestBreakerPublisher_PassesThrough(t *testing.T) {
	next := &stubPublisher{}
	b := NewBreakerPublisher(next, testBreakerConfig("pass-through"), discard())

	require.NoError(t, b.Publish(context.Background(), "luxe.order.created", &Event{}))
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerPublisher_OpensAfterFailures(t *testing.T) {
	next := &stubPublisher{err: errors.New("broker down")}
	b := NewBreakerPublisher(next, testBreakerConfig("opens"), discard())
	ctx := context.Background()

	for range 2 {
		require.Error(t, b.Publish(ctx, "luxe.order.created", &Event{}))
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	before := getCounterValue(t, "kafka_producer_circuit_breaker_rejected_total", "opens")
	err := b.Publish(ctx, "luxe.order.created", &Event{})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 2, next.calls, "open breaker must not reach the publisher")
	assert.Equal(t, before+1, getCounterValue(t, "kafka_producer_circuit_breaker_rejected_total", "opens"))
}

func TestBreakerPublisher_CancelledContextDoesNotTrip(t *testing.T) {
	next := &stubPublisher{err: context.Canceled}
	b := NewBreakerPublisher(next, testBreakerConfig("cancelled"), discard())

	for range 5 {
		_ = b.Publish(context.Background(), "luxe.order.created", &Event{})
	}
	assert.Equal(t, gobreaker.StateClosed, b.State())
	assert.Equal(t, 5, next.calls)
}
