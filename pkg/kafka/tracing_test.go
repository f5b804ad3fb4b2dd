package kafka

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestKafkaHeaderCarrier_GetSet(t *testing.T) {
	headers := []kafka.Header{{Key: "event_type", Value: []byte("order.created")}}
	c := NewHeaderCarrier(&headers)

	assert.Equal(t, "order.created", c.Get("event_type"))
	assert.Equal(t, "", c.Get("missing"))

	c.Set("traceparent", "00-abc-def-01")
	assert.Len(t, headers, 2)
	assert.Equal(t, "00-abc-def-01", c.Get("traceparent"))
}

func TestKafkaHeaderCarrier_SetOverwrites(t *testing.T) {
	headers := []kafka.Header{{Key: "traceparent", Value: []byte("old")}}
	c := NewHeaderCarrier(&headers)

	c.Set("traceparent", "new")
	assert.Len(t, headers, 1)
	assert.Equal(t, "new", c.Get("traceparent"))
}

func TestKafkaHeaderCarrier_Keys(t *testing.T) {
	var headers []kafka.Header
	c := NewHeaderCarrier(&headers)
	assert.Empty(t, c.Keys())

	c.Set("a", "1")
	c.Set("b", "2")
	assert.Equal(t, []string{"a", "b"}, c.Keys())
}
