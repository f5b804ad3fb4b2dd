package event

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jinxhater/LUXE/internal/domain"
	pkgkafka "github.com/Jinxhater/LUXE/pkg/kafka"
	"github.com/Jinxhater/LUXE/pkg/logger"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, event *pkgkafka.Event) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:          "ord-1",
		OrderNumber: "ORD-1700000000000-ABCDE",
		UserID:      "guest",
		Status:      domain.OrderStatusPending,
		Items: []domain.OrderItem{
			{VariantID: "v1", SKU: "CWT-S-WHT", Quantity: 2, Price: decimal.RequireFromString("29.99")},
		},
		Subtotal: decimal.RequireFromString("59.98"),
		Shipping: decimal.RequireFromString("9.99"),
		Discount: decimal.RequireFromString("5.00"),
		Total:    decimal.RequireFromString("64.97"),
	}
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "luxe.order.created", TopicOrderCreated)
	assert.Equal(t, "luxe.order.status_changed", TopicOrderStatusChanged)
}

func TestPublishOrderCreated(t *testing.T) {
	pub := new(mockPublisher)
	p := NewProducer(pub, testLogger())
	ctx := logger.WithCorrelationID(context.Background(), "corr-1")

	var captured *pkgkafka.Event
	pub.On("Publish", ctx, TopicOrderCreated, mock.AnythingOfType("*kafka.Event")).
		Run(func(args mock.Arguments) { captured = args.Get(2).(*pkgkafka.Event) }).
		Return(nil)

	require.NoError(t, p.PublishOrderCreated(ctx, sampleOrder()))
	pub.AssertExpectations(t)

	require.NotNil(t, captured)
	assert.Equal(t, EventOrderCreated, captured.EventType)
	assert.Equal(t, "ord-1", captured.AggregateID)
	assert.Equal(t, AggregateTypeOrder, captured.AggregateType)
	assert.Equal(t, SourceStorefront, captured.Source)
	assert.Equal(t, "corr-1", captured.CorrelationID)
	assert.Nil(t, captured.Metadata)

	data, err := pkgkafka.DecodeData[OrderCreatedData](captured)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1700000000000-ABCDE", data.OrderNumber)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "CWT-S-WHT", data.Items[0].SKU)
	assert.True(t, data.Total.Equal(decimal.RequireFromString("64.97")))
}

func TestPublishOrderStatusChanged(t *testing.T) {
	pub := new(mockPublisher)
	p := NewProducer(pub, testLogger())
	ctx := context.Background()

	var captured *pkgkafka.Event
	pub.On("Publish", ctx, TopicOrderStatusChanged, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(2).(*pkgkafka.Event) }).
		Return(nil)

	o := sampleOrder()
	o.Status = domain.OrderStatusShipped
	o.TrackingNumber = "1Z999"
	require.NoError(t, p.PublishOrderStatusChanged(ctx, o, domain.OrderStatusPaid))

	data, err := pkgkafka.DecodeData[OrderStatusChangedData](captured)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusChangedData{
		OrderID:        "ord-1",
		OrderNumber:    "ORD-1700000000000-ABCDE",
		OldStatus:      domain.OrderStatusPaid,
		NewStatus:      domain.OrderStatusShipped,
		TrackingNumber: "1Z999",
	}, data)
	assert.Empty(t, captured.CorrelationID)
	assert.Nil(t, captured.Metadata)
}

func TestPublish_WrapsPublisherError(t *testing.T) {
	pub := new(mockPublisher)
	p := NewProducer(pub, testLogger())
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(pkgkafka.ErrCircuitOpen)

	err := p.PublishOrderCreated(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgkafka.ErrCircuitOpen))
	assert.Contains(t, err.Error(), "publish order.created event")
}

func TestNewProducer_NilPublisherIsNoop(t *testing.T) {
	p := NewProducer(nil, testLogger())
	assert.NoError(t, p.PublishOrderCreated(context.Background(), sampleOrder()))
}

func TestPublish_StampsActor(t *testing.T) {
	pub := new(mockPublisher)
	p := NewProducer(pub, testLogger())
	ctx := logger.WithUserID(context.Background(), "admin-1")

	var captured *pkgkafka.Event
	pub.On("Publish", ctx, TopicOrderStatusChanged, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(2).(*pkgkafka.Event) }).
		Return(nil)

	require.NoError(t, p.PublishOrderStatusChanged(ctx, sampleOrder(), domain.OrderStatusPending))
	require.NotNil(t, captured)
	assert.Equal(t, map[string]string{"actor_user_id": "admin-1"}, captured.Metadata)
}
