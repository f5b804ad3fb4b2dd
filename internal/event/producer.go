package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Jinxhater/LUXE/internal/domain"
	pkgkafka "github.com/Jinxhater/LUXE/pkg/kafka"
	"github.com/Jinxhater/LUXE/pkg/logger"
)

// Kafka topics for order domain events.
var (
	TopicOrderCreated       = pkgkafka.Topic("order", "created")
	TopicOrderStatusChanged = pkgkafka.Topic("order", "status_changed")
)

// Event type constants.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// AggregateTypeOrder is the aggregate type of every order event.
const AggregateTypeOrder = "order"

// SourceStorefront identifies events originating from this service.
const SourceStorefront = "storefront"

// OrderCreatedData is the payload for an order.created event.
type OrderCreatedData struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	UserID      string          `json:"user_id"`
	Status      string          `json:"status"`
	Items       []OrderItemData `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Shipping    decimal.Decimal `json:"shipping"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	CouponCode  string          `json:"coupon_code,omitempty"`
}

// OrderItemData is the event payload for an order item.
type OrderItemData struct {
	VariantID string          `json:"variant_id"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderStatusChangedData is the payload for an order.status_changed event.
type OrderStatusChangedData struct {
	OrderID        string `json:"order_id"`
	OrderNumber    string `json:"order_number"`
	OldStatus      string `json:"old_status"`
	NewStatus      string `json:"new_status"`
	TrackingNumber string `json:"tracking_number,omitempty"`
}

// Producer publishes order domain events.
type Producer struct {
	publisher pkgkafka.Publisher
	logger    *slog.Logger
}

// NewProducer creates an event producer. A nil publisher discards events.
func NewProducer(publisher pkgkafka.Publisher, logger *slog.Logger) *Producer {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	return &Producer{publisher: publisher, logger: logger}
}

func (p *Producer) publish(ctx context.Context, topic, eventType, aggregateID string, data any) error {
	event, err := pkgkafka.NewEvent(eventType, aggregateID, AggregateTypeOrder, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", eventType, err)
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		event.WithCorrelationID(id)
	}
	event.WithMetadata("actor_user_id", logger.UserIDFromContext(ctx))

	if err := p.publisher.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	p.logger.DebugContext(ctx, "published event",
		slog.String("event_type", eventType),
		slog.String("aggregate_id", aggregateID),
	)
	return nil
}

// PublishOrderCreated publishes an order.created event.
func (p *Producer) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	items := make([]OrderItemData, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemData{
			VariantID: item.VariantID,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	data := OrderCreatedData{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Status:      order.Status,
		Items:       items,
		Subtotal:    order.Subtotal,
		Shipping:    order.Shipping,
		Discount:    order.Discount,
		Total:       order.Total,
		CouponCode:  order.CouponCode,
	}
	return p.publish(ctx, TopicOrderCreated, EventOrderCreated, order.ID, data)
}

// PublishOrderStatusChanged publishes an order.status_changed event.
func (p *Producer) PublishOrderStatusChanged(ctx context.Context, order *domain.Order, oldStatus string) error {
	data := OrderStatusChangedData{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		OldStatus:      oldStatus,
		NewStatus:      order.Status,
		TrackingNumber: order.TrackingNumber,
	}
	return p.publish(ctx, TopicOrderStatusChanged, EventOrderStatusChanged, order.ID, data)
}

// NoopPublisher drops every event. It is used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, *pkgkafka.Event) error { return nil }
