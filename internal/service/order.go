package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/event"
	"github.com/Jinxhater/LUXE/internal/pricing"
	"github.com/Jinxhater/LUXE/internal/repository"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
	"github.com/Jinxhater/LUXE/pkg/tracing"
)

// Order listing page sizes.
const (
	DefaultOrdersPerPage = 20
	MaxOrdersPerPage     = 100
)

var tracer = tracing.Tracer("service")

// Actor is the caller on whose behalf an order operation runs.
type Actor struct {
	UserID string
	Admin  bool
}

// OrderService implements checkout and order management.
type OrderService struct {
	catalog  repository.CatalogRepository
	coupons  *CouponService
	repo     repository.OrderRepository
	producer *event.Producer
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(
	catalog repository.CatalogRepository,
	coupons *CouponService,
	repo repository.OrderRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		catalog:  catalog,
		coupons:  coupons,
		repo:     repo,
		producer: producer,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrderItemInput identifies a variant and quantity to buy. Prices and
// display fields always come from the catalog.
type CreateOrderItemInput struct {
	VariantID string
	Quantity  int
}

// CreateOrderInput holds the parameters for creating an order.
type CreateOrderInput struct {
	UserID          string
	Items           []CreateOrderItemInput
	ShippingAddress domain.Address
	BillingAddress  *domain.Address
	// Discount is used only when CouponCode is empty.
	Discount   decimal.Decimal
	CouponCode string
	Notes      string
}

// CreateOrder checks stock, prices the items from the catalog and stores a
// PENDING order. Publishing the order.created event never fails the call.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (_ *domain.Order, err error) {
	ctx, span := tracer.Start(ctx, "OrderService.CreateOrder")
	defer func() { tracing.End(span, err, attribute.Int("order.item_count", len(input.Items))) }()

	if len(input.Items) == 0 {
		return nil, apperrors.InvalidInput("order must contain at least one item")
	}
	if input.Discount.IsNegative() {
		return nil, apperrors.InvalidInput("discount must not be negative")
	}
	if input.UserID == "" {
		input.UserID = domain.GuestUserID
	}

	now := s.now()
	items, err := s.snapshotItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	subtotal := pricing.Subtotal(items)
	shipping := pricing.Shipping(subtotal)

	discount := input.Discount
	couponCode := ""
	if strings.TrimSpace(input.CouponCode) != "" {
		couponCode, discount, err = s.coupons.Discount(ctx, input.CouponCode, subtotal)
		if err != nil {
			return nil, err
		}
	}

	number, err := domain.NewOrderNumber(now)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:              uuid.New().String(),
		OrderNumber:     number,
		UserID:          input.UserID,
		Status:          domain.OrderStatusPending,
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Discount:        discount,
		Total:           pricing.Total(subtotal, shipping, discount),
		CouponCode:      couponCode,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	ordersCreated.Inc()
	orderValue.Observe(order.Total.InexactFloat64())

	if err := s.producer.PublishOrderCreated(ctx, order); err != nil {
		eventPublishFailures.WithLabelValues(event.EventOrderCreated).Inc()
		s.logger.ErrorContext(ctx, "failed to publish order.created event",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("user_id", order.UserID),
		slog.String("total", order.Total.StringFixed(2)),
	)

	return order, nil
}

// snapshotItems resolves each line against the catalog and copies the
// fields the order keeps. Quantities of repeated variants are summed for the
// stock check.
func (s *OrderService) snapshotItems(ctx context.Context, inputs []CreateOrderItemInput) ([]domain.OrderItem, error) {
	requested := make(map[string]int, len(inputs))
	items := make([]domain.OrderItem, 0, len(inputs))

	for i, in := range inputs {
		if in.Quantity < 1 {
			return nil, apperrors.InvalidInput(fmt.Sprintf("items[%d].quantity must be at least 1", i))
		}

		product, err := s.catalog.GetProductByVariantID(ctx, in.VariantID)
		if err != nil {
			return nil, fmt.Errorf("resolve variant %s: %w", in.VariantID, err)
		}
		variant, ok := product.Variant(in.VariantID)
		if !ok {
			return nil, apperrors.NotFound("variant", in.VariantID)
		}

		requested[variant.ID] += in.Quantity
		if requested[variant.ID] > variant.Stock {
			return nil, apperrors.BusinessRule(fmt.Sprintf(
				"insufficient stock for %s (%s / %s): %d available",
				product.Name, variant.Size, variant.Color, variant.Stock,
			))
		}

		items = append(items, domain.OrderItem{
			ID:          uuid.New().String(),
			VariantID:   variant.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			SKU:         variant.SKU,
			Size:        variant.Size,
			Color:       variant.Color,
			Image:       product.PrimaryImage(),
			Quantity:    in.Quantity,
			Price:       variant.EffectivePrice(product),
		})
	}
	return items, nil
}

// GetOrder returns an order visible to actor. Orders belonging to someone
// else are reported as not found.
func (s *OrderService) GetOrder(ctx context.Context, id string, actor Actor) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	if !actor.Admin && order.UserID != actor.UserID {
		return nil, apperrors.NotFoundMessage("Order not found")
	}
	return order, nil
}

// ListOrders returns the actor's orders, or every order for an admin.
func (s *OrderService) ListOrders(ctx context.Context, actor Actor, filter repository.OrderFilter) ([]domain.Order, int, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = DefaultOrdersPerPage
	}
	if filter.PerPage > MaxOrdersPerPage {
		filter.PerPage = MaxOrdersPerPage
	}
	if filter.Status != nil && !domain.IsValidStatus(*filter.Status) {
		return nil, 0, invalidStatus(*filter.Status)
	}

	if !actor.Admin {
		uid := actor.UserID
		filter.UserID = &uid
	}

	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, total, nil
}

func invalidStatus(status string) error {
	return apperrors.InvalidInput(fmt.Sprintf("invalid status %q, must be one of: %s",
		status, strings.Join(domain.ValidStatuses(), ", ")))
}

// UpdateOrderStatus sets any valid status regardless of the current one.
// Concurrent updates are last-writer-wins.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id, newStatus, trackingNumber string) (_ *domain.Order, err error) {
	ctx, span := tracer.Start(ctx, "OrderService.UpdateOrderStatus")
	defer func() { tracing.End(span, err, attribute.String("order.status", newStatus)) }()

	if !domain.IsValidStatus(newStatus) {
		return nil, invalidStatus(newStatus)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order for status update: %w", err)
	}

	order, err := s.repo.UpdateStatus(ctx, id, newStatus, strings.TrimSpace(trackingNumber), s.now())
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	orderStatusUpdates.WithLabelValues(newStatus).Inc()

	if err := s.producer.PublishOrderStatusChanged(ctx, order, current.Status); err != nil {
		eventPublishFailures.WithLabelValues(event.EventOrderStatusChanged).Inc()
		s.logger.ErrorContext(ctx, "failed to publish order.status_changed event",
			slog.String("order_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", id),
		slog.String("old_status", current.Status),
		slog.String("new_status", newStatus),
	)

	return order, nil
}
