package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/event"
	"github.com/Jinxhater/LUXE/internal/repository"
	"github.com/Jinxhater/LUXE/internal/repository/memory"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
	pkgkafka "github.com/Jinxhater/LUXE/pkg/kafka"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, evt *pkgkafka.Event) error {
	args := m.Called(ctx, topic, evt)
	return args.Error(0)
}

var orderNumberPattern = regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{5}$`)

func testAddress() domain.Address {
	return domain.Address{
		FullName:    "Ada Lovelace",
		AddressLine: "12 St James's Square",
		City:        "London",
		PostalCode:  "SW1Y 4JH",
		Country:     "GB",
	}
}

func newTestOrderService(catalog repository.CatalogRepository, pub pkgkafka.Publisher) (*OrderService, *memory.OrderRepository) {
	logger := newTestLogger()
	repo := memory.NewOrderRepository()
	producer := event.NewProducer(pub, logger)
	return NewOrderService(catalog, newCouponService(), repo, producer, logger), repo
}

func TestCreateOrder_Success(t *testing.T) {
	svc, repo := newTestOrderService(testCatalog(), nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		UserID:          "user-1",
		Items:           []CreateOrderItemInput{{VariantID: "v1", Quantity: 1}, {VariantID: "v2", Quantity: 1}},
		ShippingAddress: testAddress(),
		Notes:           "leave at door",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Regexp(t, orderNumberPattern, order.OrderNumber)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Wool Jacket", order.Items[0].ProductName)
	assert.Equal(t, "WJ-M", order.Items[0].SKU)
	assert.Equal(t, "/img/jacket.jpg", order.Items[0].Image)
	assert.Equal(t, "12.50", order.Items[1].Price.StringFixed(2))
	assert.Equal(t, "72.50", order.Subtotal.StringFixed(2))
	assert.Equal(t, "9.99", order.Shipping.StringFixed(2))
	assert.Equal(t, "82.49", order.Total.StringFixed(2))
	assert.Equal(t, "leave at door", order.Notes)
	assert.Equal(t, 1, repo.Len())
}

func TestCreateOrder_GuestWhenAnonymous(t *testing.T) {
	svc, _ := newTestOrderService(testCatalog(), nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		Items:           []CreateOrderItemInput{{VariantID: "v1", Quantity: 1}},
		ShippingAddress: testAddress(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.GuestUserID, order.UserID)
}

func TestCreateOrder_WithCoupon(t *testing.T) {
	svc, _ := newTestOrderService(testCatalog(), nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		Items:           []CreateOrderItemInput{{VariantID: "v1", Quantity: 2}},
		ShippingAddress: testAddress(),
		CouponCode:      "welcome10",
	})

	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", order.CouponCode)
	assert.Equal(t, "120.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "12.00", order.Discount.StringFixed(2))
	assert.True(t, order.Shipping.IsZero())
	assert.Equal(t, "108.00", order.Total.StringFixed(2))
}

func TestCreateOrder_InvalidCouponIsBusinessRule(t *testing.T) {
	svc, repo := newTestOrderService(testCatalog(), nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		Items:           []CreateOrderItemInput{{VariantID: "v1", Quantity: 2}},
		ShippingAddress: testAddress(),
		CouponCode:      "SUMMER25",
	})

	assert.True(t, errors.Is(err, apperrors.ErrBusinessRule))
	assert.Equal(t, 0, repo.Len())
}

func TestCreateOrder_SubmittedDiscountClampsTotal(t *testing.T) {
	svc, _ := newTestOrderService(testCatalog(), nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		Items:           []CreateOrderItemInput{{VariantID: "v2", Quantity: 1}},
		ShippingAddress: testAddress(),
		Discount:        dec("500"),
	})

	require.NoError(t, err)
	assert.True(t, order.Total.IsZero())
}

func TestCreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateOrderInput
		wantErr error
	}{
		{
			name:    "no items",
			input:   CreateOrderInput{ShippingAddress: testAddress()},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name: "zero quantity",
			input: CreateOrderInput{
				Items:           []CreateOrderItemInput{{VariantID: "v1", Quantity: 0}},
				ShippingAddress: testAddress(),
			},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name: "negative discount",
			input: CreateOrderInput{
				Items:           []CreateOrderItemInput{{VariantID: "v1", Quantity: 1}},
				ShippingAddress: testAddress(),
				Discount:        dec("-1"),
			},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name: "unknown variant",
			input: CreateOrderInput{
				Items:           []CreateOrderItemInput{{VariantID: "ghost", Quantity: 1}},
				ShippingAddress: testAddress(),
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name: "over stock",
			input: CreateOrderInput{
				Items:           []CreateOrderItemInput{{VariantID: "v1", Quantity: 6}},
				ShippingAddress: testAddress(),
			},
			wantErr: apperrors.ErrBusinessRule,
		},
		{
			name: "repeated variant exceeds stock",
			input: CreateOrderInput{
				Items:           []CreateOrderItemInput{{VariantID: "v2", Quantity: 1}, {VariantID: "v2", Quantity: 1}},
				ShippingAddress: testAddress(),
			},
			wantErr: apperrors.ErrBusinessRule,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestOrderService(testCatalog(), nil)

			_, err := svc.CreateOrder(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, 0, repo.Len())
		})
	}
}

func TestCreateOrder_SnapshotSurvivesCatalogChange(t *testing.T) {
	catalog := new(mockCatalogRepository)
	svc, repo := newTestOrderService(catalog, nil)
	ctx := context.Background()

	product := &domain.Product{
		ID: "p9", Name: "Linen Shirt", Price: dec("40.00"), Active: true,
		Variants: []domain.ProductVariant{{ID: "v9", ProductID: "p9", SKU: "LS-M", Size: "M", Color: "Sand", Stock: 3}},
	}
	catalog.On("GetProductByVariantID", ctx, "v9").Return(product, nil)

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		Items:           []CreateOrderItemInput{{VariantID: "v9", Quantity: 1}},
		ShippingAddress: testAddress(),
	})
	require.NoError(t, err)

	product.Price = dec("95.00")
	product.Name = "Renamed"

	stored, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "40.00", stored.Items[0].Price.StringFixed(2))
	assert.Equal(t, "Linen Shirt", stored.Items[0].ProductName)
	catalog.AssertExpectations(t)
}

func TestCreateOrder_PublishFailureDoesNotFail(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, event.TopicOrderCreated, mock.AnythingOfType("*kafka.Event")).
		Return(errors.New("broker down"))
	svc, repo := newTestOrderService(testCatalog(), pub)

	order, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		Items:           []CreateOrderItemInput{{VariantID: "v1", Quantity: 1}},
		ShippingAddress: testAddress(),
	})

	require.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, 1, repo.Len())
	pub.AssertExpectations(t)
}

func seedOrders(t *testing.T, svc *OrderService, users ...string) []*domain.Order {
	t.Helper()
	out := make([]*domain.Order, 0, len(users))
	for _, u := range users {
		o, err := svc.CreateOrder(context.Background(), CreateOrderInput{
			UserID:          u,
			Items:           []CreateOrderItemInput{{VariantID: "v1", Quantity: 1}},
			ShippingAddress: testAddress(),
		})
		require.NoError(t, err)
		out = append(out, o)
	}
	return out
}

func TestGetOrder_Visibility(t *testing.T) {
	svc, _ := newTestOrderService(testCatalog(), nil)
	ctx := context.Background()
	orders := seedOrders(t, svc, "alice")

	got, err := svc.GetOrder(ctx, orders[0].ID, Actor{UserID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, orders[0].ID, got.ID)

	_, err = svc.GetOrder(ctx, orders[0].ID, Actor{UserID: "admin-1", Admin: true})
	require.NoError(t, err)

	_, err = svc.GetOrder(ctx, orders[0].ID, Actor{UserID: "bob"})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Order not found", appErr.Message)
	assert.Equal(t, 404, appErr.Status)
}

func TestListOrders_ScopedToActor(t *testing.T) {
	svc, _ := newTestOrderService(testCatalog(), nil)
	ctx := context.Background()
	seedOrders(t, svc, "alice", "bob", "alice")

	own, total, err := svc.ListOrders(ctx, Actor{UserID: "alice"}, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, o := range own {
		assert.Equal(t, "alice", o.UserID)
	}

	_, total, err = svc.ListOrders(ctx, Actor{UserID: "root", Admin: true}, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	_, _, err = svc.ListOrders(ctx, Actor{Admin: true}, repository.OrderFilter{Status: strPtr("LOST")})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestUpdateOrderStatus(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, event.TopicOrderCreated, mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, event.TopicOrderStatusChanged, mock.Anything).Return(nil)
	svc, _ := newTestOrderService(testCatalog(), pub)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()
	order := seedOrders(t, svc, "alice")[0]

	updated, err := svc.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusShipped, "TRK-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, updated.Status)
	assert.Equal(t, "TRK-1", updated.TrackingNumber)
	require.NotNil(t, updated.ShippedAt)
	assert.True(t, fixed.Equal(*updated.ShippedAt))

	svc.now = func() time.Time { return fixed.Add(time.Hour) }
	again, err := svc.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusShipped, "")
	require.NoError(t, err)
	assert.True(t, fixed.Equal(*again.ShippedAt))
	assert.Equal(t, "TRK-1", again.TrackingNumber)

	back, err := svc.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusPending, "")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, back.Status)

	pub.AssertNumberOfCalls(t, "Publish", 4)
}

func TestUpdateOrderStatus_Errors(t *testing.T) {
	svc, _ := newTestOrderService(testCatalog(), nil)
	ctx := context.Background()

	_, err := svc.UpdateOrderStatus(ctx, "missing", domain.OrderStatusPaid, "")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	order := seedOrders(t, svc, "alice")[0]
	_, err = svc.UpdateOrderStatus(ctx, order.ID, "LOST", "")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
