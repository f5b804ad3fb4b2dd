package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/repository"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
)

func strPtr(s string) *string { return &s }

func newOrder(id, userID string) *domain.Order {
	return &domain.Order{
		ID:     id,
		UserID: userID,
		Status: domain.OrderStatusPending,
		Items:  []domain.OrderItem{{ID: id + "-i", VariantID: "v1", Price: money("29.99"), Quantity: 1}},
	}
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	r := NewOrderRepository()
	ctx := context.Background()

	o := newOrder("o1", "u1")
	require.NoError(t, r.Create(ctx, o))

	// Mutating the caller's value does not reach the store.
	o.Items[0].Price = money("1")

	got, err := r.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.True(t, got.Items[0].Price.Equal(money("29.99")))

	err = r.Create(ctx, newOrder("o1", "u1"))
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists))

	_, err = r.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "Order not found", err.Error())
}

func TestOrderRepository_ListNewestFirstWithFilters(t *testing.T) {
	r := NewOrderRepository()
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, newOrder("o1", "u1")))
	require.NoError(t, r.Create(ctx, newOrder("o2", "u2")))
	require.NoError(t, r.Create(ctx, newOrder("o3", "u1")))
	_, err := r.UpdateStatus(ctx, "o3", domain.OrderStatusPaid, "", time.Now())
	require.NoError(t, err)

	all, total, err := r.List(ctx, repository.OrderFilter{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, "o3", all[0].ID)
	assert.Equal(t, "o1", all[2].ID)

	mine, total, err := r.List(ctx, repository.OrderFilter{UserID: strPtr("u1"), Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "o3", mine[0].ID)

	paid, total, err := r.List(ctx, repository.OrderFilter{Status: strPtr(domain.OrderStatusPaid), Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "o3", paid[0].ID)

	page2, total, err := r.List(ctx, repository.OrderFilter{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page2, 1)
	assert.Equal(t, "o1", page2[0].ID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	r := NewOrderRepository()
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, newOrder("o1", "u1")))

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	updated, err := r.UpdateStatus(ctx, "o1", domain.OrderStatusShipped, "1Z999", at)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, updated.Status)
	assert.Equal(t, "1Z999", updated.TrackingNumber)
	require.NotNil(t, updated.ShippedAt)
	assert.Equal(t, at, *updated.ShippedAt)

	// An empty tracking number keeps the previous one.
	updated, err = r.UpdateStatus(ctx, "o1", domain.OrderStatusDelivered, "", at.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "1Z999", updated.TrackingNumber)

	_, err = r.UpdateStatus(ctx, "missing", domain.OrderStatusPaid, "", at)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestOrderRepository_ConcurrentCreate(t *testing.T) {
	r := NewOrderRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Create(ctx, newOrder(fmt.Sprintf("o%d", i), "u"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, r.Len())
}
