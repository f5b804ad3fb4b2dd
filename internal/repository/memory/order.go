package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/repository"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
	"github.com/Jinxhater/LUXE/pkg/pagination"
)

// OrderRepository is an append-only, process-local order store. Arrival
// order is the only ordering; concurrent status updates are last-writer-wins.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
	byID   map[string]*domain.Order
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{byID: make(map[string]*domain.Order)}
}

func (r *OrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[order.ID]; ok {
		return apperrors.AlreadyExists("order", "id", order.ID)
	}
	stored := order.Clone()
	r.orders = append(r.orders, stored)
	r.byID[stored.ID] = stored
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFoundMessage("Order not found")
	}
	return o.Clone(), nil
}

// List returns matching orders newest first.
func (r *OrderRepository) List(_ context.Context, filter repository.OrderFilter) ([]domain.Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		o := r.orders[i]
		if filter.UserID != nil && o.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		matched = append(matched, *o.Clone())
	}

	return pagination.Slice(matched, pagination.New(filter.Page, filter.PerPage)), len(matched), nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id, status, trackingNumber string, at time.Time) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFoundMessage("Order not found")
	}
	o.SetStatus(status, at)
	if trackingNumber != "" {
		o.TrackingNumber = trackingNumber
	}
	return o.Clone(), nil
}

// Len returns the number of stored orders.
func (r *OrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
