package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItem_LineTotal(t *testing.T) {
	item := OrderItem{Price: dec("19.99"), Quantity: 3}
	assert.True(t, item.LineTotal().Equal(dec("59.97")))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses() {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("pending"))
	assert.False(t, IsValidStatus("SHIPPING"))
	assert.False(t, IsValidStatus(""))
}

func TestSetStatus_Timestamps(t *testing.T) {
	o := &Order{Status: OrderStatusPending}
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	o.SetStatus(OrderStatusPaid, t1)
	require.NotNil(t, o.PaidAt)
	assert.Equal(t, t1, *o.PaidAt)
	assert.Nil(t, o.ShippedAt)

	// Repeating PAID keeps the first timestamp.
	o.SetStatus(OrderStatusPaid, t2)
	assert.Equal(t, t1, *o.PaidAt)
	assert.Equal(t, t2, o.UpdatedAt)

	o.SetStatus(OrderStatusShipped, t2)
	require.NotNil(t, o.ShippedAt)
	o.SetStatus(OrderStatusDelivered, t2)
	require.NotNil(t, o.DeliveredAt)
}

func TestSetStatus_Permissive(t *testing.T) {
	o := &Order{Status: OrderStatusDelivered}
	now := time.Now()

	o.SetStatus(OrderStatusPending, now)
	assert.Equal(t, OrderStatusPending, o.Status)

	o.SetStatus(OrderStatusCancelled, now)
	assert.Equal(t, OrderStatusCancelled, o.Status)
	assert.Nil(t, o.PaidAt)
}

func TestClone_IsDeep(t *testing.T) {
	paid := time.Now()
	o := &Order{
		Items:          []OrderItem{{ID: "i1", Price: dec("10"), Quantity: 1}},
		BillingAddress: &Address{City: "Paris"},
		PaidAt:         &paid,
	}

	c := o.Clone()
	c.Items[0].Price = dec("99")
	c.BillingAddress.City = "Lyon"
	*c.PaidAt = paid.Add(time.Hour)

	assert.True(t, o.Items[0].Price.Equal(dec("10")))
	assert.Equal(t, "Paris", o.BillingAddress.City)
	assert.Equal(t, paid, *o.PaidAt)
}

func TestNewOrderNumber_Format(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	re := regexp.MustCompile(`^ORD-1700000000123-[0-9A-Z]{5}$`)

	seen := make(map[string]bool)
	for range 50 {
		n, err := NewOrderNumber(now)
		require.NoError(t, err)
		assert.Regexp(t, re, n)
		seen[n] = true
	}
	assert.Greater(t, len(seen), 1)
}
