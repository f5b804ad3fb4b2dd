package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_created_total",
		Help: "Total number of orders created",
	})

	orderValue = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_order_total_amount",
		Help:    "Distribution of order totals in store currency",
		Buckets: []float64{10, 25, 50, 100, 150, 250, 500, 1000},
	})

	orderStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_order_status_updates_total",
		Help: "Total number of order status updates by target status",
	}, []string{"status"})

	couponValidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_coupon_validations_total",
		Help: "Total number of coupon validations by result",
	}, []string{"result"})

	cartOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_operations_total",
		Help: "Total number of cart mutations by operation",
	}, []string{"operation"})

	authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_auth_attempts_total",
		Help: "Total number of register and login attempts by result",
	}, []string{"action", "result"})

	eventPublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_event_publish_failures_total",
		Help: "Total number of domain events that could not be published",
	}, []string{"event"})
)

// Coupon validation results.
const (
	couponResultValid    = "valid"
	couponResultUnknown  = "unknown"
	couponResultMinOrder = "below_minimum"
)
