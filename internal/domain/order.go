package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Order status constants.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusPaid       = "PAID"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
	OrderStatusRefunded   = "REFUNDED"
)

// GuestUserID identifies orders placed without a session.
const GuestUserID = "guest"

// Order is an immutable snapshot of a checkout. Only status, its timestamps
// and the tracking number change after creation.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	UserID          string          `json:"user_id"`
	Status          string          `json:"status"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	ShippingAddress Address         `json:"shipping_address"`
	BillingAddress  *Address        `json:"billing_address,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	TrackingNumber  string          `json:"tracking_number,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	ShippedAt       *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
}

// Address represents a shipping or billing address.
type Address struct {
	FullName    string `json:"full_name" validate:"required"`
	AddressLine string `json:"address_line" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

// OrderItem is a line copied from the catalog at order time.
type OrderItem struct {
	ID          string          `json:"id"`
	VariantID   string          `json:"variant_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Image       string          `json:"image"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// LineTotal returns Price × Quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ValidStatuses returns all valid order statuses.
func ValidStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusRefunded,
	}
}

// IsValidStatus checks if a status string is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// SetStatus moves the order to status. Any status may follow any other.
// PAID, SHIPPED and DELIVERED record their timestamp the first time only.
func (o *Order) SetStatus(status string, now time.Time) {
	o.Status = status
	o.UpdatedAt = now

	switch status {
	case OrderStatusPaid:
		if o.PaidAt == nil {
			o.PaidAt = &now
		}
	case OrderStatusShipped:
		if o.ShippedAt == nil {
			o.ShippedAt = &now
		}
	case OrderStatusDelivered:
		if o.DeliveredAt == nil {
			o.DeliveredAt = &now
		}
	}
}

// Clone returns a deep copy so stored orders cannot be mutated by callers.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = append([]OrderItem(nil), o.Items...)
	if o.BillingAddress != nil {
		addr := *o.BillingAddress
		c.BillingAddress = &addr
	}
	c.PaidAt = cloneTime(o.PaidAt)
	c.ShippedAt = cloneTime(o.ShippedAt)
	c.DeliveredAt = cloneTime(o.DeliveredAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// orderSuffixLen is the number of random characters in an order number.
const orderSuffixLen = 5

// NewOrderNumber returns "ORD-<unix ms>-<5 random base-36 chars>". It is
// unique with high probability only; callers do not check for collisions.
func NewOrderNumber(now time.Time) (string, error) {
	suffix := make([]byte, orderSuffixLen)
	limit := big.NewInt(int64(len(base36)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate order number: %w", err)
		}
		suffix[i] = base36[n.Int64()]
	}
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix), nil
}
