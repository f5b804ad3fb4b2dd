package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Jinxhater/LUXE/internal/pricing"
)

// CouponType selects how a coupon's value is applied.
type CouponType string

const (
	CouponTypePercent CouponType = "PERCENT"
	CouponTypeFixed   CouponType = "FIXED"
)

// Coupon is a static discount definition.
type Coupon struct {
	Code        string           `json:"code"`
	Type        CouponType       `json:"type"`
	Value       decimal.Decimal  `json:"value"`
	MinOrder    decimal.Decimal  `json:"min_order"`
	MaxDiscount *decimal.Decimal `json:"max_discount,omitempty"`
}

// MeetsMinimum reports whether subtotal reaches the coupon's minimum order.
func (c *Coupon) MeetsMinimum(subtotal decimal.Decimal) bool {
	return !subtotal.LessThan(c.MinOrder)
}

// MinimumOrderMessage is shown when a subtotal is below MinOrder.
func (c *Coupon) MinimumOrderMessage() string {
	return fmt.Sprintf("Minimum order amount is $%s", c.MinOrder.String())
}

// DiscountFor computes the rounded discount on subtotal. Percentage coupons are
// capped at MaxDiscount; fixed coupons never are. Minimum order is not checked.
func (c *Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.Type {
	case CouponTypePercent:
		discount = subtotal.Mul(c.Value).Div(decimal.NewFromInt(100))
		if c.MaxDiscount != nil && discount.GreaterThan(*c.MaxDiscount) {
			discount = *c.MaxDiscount
		}
	case CouponTypeFixed:
		discount = c.Value
	default:
		return decimal.Zero
	}
	return pricing.RoundMoney(discount)
}

var _ pricing.Discounter = (*Coupon)(nil)

// CouponValidation is the outcome of checking a code against a subtotal.
type CouponValidation struct {
	Valid    bool            `json:"valid"`
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	Error    string          `json:"error,omitempty"`
}
