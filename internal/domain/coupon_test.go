package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func capped(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestCoupon_DiscountFor(t *testing.T) {
	welcome := Coupon{Code: "WELCOME10", Type: CouponTypePercent, Value: dec("10"), MinOrder: dec("50")}
	save := Coupon{Code: "SAVE20", Type: CouponTypeFixed, Value: dec("20"), MinOrder: dec("100"), MaxDiscount: capped("20")}
	summer := Coupon{Code: "SUMMER25", Type: CouponTypePercent, Value: dec("25"), MinOrder: dec("150"), MaxDiscount: capped("50")}

	tests := []struct {
		name     string
		coupon   Coupon
		subtotal string
		want     string
	}{
		{"percent", welcome, "50", "5.00"},
		{"percent rounds", welcome, "54.45", "5.45"},
		{"percent rounds half up", welcome, "50.05", "5.01"},
		{"fixed", save, "100", "20.00"},
		{"fixed exceeds subtotal", save, "5", "20.00"},
		{"percent under cap", summer, "150", "37.50"},
		{"percent capped", summer, "400", "50.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coupon.DiscountFor(dec(tt.subtotal))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestCoupon_MeetsMinimum(t *testing.T) {
	c := Coupon{MinOrder: dec("50")}
	assert.True(t, c.MeetsMinimum(dec("50")))
	assert.True(t, c.MeetsMinimum(dec("50.01")))
	assert.False(t, c.MeetsMinimum(dec("49.99")))
}

func TestCoupon_MinimumOrderMessage(t *testing.T) {
	assert.Equal(t, "Minimum order amount is $50", (&Coupon{MinOrder: dec("50")}).MinimumOrderMessage())
	assert.Equal(t, "Minimum order amount is $150", (&Coupon{MinOrder: dec("150")}).MinimumOrderMessage())
}

func TestCoupon_UnknownTypeGivesZero(t *testing.T) {
	c := Coupon{Type: "BOGO", Value: dec("10")}
	assert.True(t, c.DiscountFor(dec("100")).IsZero())
}
