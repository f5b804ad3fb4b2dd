package domain

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
	"github.com/Jinxhater/LUXE/internal/pricing"
)

// ErrOutOfStock is returned when adding a variant that has no stock.
var ErrOutOfStock = apperrors.BusinessRule("Product variant is out of stock")

// CartLineItem is one variant in a cart with display fields captured when it
// was added. Stock is a snapshot used only to cap Quantity.
type CartLineItem struct {
	VariantID   string          `json:"variant_id" validate:"required"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSlug string          `json:"product_slug"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	ColorHex    string          `json:"color_hex,omitempty"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price" validate:"money"`
	Quantity    int             `json:"quantity" validate:"gte=1"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

// LineTotal returns Price × Quantity.
func (i CartLineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// AppliedCoupon is the single coupon a cart may carry.
type AppliedCoupon struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
}

// Cart is held by the client; the server mutates and prices a copy of it.
// There is at most one line per variant and at most one coupon.
type Cart struct {
	Items  []CartLineItem `json:"items" validate:"dive"`
	Coupon *AppliedCoupon `json:"coupon,omitempty"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []CartLineItem{}}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// FindItemIndex returns the index of the line for variantID, or -1.
func (c *Cart) FindItemIndex(variantID string) int {
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			return i
		}
	}
	return -1
}

// AddItem adds quantity of variant. An existing line grows up to the variant's
// stock and any excess is dropped; a new line is clamped into [1, stock].
func (c *Cart) AddItem(p *Product, v *ProductVariant, quantity int) error {
	if v.Stock <= 0 {
		return ErrOutOfStock
	}

	if idx := c.FindItemIndex(v.ID); idx >= 0 {
		line := &c.Items[idx]
		line.Stock = v.Stock
		line.Quantity = clamp(line.Quantity+quantity, 1, v.Stock)
		return nil
	}

	c.Items = append(c.Items, CartLineItem{
		VariantID:   v.ID,
		ProductID:   p.ID,
		ProductName: p.Name,
		ProductSlug: p.Slug,
		Size:        v.Size,
		Color:       v.Color,
		ColorHex:    v.ColorHex,
		Image:       p.PrimaryImage(),
		Price:       v.EffectivePrice(p),
		Quantity:    clamp(quantity, 1, v.Stock),
		Stock:       v.Stock,
	})
	return nil
}

// UpdateQuantity clamps quantity into [1, line stock]. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(variantID string, quantity int) {
	idx := c.FindItemIndex(variantID)
	if idx < 0 {
		return
	}
	line := &c.Items[idx]
	line.Quantity = clamp(quantity, 1, max(line.Stock, 1))
}

// RemoveItem deletes the line for variantID if present.
func (c *Cart) RemoveItem(variantID string) {
	idx := c.FindItemIndex(variantID)
	if idx < 0 {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// ApplyCoupon replaces any previously applied coupon.
func (c *Cart) ApplyCoupon(code string, discount decimal.Decimal) {
	c.Coupon = &AppliedCoupon{Code: code, Discount: discount}
}

func (c *Cart) RemoveCoupon() {
	c.Coupon = nil
}

// Clear empties items and coupon together.
func (c *Cart) Clear() {
	c.Items = []CartLineItem{}
	c.Coupon = nil
}

// Subtotal sums line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	return pricing.Subtotal(c.Items)
}

// ItemCount returns the total quantity across lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Discount returns the applied coupon's stored discount. It is not
// recomputed when the subtotal changes after the coupon was applied.
func (c *Cart) Discount() decimal.Decimal {
	if c.Coupon == nil {
		return decimal.Zero
	}
	return c.Coupon.Discount
}

func (c *Cart) Shipping() decimal.Decimal {
	return pricing.Shipping(c.Subtotal())
}

func (c *Cart) Total() decimal.Decimal {
	return pricing.Total(c.Subtotal(), c.Shipping(), c.Discount())
}

// Summary returns the full price breakdown.
func (c *Cart) Summary() pricing.Summary {
	return pricing.Summarize(c.Subtotal(), c.Discount(), c.ItemCount())
}

// Normalize replaces a nil item slice so the cart always encodes items as [].
func (c *Cart) Normalize() {
	if c.Items == nil {
		c.Items = []CartLineItem{}
	}
}
