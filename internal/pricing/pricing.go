// Package pricing derives cart and order totals. Every function is pure and
// operates on decimal money so repeated sums do not drift.
package pricing

import "github.com/shopspring/decimal"

var (
	// FreeShippingThreshold is exclusive: a subtotal must exceed it.
	FreeShippingThreshold = decimal.NewFromInt(100)

	// FlatShippingFee applies at or below the threshold.
	FlatShippingFee = decimal.RequireFromString("9.99")
)

// MoneyPlaces is the number of decimal places discounts are rounded to.
const MoneyPlaces = 2

// Line is anything that contributes unit price × quantity to a subtotal.
type Line interface {
	LineTotal() decimal.Decimal
}

// Discounter computes the discount it grants on a subtotal.
type Discounter interface {
	DiscountFor(subtotal decimal.Decimal) decimal.Decimal
}

// Summary is the derived price breakdown shown with a cart or an order.
type Summary struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// Subtotal sums LineTotal over lines. An empty slice yields exactly zero.
func Subtotal[L Line](lines []L) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// Shipping returns zero above FreeShippingThreshold and FlatShippingFee otherwise.
func Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShippingFee
}

// Discount returns the discount d grants on subtotal, or zero when d is nil.
func Discount(d Discounter, subtotal decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return d.DiscountFor(subtotal)
}

// RoundMoney rounds half away from zero to MoneyPlaces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// Total returns subtotal + shipping - discount, never below zero.
func Total(subtotal, shipping, discount decimal.Decimal) decimal.Decimal {
	total := subtotal.Add(shipping).Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Summarize builds a Summary from an already computed subtotal and discount.
func Summarize(subtotal, discount decimal.Decimal, itemCount int) Summary {
	shipping := Shipping(subtotal)
	return Summary{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Discount:  discount,
		Total:     Total(subtotal, shipping, discount),
		ItemCount: itemCount,
	}
}
