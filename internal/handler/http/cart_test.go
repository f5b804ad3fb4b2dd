package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/service"
)

func addToCart(t *testing.T, h http.Handler, cart *domain.Cart, variantID string, qty int) *service.CartView {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/cart/items", AddItemRequest{Cart: cart, VariantID: variantID, Quantity: qty})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[*service.CartView](t, rec).Data
}

func TestGetCart_Empty(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/cart", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	view := decode[*service.CartView](t, rec).Data
	assert.Empty(t, view.Cart.Items)
	assert.True(t, view.Summary.Total.IsZero())
}

func TestCart_AddUpdateRemove(t *testing.T) {
	h := newTestRouter(t)

	view := addToCart(t, h, nil, "v1", 2)
	require.Len(t, view.Cart.Items, 1)
	assert.Equal(t, "Classic White T-Shirt", view.Cart.Items[0].ProductName)
	assert.Equal(t, "59.98", view.Summary.Subtotal.StringFixed(2))
	assert.Equal(t, "9.99", view.Summary.Shipping.StringFixed(2))
	assert.Equal(t, "69.97", view.Summary.Total.StringFixed(2))

	rec := do(t, h, http.MethodPut, "/api/cart/items/v1", UpdateItemRequest{Cart: view.Cart, Quantity: 4})
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[*service.CartView](t, rec).Data
	assert.Equal(t, 4, view.Cart.Items[0].Quantity)
	assert.True(t, view.Summary.Shipping.IsZero())

	rec = do(t, h, http.MethodDelete, "/api/cart/items/v1", CartRequest{Cart: view.Cart})
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[*service.CartView](t, rec).Data
	assert.Empty(t, view.Cart.Items)
}

func TestCart_AddUnknownVariant(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/cart/items", AddItemRequest{VariantID: "nope", Quantity: 1})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCart_AddRequiresVariant(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/cart/items", AddItemRequest{Quantity: 1})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode[any](t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
	assert.Contains(t, env.Fields, "variant_id")
}

func TestCart_RejectsTamperedLine(t *testing.T) {
	h := newTestRouter(t)
	view := addToCart(t, h, nil, "v1", 1)
	view.Cart.Items[0].Quantity = 0

	rec := do(t, h, http.MethodPost, "/api/cart/quote", CartRequest{Cart: view.Cart})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[any](t, rec).Code)
}

func TestCart_CouponLifecycle(t *testing.T) {
	h := newTestRouter(t)
	view := addToCart(t, h, nil, "v1", 2)

	rec := do(t, h, http.MethodPost, "/api/cart/coupon", ApplyCouponRequest{Cart: view.Cart, Code: "welcome10"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view = decode[*service.CartView](t, rec).Data
	require.NotNil(t, view.Cart.Coupon)
	assert.Equal(t, "WELCOME10", view.Cart.Coupon.Code)
	assert.Equal(t, "6.00", view.Summary.Discount.StringFixed(2))
	assert.Equal(t, "63.97", view.Summary.Total.StringFixed(2))

	rec = do(t, h, http.MethodPost, "/api/cart/quote", CartRequest{Cart: view.Cart})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "63.97", decode[*service.CartView](t, rec).Data.Summary.Total.StringFixed(2))

	rec = do(t, h, http.MethodDelete, "/api/cart/coupon", CartRequest{Cart: view.Cart})
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[*service.CartView](t, rec).Data
	assert.Nil(t, view.Cart.Coupon)
	assert.True(t, view.Summary.Discount.IsZero())
}

func TestCart_CouponBelowMinimum(t *testing.T) {
	h := newTestRouter(t)
	view := addToCart(t, h, nil, "v1", 1)

	rec := do(t, h, http.MethodPost, "/api/cart/coupon", ApplyCouponRequest{Cart: view.Cart, Code: "WELCOME10"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode[any](t, rec)
	assert.Equal(t, "BUSINESS_RULE_VIOLATION", env.Code)
	assert.Equal(t, "Minimum order amount is $50", env.Error)
}

func TestCart_Clear(t *testing.T) {
	h := newTestRouter(t)
	addToCart(t, h, nil, "v1", 1)

	rec := do(t, h, http.MethodDelete, "/api/cart", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[*service.CartView](t, rec).Data
	assert.Empty(t, view.Cart.Items)
	assert.Nil(t, view.Cart.Coupon)
}

func TestValidateCoupon(t *testing.T) {
	tests := []struct {
		name         string
		req          map[string]any
		wantStatus   int
		wantCode     string
		wantDiscount string
		wantError    string
	}{
		{"valid", map[string]any{"code": "welcome10", "subtotal": 50}, http.StatusOK, "WELCOME10", "5.00", ""},
		{"fixed", map[string]any{"code": "SAVE20", "subtotal": "100"}, http.StatusOK, "SAVE20", "20.00", ""},
		{"below minimum", map[string]any{"code": "WELCOME10", "subtotal": 49.99}, http.StatusBadRequest, "", "", "Minimum order amount is $50"},
		{"unknown", map[string]any{"code": "FREESTUFF", "subtotal": 500}, http.StatusBadRequest, "", "", "Invalid coupon code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t)

			rec := do(t, h, http.MethodPost, "/api/coupons/validate", tt.req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			env := decode[ValidateCouponResponse](t, rec)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantCode, env.Data.Code)
				assert.Equal(t, tt.wantDiscount, env.Data.Discount.StringFixed(2))
				return
			}
			assert.Equal(t, tt.wantError, env.Error)
		})
	}
}
