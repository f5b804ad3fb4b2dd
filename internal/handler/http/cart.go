package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/service"
	"github.com/Jinxhater/LUXE/pkg/httputil"
	"github.com/Jinxhater/LUXE/pkg/validator"
)

// CartHandler prices and mutates carts held by the client. Every request
// carries the current cart and every response returns the new one.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{service: svc, logger: logger}
}

// --- Request DTOs ---

// CartRequest carries the client's cart.
type CartRequest struct {
	Cart *domain.Cart `json:"cart"`
}

// AddItemRequest is the JSON request body for adding a variant.
type AddItemRequest struct {
	Cart      *domain.Cart `json:"cart"`
	VariantID string       `json:"variant_id" validate:"required"`
	Quantity  int          `json:"quantity" validate:"gte=0"`
}

// UpdateItemRequest is the JSON request body for changing a line quantity.
type UpdateItemRequest struct {
	Cart     *domain.Cart `json:"cart"`
	Quantity int          `json:"quantity"`
}

// ApplyCouponRequest is the JSON request body for applying a coupon.
type ApplyCouponRequest struct {
	Cart *domain.Cart `json:"cart"`
	Code string       `json:"code" validate:"required"`
}

// cartOrNew returns c, or a new empty cart when the client sent none.
func cartOrNew(c *domain.Cart) *domain.Cart {
	if c == nil {
		return domain.NewCart()
	}
	return c
}

// --- Handlers ---

// GetCart handles GET /api/cart. Carts live on the client, so the server
// always answers with an empty one.
func (h *CartHandler) GetCart(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteData(w, http.StatusOK, h.service.Empty())
}

// Quote handles POST /api/cart/quote
func (h *CartHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req CartRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, h.service.Quote(r.Context(), cartOrNew(req.Cart)))
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	view, err := h.service.AddItem(r.Context(), cartOrNew(req.Cart), req.VariantID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}

// UpdateItem handles PUT /api/cart/items/{variantId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	variantID := chi.URLParam(r, "variantId")
	httputil.WriteData(w, http.StatusOK, h.service.UpdateQuantity(r.Context(), cartOrNew(req.Cart), variantID, req.Quantity))
}

// RemoveItem handles DELETE /api/cart/items/{variantId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req CartRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	variantID := chi.URLParam(r, "variantId")
	httputil.WriteData(w, http.StatusOK, h.service.RemoveItem(r.Context(), cartOrNew(req.Cart), variantID))
}

// ApplyCoupon handles POST /api/cart/coupon
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req ApplyCouponRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	view, err := h.service.ApplyCoupon(r.Context(), cartOrNew(req.Cart), req.Code)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}

// RemoveCoupon handles DELETE /api/cart/coupon
func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	var req CartRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, h.service.RemoveCoupon(r.Context(), cartOrNew(req.Cart)))
}

// ClearCart handles DELETE /api/cart. Any body is ignored.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	httputil.WriteData(w, http.StatusOK, h.service.Clear(r.Context(), nil))
}
