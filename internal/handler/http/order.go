package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/repository"
	"github.com/Jinxhater/LUXE/internal/service"
	"github.com/Jinxhater/LUXE/pkg/httputil"
	"github.com/Jinxhater/LUXE/pkg/middleware"
	"github.com/Jinxhater/LUXE/pkg/validator"
)

// OrderHandler handles HTTP requests for order endpoints.
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(svc *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// CreateOrderItemRequest is the JSON request body for an order line item.
// Prices are looked up from the catalog and never taken from the client.
type CreateOrderItemRequest struct {
	VariantID string `json:"variant_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// CreateOrderRequest is the JSON request body for creating an order.
type CreateOrderRequest struct {
	Items           []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress *domain.Address          `json:"shipping_address" validate:"required"`
	BillingAddress  *domain.Address          `json:"billing_address" validate:"omitempty"`
	Discount        decimal.Decimal          `json:"discount" validate:"money"`
	CouponCode      string                   `json:"coupon_code" validate:"max=50"`
	Notes           string                   `json:"notes" validate:"max=1000"`
}

// UpdateStatusRequest is the JSON request body for updating order status.
type UpdateStatusRequest struct {
	Status         string `json:"status" validate:"required"`
	TrackingNumber string `json:"tracking_number" validate:"max=100"`
}

// --- Handlers ---

// CreateOrder handles POST /api/orders. Anonymous callers order as guest.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	items := make([]service.CreateOrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.CreateOrderItemInput{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		}
	}

	input := service.CreateOrderInput{
		UserID:          middleware.UserIDFromContext(r.Context()),
		Items:           items,
		ShippingAddress: *req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Discount:        req.Discount,
		CouponCode:      req.CouponCode,
		Notes:           req.Notes,
	}

	order, err := h.service.CreateOrder(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, http.StatusCreated, order)
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter := repository.OrderFilter{
		Page:    1,
		PerPage: service.DefaultOrdersPerPage,
	}

	if v := r.URL.Query().Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: "page must be a valid positive integer",
				Code:  "INVALID_PARAMETER",
			})
			return
		}
		filter.Page = page
	}
	if v := r.URL.Query().Get("per_page"); v != "" {
		perPage, err := strconv.Atoi(v)
		if err != nil || perPage < 1 || perPage > service.MaxOrdersPerPage {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: "per_page must be a valid integer between 1 and 100",
				Code:  "INVALID_PARAMETER",
			})
			return
		}
		filter.PerPage = perPage
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	orders, total, err := h.service.ListOrders(r.Context(), actorFrom(r), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteList(w, orders, httputil.NewPagination(total, filter.Page, filter.PerPage))
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"), actorFrom(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, order)
}

// UpdateOrderStatus handles PATCH /api/orders/{id}
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	order, err := h.service.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), req.Status, req.TrackingNumber)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, order)
}
