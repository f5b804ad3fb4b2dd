package http

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Jinxhater/LUXE/internal/service"
	"github.com/Jinxhater/LUXE/pkg/httputil"
	"github.com/Jinxhater/LUXE/pkg/validator"
)

// CouponHandler handles coupon validation.
type CouponHandler struct {
	service *service.CouponService
	logger  *slog.Logger
}

// NewCouponHandler creates a new coupon HTTP handler.
func NewCouponHandler(svc *service.CouponService, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{service: svc, logger: logger}
}

// ValidateCouponRequest is the JSON request body for POST /api/coupons/validate.
type ValidateCouponRequest struct {
	Code     string          `json:"code" validate:"required"`
	Subtotal decimal.Decimal `json:"subtotal" validate:"money"`
}

// ValidateCouponResponse is returned for a usable coupon.
type ValidateCouponResponse struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
}

// Validate handles POST /api/coupons/validate. Every invalid code, unknown
// or below its minimum, is answered with 400.
func (h *CouponHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateCouponRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	code, discount, err := h.service.Discount(r.Context(), req.Code, req.Subtotal)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, http.StatusOK, ValidateCouponResponse{Code: code, Discount: discount})
}
