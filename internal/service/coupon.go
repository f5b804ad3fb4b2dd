package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/pricing"
	"github.com/Jinxhater/LUXE/internal/repository"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
)

// CouponService validates coupon codes against a subtotal.
type CouponService struct {
	repo   repository.CouponRepository
	logger *slog.Logger
}

// NewCouponService creates a new coupon service.
func NewCouponService(repo repository.CouponRepository, logger *slog.Logger) *CouponService {
	return &CouponService{repo: repo, logger: logger}
}

// Validate checks code against subtotal. The returned validation is always
// non-nil. When it is invalid the error carries the reason: NotFound for an
// unknown code and BusinessRule when the minimum order is not met.
func (s *CouponService) Validate(ctx context.Context, code string, subtotal decimal.Decimal) (*domain.CouponValidation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	result := &domain.CouponValidation{Code: code, Discount: decimal.Zero}

	if code == "" {
		result.Error = "Coupon code is required"
		return result, apperrors.InvalidInput(result.Error)
	}
	if subtotal.IsNegative() {
		result.Error = "Subtotal must not be negative"
		return result, apperrors.InvalidInput(result.Error)
	}

	coupon, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			couponValidations.WithLabelValues(couponResultUnknown).Inc()
			result.Error = "Invalid coupon code"
			return result, apperrors.NotFoundMessage(result.Error)
		}
		return result, fmt.Errorf("find coupon: %w", err)
	}

	if !coupon.MeetsMinimum(subtotal) {
		couponValidations.WithLabelValues(couponResultMinOrder).Inc()
		result.Error = coupon.MinimumOrderMessage()
		return result, apperrors.BusinessRule(result.Error)
	}

	couponValidations.WithLabelValues(couponResultValid).Inc()
	result.Valid = true
	result.Code = coupon.Code
	result.Discount = pricing.Discount(coupon, subtotal)
	return result, nil
}

// Discount validates code and returns the discount it grants. Every invalid
// outcome is reported as a business rule violation with the same message, so
// callers applying a coupon answer 400 rather than 404.
func (s *CouponService) Discount(ctx context.Context, code string, subtotal decimal.Decimal) (string, decimal.Decimal, error) {
	v, err := s.Validate(ctx, code, subtotal)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return "", decimal.Zero, apperrors.BusinessRule(appErr.Message)
		}
		return "", decimal.Zero, err
	}
	return v.Code, v.Discount, nil
}
