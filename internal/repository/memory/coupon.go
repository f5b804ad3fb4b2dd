package memory

import (
	"context"
	"strings"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/repository"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
)

var seedCoupons = []domain.Coupon{
	{Code: "WELCOME10", Type: domain.CouponTypePercent, Value: money("10"), MinOrder: money("50")},
	{Code: "SAVE20", Type: domain.CouponTypeFixed, Value: money("20"), MinOrder: money("100"), MaxDiscount: moneyPtr("20")},
	{Code: "SUMMER25", Type: domain.CouponTypePercent, Value: money("25"), MinOrder: money("150"), MaxDiscount: moneyPtr("50")},
}

// CouponRepository is a read-only coupon table keyed by upper-cased code.
type CouponRepository struct {
	coupons map[string]domain.Coupon
}

var _ repository.CouponRepository = (*CouponRepository)(nil)

// NewCouponRepository returns the storefront coupon table.
func NewCouponRepository() *CouponRepository {
	return NewCouponRepositoryFrom(seedCoupons)
}

// NewCouponRepositoryFrom builds a table from coupons.
func NewCouponRepositoryFrom(coupons []domain.Coupon) *CouponRepository {
	m := make(map[string]domain.Coupon, len(coupons))
	for _, c := range coupons {
		m[strings.ToUpper(c.Code)] = c
	}
	return &CouponRepository{coupons: m}
}

func (r *CouponRepository) FindByCode(_ context.Context, code string) (*domain.Coupon, error) {
	c, ok := r.coupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, apperrors.NotFoundMessage("Invalid coupon code")
	}
	return &c, nil
}
