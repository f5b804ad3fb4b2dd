package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinxhater/LUXE/internal/domain"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
)

func TestCouponRepository_FindByCode(t *testing.T) {
	r := NewCouponRepository()
	ctx := context.Background()

	for _, code := range []string{"WELCOME10", "welcome10", " Welcome10 "} {
		c, err := r.FindByCode(ctx, code)
		require.NoError(t, err, code)
		assert.Equal(t, "WELCOME10", c.Code)
		assert.Equal(t, domain.CouponTypePercent, c.Type)
		assert.Nil(t, c.MaxDiscount)
	}

	save, err := r.FindByCode(ctx, "save20")
	require.NoError(t, err)
	assert.Equal(t, domain.CouponTypeFixed, save.Type)
	require.NotNil(t, save.MaxDiscount)
	assert.True(t, save.MaxDiscount.Equal(money("20")))

	summer, err := r.FindByCode(ctx, "SUMMER25")
	require.NoError(t, err)
	assert.True(t, summer.MinOrder.Equal(money("150")))
	assert.True(t, summer.MaxDiscount.Equal(money("50")))
}

func TestCouponRepository_Unknown(t *testing.T) {
	_, err := NewCouponRepository().FindByCode(context.Background(), "FREESTUFF")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "Invalid coupon code", err.Error())
}
