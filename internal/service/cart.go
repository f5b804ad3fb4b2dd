package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/pricing"
)

// CartView is a cart together with its derived prices.
type CartView struct {
	Cart    *domain.Cart    `json:"cart"`
	Summary pricing.Summary `json:"summary"`
}

// CartService mutates and prices carts supplied by the client. It holds no
// cart state of its own.
type CartService struct {
	catalog *CatalogService
	coupons *CouponService
	logger  *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(catalog *CatalogService, coupons *CouponService, logger *slog.Logger) *CartService {
	return &CartService{catalog: catalog, coupons: coupons, logger: logger}
}

func view(cart *domain.Cart) *CartView {
	cart.Normalize()
	return &CartView{Cart: cart, Summary: cart.Summary()}
}

// Empty returns a new empty cart.
func (s *CartService) Empty() *CartView {
	return view(domain.NewCart())
}

// Quote prices cart without changing it.
func (s *CartService) Quote(_ context.Context, cart *domain.Cart) *CartView {
	return view(cart)
}

// AddItem adds quantity of the variant. A quantity below 1 adds one.
func (s *CartService) AddItem(ctx context.Context, cart *domain.Cart, variantID string, quantity int) (*CartView, error) {
	product, variant, err := s.catalog.LookupVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		quantity = 1
	}
	if err := cart.AddItem(product, variant, quantity); err != nil {
		return nil, fmt.Errorf("add %s to cart: %w", variantID, err)
	}

	cartOperations.WithLabelValues("add_item").Inc()
	return view(cart), nil
}

// UpdateQuantity clamps the line's quantity into [1, stock].
func (s *CartService) UpdateQuantity(_ context.Context, cart *domain.Cart, variantID string, quantity int) *CartView {
	cart.UpdateQuantity(variantID, quantity)
	cartOperations.WithLabelValues("update_quantity").Inc()
	return view(cart)
}

func (s *CartService) RemoveItem(_ context.Context, cart *domain.Cart, variantID string) *CartView {
	cart.RemoveItem(variantID)
	cartOperations.WithLabelValues("remove_item").Inc()
	return view(cart)
}

// ApplyCoupon validates code against the cart subtotal and replaces any
// previously applied coupon.
func (s *CartService) ApplyCoupon(ctx context.Context, cart *domain.Cart, code string) (*CartView, error) {
	code, discount, err := s.coupons.Discount(ctx, code, cart.Subtotal())
	if err != nil {
		return nil, err
	}
	cart.ApplyCoupon(code, discount)

	cartOperations.WithLabelValues("apply_coupon").Inc()
	s.logger.DebugContext(ctx, "coupon applied",
		slog.String("code", code),
		slog.String("discount", discount.StringFixed(2)),
	)
	return view(cart), nil
}

func (s *CartService) RemoveCoupon(_ context.Context, cart *domain.Cart) *CartView {
	cart.RemoveCoupon()
	cartOperations.WithLabelValues("remove_coupon").Inc()
	return view(cart)
}

// Clear empties cart and its coupon. A nil cart yields a new empty one.
func (s *CartService) Clear(_ context.Context, cart *domain.Cart) *CartView {
	if cart == nil {
		cart = domain.NewCart()
	}
	cart.Clear()
	cartOperations.WithLabelValues("clear").Inc()
	return view(cart)
}
