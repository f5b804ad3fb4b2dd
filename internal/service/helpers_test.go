package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/repository"
	"github.com/Jinxhater/LUXE/internal/repository/memory"
)

// --- Mock Catalog ---

type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockCatalogRepository) GetVariantByID(ctx context.Context, id string) (*domain.ProductVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductVariant), args.Error(1)
}

func (m *mockCatalogRepository) GetProductByVariantID(ctx context.Context, variantID string) (*domain.Product, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockCatalogRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}

func (m *mockCatalogRepository) ListCategories(ctx context.Context) ([]domain.CategoryWithCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CategoryWithCount), args.Error(1)
}

func (m *mockCatalogRepository) Summary(ctx context.Context) (domain.CatalogSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CatalogSummary), args.Error(1)
}

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testCatalog has a 60.00 jacket (stock 5), a 15.00 scarf whose variant
// overrides the price to 12.50 (stock 1) and a sold-out cap.
func testCatalog() *memory.CatalogRepository {
	override := dec("12.50")
	return memory.NewCatalogRepositoryFrom(
		[]domain.Category{{ID: "c1", Name: "Outerwear", Slug: "outerwear"}},
		[]domain.Product{
			{
				ID: "p1", Name: "Wool Jacket", Slug: "wool-jacket", Price: dec("60.00"),
				CategoryID: "c1", Images: []string{"/img/jacket.jpg"}, Active: true,
				Variants: []domain.ProductVariant{
					{ID: "v1", ProductID: "p1", SKU: "WJ-M", Size: "M", Color: "Navy", Stock: 5},
				},
			},
			{
				ID: "p2", Name: "Silk Scarf", Slug: "silk-scarf", Price: dec("15.00"),
				CategoryID: "c1", Active: true,
				Variants: []domain.ProductVariant{
					{ID: "v2", ProductID: "p2", SKU: "SS-OS", Size: "OS", Color: "Red", Stock: 1, Price: &override},
				},
			},
			{
				ID: "p3", Name: "Cap", Slug: "cap", Price: dec("20.00"),
				CategoryID: "c1", Active: true,
				Variants: []domain.ProductVariant{
					{ID: "v3", ProductID: "p3", SKU: "CAP-OS", Size: "OS", Color: "Black", Stock: 0},
				},
			},
		},
	)
}

func newCouponService() *CouponService {
	return NewCouponService(memory.NewCouponRepository(), newTestLogger())
}

func newCartService() *CartService {
	return NewCartService(NewCatalogService(testCatalog(), newTestLogger()), newCouponService(), newTestLogger())
}

func strPtr(s string) *string {
	return &s
}
