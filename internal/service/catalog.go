package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/repository"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
	"github.com/Jinxhater/LUXE/pkg/pagination"
)

// CatalogService exposes the read-only product catalog.
type CatalogService struct {
	repo   repository.CatalogRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListProducts returns a page of active products and the total match count.
// An empty sort means newest first.
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	if filter.Sort == "" {
		filter.Sort = domain.SortNewest
	}
	if !domain.IsValidSort(filter.Sort) {
		return nil, 0, apperrors.InvalidInput(fmt.Sprintf("invalid sort %q", filter.Sort))
	}
	p := pagination.New(filter.Page, filter.Limit)
	filter.Page, filter.Limit = p.Page, p.Limit

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// GetProduct returns an active product by slug.
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	p, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return p, nil
}

// ListCategories returns every category with its active product count.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.CategoryWithCount, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Summary counts the static catalog. Nothing is written.
func (s *CatalogService) Summary(ctx context.Context) (domain.CatalogSummary, error) {
	sum, err := s.repo.Summary(ctx)
	if err != nil {
		return domain.CatalogSummary{}, fmt.Errorf("catalog summary: %w", err)
	}
	return sum, nil
}

// LookupVariant returns a variant together with its owning product.
func (s *CatalogService) LookupVariant(ctx context.Context, variantID string) (*domain.Product, *domain.ProductVariant, error) {
	p, err := s.repo.GetProductByVariantID(ctx, variantID)
	if err != nil {
		return nil, nil, fmt.Errorf("get product by variant: %w", err)
	}
	v, ok := p.Variant(variantID)
	if !ok {
		return nil, nil, apperrors.NotFound("variant", variantID)
	}
	return p, v, nil
}
