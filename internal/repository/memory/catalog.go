package memory

import (
	"context"
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/repository"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
	"github.com/Jinxhater/LUXE/pkg/pagination"
	"github.com/Jinxhater/LUXE/pkg/slug"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)
	return &d
}

// CatalogRepository serves a fixed catalog built once at startup. It is
// never mutated after construction, so reads need no locking.
type CatalogRepository struct {
	categories []domain.Category
	products   []domain.Product // catalog order

	bySlug    map[string]int
	byVariant map[string]int
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository returns the storefront catalog.
func NewCatalogRepository() *CatalogRepository {
	return NewCatalogRepositoryFrom(seedCategories, seedProducts)
}

// NewCatalogRepositoryFrom builds a catalog from the given data. Products
// are linked to their category by CategoryID.
func NewCatalogRepositoryFrom(categories []domain.Category, products []domain.Product) *CatalogRepository {
	r := &CatalogRepository{
		categories: slices.Clone(categories),
		products:   make([]domain.Product, len(products)),
		bySlug:     make(map[string]int, len(products)),
		byVariant:  make(map[string]int),
	}

	catByID := make(map[string]*domain.Category, len(r.categories))
	for i := range r.categories {
		catByID[r.categories[i].ID] = &r.categories[i]
	}

	for i, p := range products {
		p = cloneProduct(&p)
		p.Category = catByID[p.CategoryID]
		r.products[i] = p
		r.bySlug[slug.Normalize(p.Slug)] = i
		for _, v := range p.Variants {
			r.byVariant[v.ID] = i
		}
	}
	return r
}

func cloneProduct(p *domain.Product) domain.Product {
	c := *p
	c.Images = slices.Clone(p.Images)
	c.Variants = slices.Clone(p.Variants)
	if p.Category != nil {
		cat := *p.Category
		c.Category = &cat
	}
	return c
}

func (r *CatalogRepository) GetProductBySlug(_ context.Context, s string) (*domain.Product, error) {
	idx, ok := r.bySlug[slug.Normalize(s)]
	if !ok || !r.products[idx].Active {
		return nil, apperrors.NotFoundMessage("Product not found")
	}
	p := cloneProduct(&r.products[idx])
	return &p, nil
}

func (r *CatalogRepository) GetVariantByID(_ context.Context, id string) (*domain.ProductVariant, error) {
	idx, ok := r.byVariant[id]
	if !ok {
		return nil, apperrors.NotFound("variant", id)
	}
	v, _ := r.products[idx].Variant(id)
	cp := *v
	return &cp, nil
}

func (r *CatalogRepository) GetProductByVariantID(_ context.Context, variantID string) (*domain.Product, error) {
	idx, ok := r.byVariant[variantID]
	if !ok {
		return nil, apperrors.NotFound("variant", variantID)
	}
	p := cloneProduct(&r.products[idx])
	return &p, nil
}

// ListProducts filters to active products, then sorts and paginates. Unknown
// sort values fall back to newest first.
func (r *CatalogRepository) ListProducts(_ context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	category := slug.Normalize(filter.CategorySlug)

	matched := make([]domain.Product, 0, len(r.products))
	for i := range r.products {
		p := &r.products[i]
		if !p.Active {
			continue
		}
		if category != "" && (p.Category == nil || p.Category.Slug != category) {
			continue
		}
		if filter.Featured && !p.Featured {
			continue
		}
		matched = append(matched, cloneProduct(p))
	}

	switch filter.Sort {
	case domain.SortPriceAsc:
		slices.SortStableFunc(matched, func(a, b domain.Product) int { return a.Price.Cmp(b.Price) })
	case domain.SortPriceDesc:
		slices.SortStableFunc(matched, func(a, b domain.Product) int { return b.Price.Cmp(a.Price) })
	case domain.SortBestselling:
		// catalog order
	default:
		slices.Reverse(matched)
	}

	total := len(matched)
	return pagination.Slice(matched, pagination.New(filter.Page, filter.Limit)), total, nil
}

func (r *CatalogRepository) ListCategories(_ context.Context) ([]domain.CategoryWithCount, error) {
	counts := make(map[string]int, len(r.categories))
	for _, p := range r.products {
		if p.Active {
			counts[p.CategoryID]++
		}
	}

	out := make([]domain.CategoryWithCount, len(r.categories))
	for i, c := range r.categories {
		out[i] = domain.CategoryWithCount{Category: c, ProductCount: counts[c.ID]}
	}
	return out, nil
}

func (r *CatalogRepository) Summary(_ context.Context) (domain.CatalogSummary, error) {
	s := domain.CatalogSummary{
		Categories: len(r.categories),
		Products:   len(r.products),
	}
	for _, p := range r.products {
		s.Variants += len(p.Variants)
	}
	return s, nil
}

// Ping reports an error when the catalog holds no products.
func (r *CatalogRepository) Ping(context.Context) error {
	if len(r.products) == 0 {
		return errors.New("catalog is empty")
	}
	return nil
}
