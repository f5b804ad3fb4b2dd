package domain

import "github.com/shopspring/decimal"

// Product sort orders accepted by catalog listings.
const (
	SortNewest      = "newest"
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortBestselling = "bestselling"
)

// Category groups products on the storefront.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// CategoryWithCount is a category annotated with its number of active products.
type CategoryWithCount struct {
	Category
	ProductCount int `json:"product_count"`
}

// Product is a catalog entry with its purchasable variants.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	CompareAt   *decimal.Decimal `json:"compare_at,omitempty"`
	CategoryID  string           `json:"category_id"`
	Category    *Category        `json:"category,omitempty"`
	Images      []string         `json:"images"`
	Material    string           `json:"material,omitempty"`
	CareInfo    string           `json:"care_info,omitempty"`
	Featured    bool             `json:"featured"`
	Active      bool             `json:"active"`
	Variants    []ProductVariant `json:"variants"`
}

// ProductVariant is a single purchasable size/color combination.
type ProductVariant struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	SKU       string           `json:"sku"`
	Size      string           `json:"size"`
	Color     string           `json:"color"`
	ColorHex  string           `json:"color_hex,omitempty"`
	Stock     int              `json:"stock"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

// EffectivePrice returns the variant's override when set and non-zero,
// otherwise the product's base price.
func (v *ProductVariant) EffectivePrice(p *Product) decimal.Decimal {
	if v.Price != nil && !v.Price.IsZero() {
		return *v.Price
	}
	return p.Price
}

// PrimaryImage returns the first product image, or "" when there is none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Variant returns the product's variant with the given id.
func (p *Product) Variant(id string) (*ProductVariant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

// CatalogSummary counts the static catalog's contents.
type CatalogSummary struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
	Variants   int `json:"variants"`
}

// IsValidSort reports whether s is a known product sort order.
func IsValidSort(s string) bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortBestselling:
		return true
	}
	return false
}
