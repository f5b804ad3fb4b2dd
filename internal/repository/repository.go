package repository

import (
	"context"
	"time"

	"github.com/Jinxhater/LUXE/internal/domain"
)

// ProductFilter defines filter criteria for listing products.
type ProductFilter struct {
	CategorySlug string
	Featured     bool
	Sort         string
	Page         int
	Limit        int
}

// CatalogRepository is the read-only product catalog.
type CatalogRepository interface {
	// GetProductBySlug returns the product with the given normalised slug.
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// GetVariantByID returns a variant by its identifier.
	GetVariantByID(ctx context.Context, id string) (*domain.ProductVariant, error)

	// GetProductByVariantID returns the product owning the variant.
	GetProductByVariantID(ctx context.Context, variantID string) (*domain.Product, error)

	// ListProducts returns one page of active products and the total match count.
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error)

	// ListCategories returns all categories with their active product counts.
	ListCategories(ctx context.Context) ([]domain.CategoryWithCount, error)

	// Summary counts categories, products and variants.
	Summary(ctx context.Context) (domain.CatalogSummary, error)
}

// CouponRepository is the static coupon table.
type CouponRepository interface {
	// FindByCode looks up a coupon case-insensitively.
	FindByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

// OrderFilter defines filter criteria for listing orders.
type OrderFilter struct {
	UserID  *string
	Status  *string
	Page    int
	PerPage int
}

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// Create appends a new order to the store.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its unique identifier, including items.
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// List returns orders matching the filter, newest first, with the total count.
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, int, error)

	// UpdateStatus sets the status and, when non-empty, the tracking number.
	UpdateStatus(ctx context.Context, id, status, trackingNumber string, at time.Time) (*domain.Order, error)
}

// UserRepository stores accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SessionStore keeps session state keyed by the opaque cookie value.
type SessionStore interface {
	// Get returns the session, or a NotFound error when missing or expired.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Put stores the session for ttl, replacing any existing value.
	Put(ctx context.Context, id string, session *domain.Session, ttl time.Duration) error

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
