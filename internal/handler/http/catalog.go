package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/repository"
	"github.com/Jinxhater/LUXE/internal/service"
	"github.com/Jinxhater/LUXE/pkg/httputil"
	"github.com/Jinxhater/LUXE/pkg/pagination"
)

// CatalogHandler serves the read-only product catalog.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: svc, logger: logger}
}

// SeedResponse reports what the static catalog contains.
type SeedResponse struct {
	Message string                `json:"message"`
	Summary domain.CatalogSummary `json:"summary"`
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := pagination.FromRequest(r)

	filter := repository.ProductFilter{
		CategorySlug: q.Get("category"),
		Featured:     q.Get("featured") == "true",
		Sort:         q.Get("sort"),
		Page:         p.Page,
		Limit:        p.Limit,
	}

	products, total, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteList(w, products, httputil.NewPagination(total, p.Page, p.Limit))
}

// GetProduct handles GET /api/products/{slug}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, product)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.ListCategories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteList(w, cats, nil)
}

// Seed handles POST /api/seed. The catalog is static, so this only reports
// its contents.
func (h *CatalogHandler) Seed(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, SeedResponse{
		Message: "Static catalog loaded",
		Summary: sum,
	})
}
