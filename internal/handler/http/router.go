package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/service"
	"github.com/Jinxhater/LUXE/pkg/health"
	"github.com/Jinxhater/LUXE/pkg/middleware"
)

const (
	serviceName = "storefront"

	// catalogMaxAge is how long clients may cache catalog reads, in seconds.
	catalogMaxAge = 60
)

// Services bundles the storefront services served over HTTP.
type Services struct {
	Catalog *service.CatalogService
	Cart    *service.CartService
	Coupons *service.CouponService
	Orders  *service.OrderService
	Auth    *service.AuthService
}

// RouterConfig holds the transport settings for NewRouter.
type RouterConfig struct {
	Cookie     CookieConfig
	CORS       middleware.CORSConfig
	PprofCIDRs []string

	// AuthRateLimit caps requests per second per client on /api/auth.
	// Zero disables the limit.
	AuthRateLimit      float64
	AuthRateLimitBurst int
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	svcs Services,
	healthHandler *health.Handler,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics(serviceName))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Authenticate(cfg.Cookie.Name, sessionResolver(svcs.Auth), logger))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, cfg.PprofCIDRs, logger)

	catalogHandler := NewCatalogHandler(svcs.Catalog, logger)
	cartHandler := NewCartHandler(svcs.Cart, logger)
	couponHandler := NewCouponHandler(svcs.Coupons, logger)
	orderHandler := NewOrderHandler(svcs.Orders, logger)
	authHandler := NewAuthHandler(svcs.Auth, cfg.Cookie, logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(catalogMaxAge))
			r.Get("/products", catalogHandler.ListProducts)
			r.Get("/products/{slug}", catalogHandler.GetProduct)
			r.Get("/categories", catalogHandler.ListCategories)
		})
		r.Post("/seed", catalogHandler.Seed)

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/quote", cartHandler.Quote)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{variantId}", cartHandler.UpdateItem)
			r.Delete("/items/{variantId}", cartHandler.RemoveItem)
			r.Post("/coupon", cartHandler.ApplyCoupon)
			r.Delete("/coupon", cartHandler.RemoveCoupon)
		})

		r.Post("/coupons/validate", couponHandler.Validate)

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Post("/", orderHandler.CreateOrder)
			r.With(middleware.RequireAuth).Get("/", orderHandler.ListOrders)
			r.With(middleware.RequireAuth).Get("/{id}", orderHandler.GetOrder)
			r.With(middleware.RequireRole(domain.RoleAdmin)).Patch("/{id}", orderHandler.UpdateOrderStatus)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Use(middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateLimitBurst, logger))
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})
	})

	return r
}
