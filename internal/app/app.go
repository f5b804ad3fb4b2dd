package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Jinxhater/LUXE/internal/config"
	"github.com/Jinxhater/LUXE/internal/event"
	handler "github.com/Jinxhater/LUXE/internal/handler/http"
	"github.com/Jinxhater/LUXE/internal/repository"
	"github.com/Jinxhater/LUXE/internal/repository/memory"
	redisrepo "github.com/Jinxhater/LUXE/internal/repository/redis"
	"github.com/Jinxhater/LUXE/internal/service"
	"github.com/Jinxhater/LUXE/pkg/database"
	"github.com/Jinxhater/LUXE/pkg/health"
	pkgkafka "github.com/Jinxhater/LUXE/pkg/kafka"
	"github.com/Jinxhater/LUXE/pkg/middleware"
	"github.com/Jinxhater/LUXE/pkg/tracing"
)

// sessionSweepInterval is how often the in-memory store drops expired sessions.
const sessionSweepInterval = 10 * time.Minute

// App wires together all dependencies and runs the storefront.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	rdb            *redis.Client
	producer       *pkgkafka.Producer
	memSessions    *memory.SessionStore
	tracerShutdown func(context.Context) error
	httpServer     *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a := &App{cfg: cfg, logger: logger}

	// Tracing.
	traceCfg := tracing.DefaultConfig("storefront")
	traceCfg.Environment = cfg.Environment
	traceCfg.Enabled = cfg.OTELEnabled
	traceCfg.OTLPEndpoint = cfg.OTELEndpoint
	traceCfg.SampleRate = cfg.OTELSampleRate
	shutdown, err := tracing.InitTracer(ctx, traceCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	a.tracerShutdown = shutdown

	healthHandler := health.NewHandler()

	// Session store.
	sessions, err := a.newSessionStore(ctx, healthHandler)
	if err != nil {
		return nil, err
	}

	// Event publishing. Without Kafka the producer discards events.
	var publisher pkgkafka.Publisher
	if cfg.KafkaEnabled {
		a.producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		publisher = pkgkafka.NewBreakerPublisher(a.producer, pkgkafka.DefaultBreakerConfig("kafka-producer"), logger)
		healthHandler.RegisterNonCritical("kafka", a.producer.Ping)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	}

	// Build the dependency graph.
	catalogRepo := memory.NewCatalogRepository()
	healthHandler.RegisterCritical("catalog", catalogRepo.Ping)

	eventProducer := event.NewProducer(publisher, logger)
	catalogService := service.NewCatalogService(catalogRepo, logger)
	couponService := service.NewCouponService(memory.NewCouponRepository(), logger)
	cartService := service.NewCartService(catalogService, couponService, logger)
	orderService := service.NewOrderService(catalogRepo, couponService, memory.NewOrderRepository(), eventProducer, logger)
	authService := service.NewAuthService(memory.NewUserRepository(), sessions, service.AuthConfig{
		SessionTTL: cfg.SessionTTL(),
		BcryptCost: cfg.BcryptCost,
	}, logger)

	if err := authService.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		a.closeClients()
		return nil, err
	}

	// HTTP router.
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	corsCfg.Environment = cfg.Environment

	router := handler.NewRouter(
		handler.Services{
			Catalog: catalogService,
			Cart:    cartService,
			Coupons: couponService,
			Orders:  orderService,
			Auth:    authService,
		},
		healthHandler,
		logger,
		handler.RouterConfig{
			Cookie: handler.CookieConfig{
				Name:   cfg.SessionCookieName,
				Secure: cfg.IsProduction(),
				MaxAge: cfg.SessionTTL(),
			},
			CORS:               corsCfg,
			PprofCIDRs:         cfg.PprofAllowedCIDRs,
			AuthRateLimit:      cfg.AuthRateLimitRPS,
			AuthRateLimitBurst: cfg.AuthRateLimitBurst,
		},
	)

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return a, nil
}

func (a *App) newSessionStore(ctx context.Context, h *health.Handler) (repository.SessionStore, error) {
	if a.cfg.SessionStore != config.SessionStoreRedis {
		a.memSessions = memory.NewSessionStore()
		return a.memSessions, nil
	}

	redisCfg := database.DefaultRedisConfig()
	redisCfg.Addr = a.cfg.RedisAddr
	redisCfg.Password = a.cfg.RedisPass
	redisCfg.DB = a.cfg.RedisDB

	rdb, err := database.NewRedisClient(ctx, redisCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	a.rdb = rdb
	h.RegisterCritical("redis", database.RedisHealthCheck(rdb))

	a.logger.Info("connected to Redis",
		slog.String("addr", a.cfg.RedisAddr),
		slog.Int("db", a.cfg.RedisDB),
	)
	return redisrepo.NewSessionStore(rdb), nil
}

// Handler returns the HTTP handler serving the storefront.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	if a.memSessions != nil {
		go a.memSessions.Run(ctx, sessionSweepInterval)
	}

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	a.closeClients()

	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}

func (a *App) closeClients() {
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}
}
