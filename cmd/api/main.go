package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/carbuilder/docs/swagger"
	"github.com/ghuser/carbuilder/pkg/app"
	"github.com/ghuser/carbuilder/pkg/cache"
	"github.com/ghuser/carbuilder/pkg/config"
	"github.com/ghuser/carbuilder/pkg/events"
	"github.com/ghuser/carbuilder/pkg/httpx"
	"github.com/ghuser/carbuilder/pkg/logger"
	"github.com/ghuser/carbuilder/pkg/telemetry"
	catalogApi "github.com/ghuser/carbuilder/services/catalog/application/api"
	catalogmemory "github.com/ghuser/carbuilder/services/catalog/infrastructure/persistence/memory"
	orderApi "github.com/ghuser/carbuilder/services/order/application/api"
	orderSubscribers "github.com/ghuser/carbuilder/services/order/application/subscribers"
	ordermemory "github.com/ghuser/carbuilder/services/order/infrastructure/persistence/memory"
)

// @title					Car Builder API
// @version				1.0
// @description			Browse the paint, interior, technology and wheel catalogs, then place and fulfill car orders.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer redisClient.Close() //nolint:errcheck
	if redisClient != nil {
		log.Info("redis connected, idempotency keys enabled")
	} else {
		log.Info("REDIS_URL not set, idempotency keys disabled")
	}

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Catalog:  catalogmemory.NewCatalogRepository(),
		Orders:   ordermemory.NewOrderRepository(),
	}

	if err := orderSubscribers.Register(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.IsDevelopment(),
			CORSEnabled:        cfg.CORSEnabled,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	checks := httpx.HealthChecks{EventBus: eventBus}
	if redisClient != nil {
		checks.Redis = redisClient
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	if cfg.IsDevelopment() {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}
	registerRoutes(r, appConfig)

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	stop()
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("server stopped")
}

// registerRoutes mounts all service routes at the root.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	catalogApi.CatalogRoutes(r, a)
	orderApi.OrderRoutes(r, a)
}
