package app

import (
	"github.com/ghuser/carbuilder/pkg/cache"
	"github.com/ghuser/carbuilder/pkg/config"
	"github.com/ghuser/carbuilder/pkg/events"
	"github.com/ghuser/carbuilder/pkg/logger"
	catalogrepos "github.com/ghuser/carbuilder/services/catalog/domain/repositories"
	orderrepos "github.com/ghuser/carbuilder/services/order/domain/repositories"
)

// Application holds shared infrastructure and the service state for all bounded contexts.
// Build it once at startup and pass it to every route group; tests build a fresh one
// per case to get isolated state.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "order created", "order_id", id)
//	app.Logger.ErrorContext(ctx, "failed to publish", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient // nil when REDIS_URL is unset

	// Catalog owns the four immutable option catalogs.
	Catalog catalogrepos.CatalogRepository
	// Orders exclusively owns the order collection.
	Orders orderrepos.OrderRepository
}
