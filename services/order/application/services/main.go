package services

import (
	"time"

	"github.com/ghuser/carbuilder/pkg/app"
	"github.com/ghuser/carbuilder/pkg/cache"
	catalogsvcs "github.com/ghuser/carbuilder/services/catalog/application/services"
	"github.com/ghuser/carbuilder/services/order/infrastructure/adapter"
)

const defaultIdempotencyTTL = 24 * time.Hour

// Services is the application-layer service container for this bounded context.
type Services struct {
	Order *OrderService
}

// New wires the order application services with the state held by the Application container.
// Events are published only when an EventBus is configured, and Idempotency-Key
// handling is enabled only when Redis is.
func New(a *app.Application) *Services {
	var opts []Option
	if a.EventBus != nil {
		opts = append(opts, WithPublisher(a.EventBus))
	}
	if a.Redis != nil {
		ttl := defaultIdempotencyTTL
		if a.Config != nil && a.Config.IdempotencyTTL > 0 {
			ttl = a.Config.IdempotencyTTL
		}
		opts = append(opts, WithIdempotencyStore(cache.NewIdempotencyStore(a.Redis, ttl)))
	}

	catalog := adapter.NewCatalogReader(catalogsvcs.NewCatalogService(a.Catalog))
	return &Services{
		Order: NewOrderService(a.Orders, catalog, a.Logger, opts...),
	}
}
