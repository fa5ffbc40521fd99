package repositories

import (
	"context"

	"github.com/ghuser/carbuilder/services/order/domain/models"
)

// OrderRepository is the persistence interface for the Order aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Orders are returned by value; callers never hold a reference into the store.
type OrderRepository interface {
	// Insert assigns the next id (max existing id + 1, or 1 when empty) and the
	// creation time, forces Complete to false, appends the order and returns it.
	Insert(ctx context.Context, o models.Order) (models.Order, error)

	// All returns every stored order in insertion order.
	All(ctx context.Context) ([]models.Order, error)

	// FindByID reports found=false, not an error, when no order has id.
	FindByID(ctx context.Context, id int) (order models.Order, found bool, err error)

	// MarkComplete sets Complete on the order with id and returns it, along with
	// whether this call changed it. Returns ErrOrderNotFound for unknown ids.
	MarkComplete(ctx context.Context, id int) (order models.Order, changed bool, err error)
}
