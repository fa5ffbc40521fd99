// Package memory holds the in-process order store. State lives for the
// lifetime of the process.
package memory

import (
	"context"
	"sync"
	"time"

	orderdomain "github.com/ghuser/carbuilder/services/order/domain"
	"github.com/ghuser/carbuilder/services/order/domain/models"
	"github.com/ghuser/carbuilder/services/order/domain/repositories"
)

var _ repositories.OrderRepository = (*OrderRepository)(nil)

// OrderRepository stores orders in insertion order. A single lock covers id
// assignment and append so concurrent inserts never share an id.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	maxID  int
	now    func() time.Time
}

// NewOrderRepository returns an empty store stamping orders with UTC wall-clock time.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{now: func() time.Time { return time.Now().UTC() }}
}

func (r *OrderRepository) Insert(_ context.Context, o models.Order) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.maxID++
	o.ID = r.maxID
	o.CreatedAt = r.now()
	o.Complete = false
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *OrderRepository) All(_ context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *OrderRepository) FindByID(_ context.Context, id int) (models.Order, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Order{}, false, nil
	}
	return r.orders[i], true, nil
}

func (r *OrderRepository) MarkComplete(_ context.Context, id int) (models.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Order{}, false, orderdomain.ErrOrderNotFound
	}
	changed := !r.orders[i].Complete
	r.orders[i].Complete = true
	return r.orders[i], changed, nil
}

// indexOf returns the slice position of id, or -1. Callers hold mu.
func (r *OrderRepository) indexOf(id int) int {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return i
		}
	}
	return -1
}
