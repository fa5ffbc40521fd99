package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/ghuser/carbuilder/pkg/cache"
	"github.com/ghuser/carbuilder/pkg/logger"
	orderdomain "github.com/ghuser/carbuilder/services/order/domain"
	domainevents "github.com/ghuser/carbuilder/services/order/domain/events"
	"github.com/ghuser/carbuilder/services/order/domain/models"
	"github.com/ghuser/carbuilder/services/order/domain/repositories"
	domainsvcs "github.com/ghuser/carbuilder/services/order/domain/services"
)

const meterName = "github.com/ghuser/carbuilder/services/order"

// EventPublisher is the subset of the event bus the order service needs.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// IdempotencyStore remembers which order an Idempotency-Key created.
// Lookup returns redis.Nil for unknown keys.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Lookup(ctx context.Context, key string) (cache.IdempotencyRecord, error)
	Complete(ctx context.Context, key string, orderID int) error
	Release(ctx context.Context, key string) error
}

// CreateResult is the outcome of Create. Replayed is true when the order was
// created by an earlier request carrying the same Idempotency-Key.
type CreateResult struct {
	Order    models.OrderDetails
	Replayed bool
}

// ListResult holds the assembled orders of a List call, plus the ids of
// matching orders that were skipped because a reference no longer resolves.
type ListResult struct {
	Orders     []models.OrderDetails
	Unresolved []int
}

type orderMetrics struct {
	created    metric.Int64Counter
	fulfilled  metric.Int64Counter
	unresolved metric.Int64Counter
}

// OrderService places, lists and fulfills orders.
type OrderService struct {
	repo        repositories.OrderRepository
	assembler   *domainsvcs.Assembler
	publisher   EventPublisher
	idempotency IdempotencyStore
	log         logger.Logger
	metrics     orderMetrics
	now         func() time.Time
}

// Option customises an OrderService.
type Option func(*OrderService)

// WithPublisher publishes order.placed and order.fulfilled events to p.
func WithPublisher(p EventPublisher) Option {
	return func(s *OrderService) { s.publisher = p }
}

// WithIdempotencyStore enables Idempotency-Key handling on Create.
func WithIdempotencyStore(st IdempotencyStore) Option {
	return func(s *OrderService) { s.idempotency = st }
}

// NewOrderService returns an OrderService over repo, resolving references with catalog.
func NewOrderService(repo repositories.OrderRepository, catalog domainsvcs.CatalogReader, log logger.Logger, opts ...Option) *OrderService {
	s := &OrderService{
		repo:      repo,
		assembler: domainsvcs.NewAssembler(catalog),
		log:       log,
		metrics:   newOrderMetrics(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newOrderMetrics() orderMetrics {
	meter := otel.Meter(meterName)
	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			return noop.Int64Counter{}
		}
		return c
	}
	return orderMetrics{
		created:    counter("orders.created", "Orders placed"),
		fulfilled:  counter("orders.fulfilled", "Orders marked complete"),
		unresolved: counter("orders.unresolved", "Orders skipped while listing because a reference did not resolve"),
	}
}

// Create stores a new incomplete order for sel and returns it fully assembled.
//
// Every foreign key is checked before insert; dangling ones are reported together
// as *ReferenceError values wrapping ErrReferenceNotFound and nothing is stored.
// A non-empty idempotencyKey replays the earlier result for that key, or fails
// with ErrIdempotencyKeyInFlight while the first request is still running.
func (s *OrderService) Create(ctx context.Context, sel models.Selection, idempotencyKey string) (*CreateResult, error) {
	useKey := idempotencyKey != "" && s.idempotency != nil
	if useKey {
		res, err := s.claimKey(ctx, idempotencyKey)
		if err != nil || res != nil {
			return res, err
		}
	}

	details, err := s.assembler.Assemble(ctx, models.NewOrder(sel))
	if err != nil {
		if useKey {
			s.releaseKey(ctx, idempotencyKey)
		}
		return nil, fmt.Errorf("validate order: %w", err)
	}

	saved, err := s.repo.Insert(ctx, details.Order)
	if err != nil {
		if useKey {
			s.releaseKey(ctx, idempotencyKey)
		}
		return nil, fmt.Errorf("save order: %w", err)
	}
	details.Order = saved

	if useKey {
		if err := s.idempotency.Complete(ctx, idempotencyKey, saved.ID); err != nil {
			s.log.WarnContext(ctx, "failed to record idempotency key",
				"order_id", saved.ID, "error", err)
		}
	}

	s.metrics.created.Add(ctx, 1)
	s.publish(ctx, domainevents.TopicOrderPlaced, domainevents.NewOrderPlacedEvent(saved))
	s.log.InfoContext(ctx, "order created", "order_id", saved.ID)

	return &CreateResult{Order: details}, nil
}

// claimKey reserves key for this request. A non-nil result means the key
// already produced an order and the caller should replay it.
func (s *OrderService) claimKey(ctx context.Context, key string) (*CreateResult, error) {
	for range 2 {
		ok, err := s.idempotency.Reserve(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			return nil, nil
		}

		rec, err := s.idempotency.Lookup(ctx, key)
		if errors.Is(err, redis.Nil) {
			// expired between Reserve and Lookup
			continue
		}
		if err != nil {
			return nil, err
		}
		if rec.Pending {
			return nil, orderdomain.ErrIdempotencyKeyInFlight
		}

		o, found, err := s.repo.FindByID(ctx, rec.OrderID)
		if err != nil {
			return nil, fmt.Errorf("load replayed order: %w", err)
		}
		if !found {
			// the key outlived the order store; create a fresh order under it
			s.log.WarnContext(ctx, "idempotency key points at unknown order",
				"order_id", rec.OrderID)
			return nil, nil
		}
		details, err := s.assembler.Assemble(ctx, o)
		if err != nil {
			return nil, fmt.Errorf("assemble replayed order %d: %w", o.ID, err)
		}
		return &CreateResult{Order: details, Replayed: true}, nil
	}
	return nil, orderdomain.ErrIdempotencyKeyInFlight
}

func (s *OrderService) releaseKey(ctx context.Context, key string) {
	if err := s.idempotency.Release(context.WithoutCancel(ctx), key); err != nil {
		s.log.WarnContext(ctx, "failed to release idempotency key", "error", err)
	}
}

// List returns every incomplete order, optionally narrowed to one paint id,
// fully assembled and in insertion order. Orders whose references no longer
// resolve are left out and reported in ListResult.Unresolved.
func (s *OrderService) List(ctx context.Context, paintID *int) (*ListResult, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	matching := make([]models.Order, 0, len(all))
	for _, o := range all {
		if o.Complete {
			continue
		}
		if paintID != nil && o.PaintID != *paintID {
			continue
		}
		matching = append(matching, o)
	}

	assembled, err := s.assembler.AssembleAll(ctx, matching)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	res := &ListResult{Orders: assembled.Orders}
	for _, u := range assembled.Unresolved {
		s.log.WarnContext(ctx, "skipping order with unresolved reference",
			"order_id", u.OrderID, "error", u.Err)
		res.Unresolved = append(res.Unresolved, u.OrderID)
	}
	if n := len(res.Unresolved); n > 0 {
		s.metrics.unresolved.Add(ctx, int64(n))
	}
	return res, nil
}

// Fulfill marks the order complete and returns it. Fulfilling an order that
// is already complete succeeds without publishing another event.
// Returns ErrOrderNotFound for unknown ids.
func (s *OrderService) Fulfill(ctx context.Context, id int) (models.Order, error) {
	o, changed, err := s.repo.MarkComplete(ctx, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("fulfill order %d: %w", id, err)
	}
	if changed {
		s.metrics.fulfilled.Add(ctx, 1)
		s.publish(ctx, domainevents.TopicOrderFulfilled, domainevents.NewOrderFulfilledEvent(o, s.now()))
		s.log.InfoContext(ctx, "order fulfilled", "order_id", o.ID)
	}
	return o, nil
}

// publish is fire-and-forget: the order is already stored, so failures are logged only.
func (s *OrderService) publish(ctx context.Context, topic string, event any) {
	if s.publisher == nil {
		return
	}
	msg, err := newMessage(event)
	if err == nil {
		err = s.publisher.Publish(ctx, topic, msg)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "failed to publish event", "topic", topic, "error", err)
	}
}

func newMessage(event any) (*message.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	switch e := event.(type) {
	case domainevents.OrderPlacedEvent:
		setEventMetadata(msg, e.EventID, e.Version)
	case domainevents.OrderFulfilledEvent:
		setEventMetadata(msg, e.EventID, e.Version)
	}
	return msg, nil
}

func setEventMetadata(msg *message.Message, id uuid.UUID, version int) {
	msg.Metadata.Set("event_id", id.String())
	msg.Metadata.Set("event_version", strconv.Itoa(version))
}
